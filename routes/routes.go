package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.POST("/user-details", controllers.AddUserDetails)
		user.GET("/user-details", controllers.GetUserDetails)
		user.PUT("/user-details", controllers.UpdateUserDetails)
	}

	// Prediction, meal planning and one-shot chat
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/predict-pcos", controllers.PredictPCOS)
		api.GET("/model-info", controllers.ModelInfo)
		api.GET("/predictions", controllers.GetUserPredictions)

		api.POST("/chat", controllers.Chat)
		api.POST("/meal-planner", controllers.MealPlanner)

		api.GET("/meal-plans", controllers.GetMealPlans)
		api.GET("/meal-plans/active", controllers.GetActiveMealPlan)
		api.POST("/meal-plans/create", controllers.CreateMealPlan)
		api.GET("/meal-plans/:id", controllers.GetMealPlan)
		api.PUT("/meal-plans/:id/activate", controllers.ActivateMealPlan)
		api.DELETE("/meal-plans/:id", controllers.DeleteMealPlan)
	}

	// Chat history
	chats := r.Group("/chats")
	chats.Use(middlewares.AuthMiddleware())
	{
		chats.POST("/create-chat", controllers.CreateChat)
		chats.GET("/get-chats", controllers.GetChats)
		chats.GET("/get-chat/:id", controllers.GetChat)
		chats.DELETE("/delete-chat/:id", controllers.DeleteChat)
		chats.POST("/send-message/:id", controllers.SendMessage)
		chats.GET("/:id/get-messages", controllers.GetMessages)
	}

	return r
}
