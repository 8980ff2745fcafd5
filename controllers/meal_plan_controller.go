package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// CreateMealPlan builds a custom 7-day plan from the user's health
// details plus free-text preferences and stores it as the active plan.
func CreateMealPlan(c *gin.Context) {
	var body struct {
		Preferences string `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Preferences == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Valid preferences string is required"})
		return
	}

	userID := c.GetString("userID")
	details, err := services.GetUserDetails(userID)
	if errors.Is(err, services.ErrDetailsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User details not found, please add details"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create custom meal plan", "error": err.Error()})
		return
	}

	svc := services.NewMealPlanService(services.LLM())
	plan, err := svc.BuildPlan(c.Request.Context(), userID, details, body.Preferences)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create custom meal plan", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Custom meal plan created successfully", "data": plan})
}

// MealPlanner builds a plan from the profile alone, without custom
// preferences.
func MealPlanner(c *gin.Context) {
	userID := c.GetString("userID")
	details, err := services.GetUserDetails(userID)
	if errors.Is(err, services.ErrDetailsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User details not found, please add details"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Meal planning failed", "error": err.Error()})
		return
	}

	svc := services.NewMealPlanService(services.LLM())
	plan, err := svc.BuildPlan(c.Request.Context(), userID, details, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Meal planning failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Meal plan generated successfully", "data": plan})
}

func GetMealPlans(c *gin.Context) {
	svc := services.NewMealPlanService(services.LLM())
	plans, err := svc.List(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to retrieve meal plans", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_plans": plans})
}

func GetActiveMealPlan(c *gin.Context) {
	svc := services.NewMealPlanService(services.LLM())
	plan, err := svc.Active(c.GetString("userID"))
	if errors.Is(err, services.ErrPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "No active meal plan found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to retrieve active meal plan", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Active meal plan retrieved successfully", "meal_plan": plan})
}

func GetMealPlan(c *gin.Context) {
	svc := services.NewMealPlanService(services.LLM())
	plan, err := svc.Get(c.Param("id"), c.GetString("userID"))
	if errors.Is(err, services.ErrPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Meal plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to retrieve meal plan", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}

func ActivateMealPlan(c *gin.Context) {
	svc := services.NewMealPlanService(services.LLM())
	plan, err := svc.Activate(c.Param("id"), c.GetString("userID"))
	if errors.Is(err, services.ErrPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Meal plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to activate meal plan", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Meal plan activated successfully", "meal_plan": plan})
}

func DeleteMealPlan(c *gin.Context) {
	svc := services.NewMealPlanService(services.LLM())
	err := svc.Delete(c.Param("id"), c.GetString("userID"))
	if errors.Is(err, services.ErrPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Meal plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to delete meal plan", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Meal plan deleted successfully"})
}
