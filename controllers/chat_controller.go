package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func CreateChat(c *gin.Context) {
	svc := services.NewChatService(services.LLM())
	chat, err := svc.CreateChat(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to create chat", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"msg": "Chat created successfully", "chat": chat})
}

func GetChats(c *gin.Context) {
	svc := services.NewChatService(services.LLM())
	chats, err := svc.ListChats(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to retrieve chats", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chats": chats})
}

func GetChat(c *gin.Context) {
	svc := services.NewChatService(services.LLM())
	chat, err := svc.GetChat(c.Param("id"), c.GetString("userID"))
	if errors.Is(err, services.ErrChatNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Chat not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to retrieve chat", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat": chat})
}

func DeleteChat(c *gin.Context) {
	svc := services.NewChatService(services.LLM())
	err := svc.DeleteChat(c.Param("id"), c.GetString("userID"))
	if errors.Is(err, services.ErrChatNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Chat not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to delete chat", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Chat deleted successfully"})
}

func GetMessages(c *gin.Context) {
	svc := services.NewChatService(services.LLM())
	messages, err := svc.Messages(c.Param("id"), c.GetString("userID"))
	if errors.Is(err, services.ErrChatNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Chat not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to retrieve messages", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chat_id": c.Param("id"), "messages": messages})
}

func SendMessage(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Message content is required"})
		return
	}

	userID := c.GetString("userID")
	// The profile is optional context here; a user without details
	// still gets a reply.
	details, err := services.GetUserDetails(userID)
	if err != nil && !errors.Is(err, services.ErrDetailsNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to send message", "error": err.Error()})
		return
	}

	svc := services.NewChatService(services.LLM())
	userMsg, aiMsg, err := svc.SendMessage(c.Request.Context(), c.Param("id"), userID, body.Message, details)
	if errors.Is(err, services.ErrChatNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Chat not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to send message", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_message": userMsg, "ai_message": aiMsg})
}
