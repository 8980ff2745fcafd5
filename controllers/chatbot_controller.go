package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// Chat handles a single stateless advice turn: no chat history, just
// the message plus the stored profile.
func Chat(c *gin.Context) {
	var body struct {
		Input string `json:"input"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Valid input text is required"})
		return
	}

	userID := c.GetString("userID")
	details, err := services.GetUserDetails(userID)
	if errors.Is(err, services.ErrDetailsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User details not found, please add details"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Chat processing failed", "error": err.Error()})
		return
	}

	response, err := services.LLM().Chat(c.Request.Context(), body.Input, details)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Chat processing failed", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Chat processed successfully", "response": response})
}
