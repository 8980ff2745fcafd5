package controllers

import (
	"errors"
	"net/http"

	"backend/ml"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// PredictPCOS runs one risk inference over the submitted features and
// records it in the prediction ledger.
func PredictPCOS(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		raw = map[string]any{}
	}

	engine, err := services.ModelEngine()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"msg":     "Model not available",
			"error":   err.Error(),
		})
		return
	}

	if missing := engine.MissingFeatures(raw); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":          false,
			"msg":              "Missing required features",
			"missing_features": missing,
		})
		return
	}

	result, err := engine.Infer(engine.Normalize(raw))
	if errors.Is(err, ml.ErrModelUnavailable) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Model not available", "error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Failed to predict PCOS", "error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	record, err := services.SavePrediction(userID, raw, result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Failed to store prediction", "error": err.Error()})
		return
	}

	var probability any = "Not available"
	if result.Probability != nil {
		probability = *result.Probability
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"prediction":       result.Prediction,
		"prediction_label": record.Label(),
		"probability":      probability,
		"risk_level":       result.RiskLevel,
		"recommendation":   result.Recommendation,
		"prediction_id":    record.ID,
	})
}

func ModelInfo(c *gin.Context) {
	engine, err := services.ModelEngine()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"msg":     "Model not available",
			"error":   err.Error(),
		})
		return
	}

	info := gin.H{"success": true}
	for k, v := range engine.Info() {
		info[k] = v
	}
	c.JSON(http.StatusOK, info)
}

func GetUserPredictions(c *gin.Context) {
	userID := c.GetString("userID")
	records, err := services.PredictionHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "msg": "Failed to get predictions", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "predictions": records})
}
