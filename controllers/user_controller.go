package controllers

import (
	"errors"
	"net/http"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")
	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func AddUserDetails(c *gin.Context) {
	var details models.UserDetail
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No data provided"})
		return
	}

	if missing := missingDetailFields(&details); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing required fields", "missing_fields": missing})
		return
	}
	if !utils.ValidateNumericString(details.Age, 1, 120) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid age value"})
		return
	}
	if !utils.ValidateNumericString(details.Height, 1, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid height value"})
		return
	}
	if !utils.ValidateNumericString(details.Weight, 1, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid weight value"})
		return
	}

	userID := c.GetString("userID")
	err := services.CreateUserDetails(userID, &details)
	if errors.Is(err, services.ErrDetailsExist) {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "User details already exist. Please update the details instead."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to save user details", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "User details added successfully", "details": details})
}

func GetUserDetails(c *gin.Context) {
	userID := c.GetString("userID")
	details, err := services.GetUserDetails(userID)
	if errors.Is(err, services.ErrDetailsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User details not found, please add details"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to retrieve user details", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"details": details})
}

func UpdateUserDetails(c *gin.Context) {
	var details models.UserDetail
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No data provided"})
		return
	}

	userID := c.GetString("userID")
	updated, err := services.UpdateUserDetails(userID, &details)
	if errors.Is(err, services.ErrDetailsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "User details not found, please add details"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Failed to update user details", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "User details updated successfully", "details": updated})
}

// The questionnaire fields the frontend must always send. The free-text
// history fields are optional.
func missingDetailFields(d *models.UserDetail) []string {
	required := map[string]string{
		"age":                      d.Age,
		"height":                   d.Height,
		"weight":                   d.Weight,
		"periodRegularity":         d.PeriodRegularity,
		"periodDuration":           d.PeriodDuration,
		"heavyBleeding":            d.HeavyBleeding,
		"severeCramps":             d.SevereCramps,
		"pcosDiagnosis":            d.PCOSDiagnosis,
		"hirsutism":                d.Hirsutism,
		"hairLoss":                 d.HairLoss,
		"acneSkinIssues":           d.AcneSkinIssues,
		"weightGain":               d.WeightGain,
		"fatigue":                  d.Fatigue,
		"exerciseFrequency":        d.ExerciseFrequency,
		"dietType":                 d.DietType,
		"processedFoodConsumption": d.ProcessedFoodConsumption,
		"sugarCravings":            d.SugarCravings,
		"waterIntake":              d.WaterIntake,
		"sleepHours":               d.SleepHours,
		"sleepDisturbances":        d.SleepDisturbances,
		"mentalHealthIssues":       d.MentalHealthIssues,
		"stressLevels":             d.StressLevels,
	}
	var missing []string
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
