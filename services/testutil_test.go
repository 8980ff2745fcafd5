package services

import (
	"fmt"
	"testing"

	"backend/config"
	"backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the shared config.DB at a fresh in-memory sqlite
// database for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserDetail{},
		&models.Prediction{},
		&models.MealPlan{},
		&models.Chat{},
		&models.Message{},
	))

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

func configDBActive(userID string, dest *[]models.MealPlan) error {
	return config.DB.Where("user_id = ? AND is_active = ?", userID, true).Find(dest).Error
}

func countMessages(chatID string, count *int64) error {
	return config.DB.Model(&models.Message{}).Where("chat_id = ?", chatID).Count(count).Error
}

func createTestUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "hashed", Role: "user"}
	require.NoError(t, config.DB.Create(&user).Error)
	return &user
}
