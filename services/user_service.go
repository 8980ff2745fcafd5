package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

var (
	ErrDetailsNotFound = errors.New("user details not found")
	ErrDetailsExist    = errors.New("user details already exist")
)

func GetUserProfile(email string) (map[string]interface{}, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"user_id":    user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	}, nil
}

func CreateUserDetails(userID string, details *models.UserDetail) error {
	var existing models.UserDetail
	err := config.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return ErrDetailsExist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	details.UserID = userID
	return config.DB.Create(details).Error
}

func GetUserDetails(userID string) (*models.UserDetail, error) {
	var details models.UserDetail
	err := config.DB.Where("user_id = ?", userID).First(&details).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDetailsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &details, nil
}

func UpdateUserDetails(userID string, updated *models.UserDetail) (*models.UserDetail, error) {
	details, err := GetUserDetails(userID)
	if err != nil {
		return nil, err
	}

	updated.ID = details.ID
	updated.UserID = userID
	updated.CreatedAt = details.CreatedAt
	if err := config.DB.Save(updated).Error; err != nil {
		return nil, err
	}
	return updated, nil
}
