package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func RegisterUser(name, email, password string, tokenTTL time.Duration) (*TokenPair, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     "user",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return issueTokens(email, tokenTTL)
}

func AuthenticateUser(email, password string, tokenTTL time.Duration) (*TokenPair, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return issueTokens(email, tokenTTL)
}

func issueTokens(email string, ttl time.Duration) (*TokenPair, error) {
	access, err := utils.GenerateJWT(email, ttl)
	if err != nil {
		return nil, err
	}
	refresh, err := utils.GenerateRefreshJWT(email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
