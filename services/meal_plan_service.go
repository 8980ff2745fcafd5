package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"backend/config"
	"backend/llm"
	"backend/models"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("meal plan not found")

// DayGenerator produces one day's meals. *llm.Client satisfies it;
// tests substitute their own.
type DayGenerator interface {
	GenerateDay(ctx context.Context, day string, details *models.UserDetail, preference string) llm.DayPlan
}

type MealPlanService struct {
	generator DayGenerator
}

func NewMealPlanService(generator DayGenerator) *MealPlanService {
	return &MealPlanService{generator: generator}
}

// BuildPlan assembles a full week one day at a time, then persists it
// as the user's active plan. A day whose generation fails arrives as
// its fallback, so the loop always completes; nothing is persisted
// until all seven days have resolved. Deactivating the previous active
// plan and inserting the new one commit together.
func (s *MealPlanService) BuildPlan(ctx context.Context, userID string, details *models.UserDetail, preference string) (*models.MealPlan, error) {
	var week llm.WeekPlan
	for _, day := range llm.Weekdays {
		week.Set(day, s.generator.GenerateDay(ctx, day, details, preference))
	}

	planData, err := json.Marshal(&week)
	if err != nil {
		return nil, fmt.Errorf("marshal meal plan: %w", err)
	}

	plan := models.MealPlan{
		UserID:   userID,
		PlanData: planData,
		IsActive: true,
	}
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MealPlan{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&plan).Error
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Activate makes one plan the user's active plan and deactivates the
// rest, atomically. A plan not owned by the user is reported as not
// found.
func (s *MealPlanService) Activate(planID, userID string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.MealPlan{}).
			Where("user_id = ? AND id <> ?", userID, planID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&plan).Update("is_active", true).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Active returns the most recently created active plan for the user.
func (s *MealPlanService) Active(userID string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) List(userID string) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *MealPlanService) Get(planID, userID string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := config.DB.Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) Delete(planID, userID string) error {
	result := config.DB.Where("id = ? AND user_id = ?", planID, userID).Delete(&models.MealPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
