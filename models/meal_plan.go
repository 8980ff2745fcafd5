package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealPlan holds a full 7-day plan as JSON keyed by weekday name.
// At most one plan per user is active at any time; the meal plan
// service flips IsActive inside a transaction to keep it that way.
type MealPlan struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string         `gorm:"type:varchar(36);not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	PlanData  datatypes.JSON `gorm:"not null" json:"plan_data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
}

func (m *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
