package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Prediction is an immutable record of one risk inference: the raw
// submitted features plus the engine's output. Never updated after
// creation.
type Prediction struct {
	ID          string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      string         `gorm:"type:varchar(36);not null;index" json:"user_id"`
	User        User           `gorm:"foreignKey:UserID" json:"-"`
	InputData   datatypes.JSON `gorm:"not null" json:"input_data"`
	Prediction  int            `gorm:"not null" json:"prediction"`
	Probability *float64       `json:"probability"`
	RiskLevel   string         `gorm:"size:20;not null" json:"risk_level"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (p *Prediction) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Prediction) Label() string {
	if p.Prediction == 1 {
		return "PCOS"
	}
	return "No PCOS"
}
