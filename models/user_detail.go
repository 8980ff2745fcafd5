package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDetail stores the health and lifestyle questionnaire for a user.
// One row per user. The json tags double as the profile snapshot fed
// into the generative prompts, so keep them in sync with the frontend
// field names.
type UserDetail struct {
	ID     string `gorm:"type:varchar(36);primaryKey" json:"-"`
	UserID string `gorm:"type:varchar(36);not null;index" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	// Basic information
	Age    string `gorm:"size:3;not null" json:"age"`
	Height string `gorm:"size:10;not null" json:"height"`
	Weight string `gorm:"size:10;not null" json:"weight"`

	// Health information
	PeriodRegularity string `gorm:"size:50;not null" json:"periodRegularity"`
	PeriodDuration   string `gorm:"size:50;not null" json:"periodDuration"`
	HeavyBleeding    string `gorm:"size:50;not null" json:"heavyBleeding"`
	SevereCramps     string `gorm:"size:50;not null" json:"severeCramps"`
	PCOSDiagnosis    string `gorm:"size:50;not null" json:"pcosDiagnosis"`
	Hirsutism        string `gorm:"size:50;not null" json:"hirsutism"`
	HairLoss         string `gorm:"size:50;not null" json:"hairLoss"`
	AcneSkinIssues   string `gorm:"size:50;not null" json:"acneSkinIssues"`
	WeightGain       string `gorm:"size:50;not null" json:"weightGain"`
	Fatigue          string `gorm:"size:50;not null" json:"fatigue"`

	// Lifestyle information
	ExerciseFrequency        string `gorm:"size:50;not null" json:"exerciseFrequency"`
	DietType                 string `gorm:"size:50;not null" json:"dietType"`
	ProcessedFoodConsumption string `gorm:"size:50;not null" json:"processedFoodConsumption"`
	SugarCravings            string `gorm:"size:50;not null" json:"sugarCravings"`
	WaterIntake              string `gorm:"size:50;not null" json:"waterIntake"`

	// Sleep and mental health
	SleepHours         string `gorm:"size:50;not null" json:"sleepHours"`
	SleepDisturbances  string `gorm:"size:50;not null" json:"sleepDisturbances"`
	MentalHealthIssues string `gorm:"size:50;not null" json:"mentalHealthIssues"`
	StressLevels       string `gorm:"size:50;not null" json:"stressLevels"`

	// Additional information
	MedicalHistory      string `gorm:"size:255" json:"medicalHistory"`
	Medications         string `gorm:"size:255" json:"medications"`
	FertilityTreatments string `gorm:"size:255" json:"fertilityTreatments"`

	CreatedAt time.Time `json:"createdAt"`
}

func (d *UserDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
