package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentDetails is the per-student profile row: dietary preferences,
// trainer linkage and the optional macro-goal overrides. Goal columns are
// pointers so a NULL falls back to the platform default field-by-field.
type StudentDetails struct {
	ID     string `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`

	Age               int     `json:"age"`
	HeightCm          float64 `json:"height_cm"`
	WeightKg          float64 `json:"weight_kg"`
	DietaryPreference string  `json:"dietary_preference"` // vegetarian|vegan|omnivore|…
	PersonalGoal      string  `json:"personal_goal"`      // lose_weight|gain_muscle|maintain|…
	Status            string  `gorm:"default:active" json:"status"`

	CaloriesGoal *float64 `json:"calories_goal"`
	ProteinGoal  *float64 `json:"protein_goal"`
	CarbsGoal    *float64 `json:"carbs_goal"`
	FatGoal      *float64 `json:"fat_goal"`

	TrainerID *uint `gorm:"index" json:"trainer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *StudentDetails) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
