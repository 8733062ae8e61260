package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealLog is one consumption event. FoodName, ServingUnit and the four
// nutrient fields are snapshots taken at log time; they are never recomputed
// from the live catalog, so deleting or editing the catalog entry leaves
// history intact.
type MealLog struct {
	ID     string `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user_id"`

	FoodItemID  string  `gorm:"type:varchar(36);not null" json:"food_item_id"`
	FoodName    string  `json:"food_name"`
	Quantity    float64 `json:"quantity"`
	ServingUnit string  `gorm:"type:varchar(8)" json:"serving_unit"`
	MealType    string  `gorm:"type:varchar(16);not null" json:"meal_type"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	LoggedAt  time.Time `gorm:"index" json:"logged_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *MealLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func ValidMealType(t string) bool {
	return t == MealBreakfast || t == MealLunch || t == MealDinner || t == MealSnack
}
