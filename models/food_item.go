package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryProtein   = "protein"
	CategoryCarbs     = "carbs"
	CategoryFat       = "fat"
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryDairy     = "dairy"
	CategoryOther     = "other"
)

const (
	UnitGram    = "g"
	UnitMilli   = "ml"
	UnitServing = "serving"
)

// FoodItem is a curated catalog entry. Density fields are per 100 g/ml for
// weight/volume foods and per one serving for serving-denominated foods
// (see utils.NutrientsFor).
type FoodItem struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"type:varchar(16);not null" json:"category"`

	CaloriesPer100 float64 `json:"calories_per_100"`
	ProteinPer100  float64 `json:"protein_per_100"`
	CarbsPer100    float64 `json:"carbs_per_100"`
	FatPer100      float64 `json:"fat_per_100"`

	RecommendedServing float64 `json:"recommended_serving"`
	ServingUnit        string  `gorm:"type:varchar(8);not null;default:g" json:"serving_unit"`
	TrainerNotes       string  `json:"trainer_notes,omitempty"`

	CreatedBy uint      `gorm:"index" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryProtein, CategoryCarbs, CategoryFat,
		CategoryVegetable, CategoryFruit, CategoryDairy, CategoryOther:
		return true
	}
	return false
}

func ValidServingUnit(u string) bool {
	return u == UnitGram || u == UnitMilli || u == UnitServing
}
