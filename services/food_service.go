package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RaG1ng9107/diet-connectivity/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type FoodService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db, validate: validator.New()}
}

type FoodInput struct {
	Name               string  `json:"name" validate:"required"`
	Category           string  `json:"category" validate:"required,oneof=protein carbs fat vegetable fruit dairy other"`
	CaloriesPer100     float64 `json:"calories_per_100" validate:"gte=0"`
	ProteinPer100      float64 `json:"protein_per_100" validate:"gte=0"`
	CarbsPer100        float64 `json:"carbs_per_100" validate:"gte=0"`
	FatPer100          float64 `json:"fat_per_100" validate:"gte=0"`
	RecommendedServing float64 `json:"recommended_serving" validate:"gt=0"`
	ServingUnit        string  `json:"serving_unit" validate:"required,oneof=g ml serving"`
	TrainerNotes       string  `json:"trainer_notes"`
}

func (s *FoodService) CreateFood(createdBy uint, in FoodInput) (*models.FoodItem, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	food := &models.FoodItem{
		Name:               in.Name,
		Category:           in.Category,
		CaloriesPer100:     in.CaloriesPer100,
		ProteinPer100:      in.ProteinPer100,
		CarbsPer100:        in.CarbsPer100,
		FatPer100:          in.FatPer100,
		RecommendedServing: in.RecommendedServing,
		ServingUnit:        in.ServingUnit,
		TrainerNotes:       in.TrainerNotes,
		CreatedBy:          createdBy,
	}
	if err := s.db.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// ListFoods filters by category and/or case-insensitive name substring.
// Empty arguments mean no filter.
func (s *FoodService) ListFoods(category, query string) ([]models.FoodItem, error) {
	q := s.db.Order("name ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var foods []models.FoodItem
	err := q.Find(&foods).Error
	return foods, err
}

func (s *FoodService) GetFood(id string) (*models.FoodItem, error) {
	var food models.FoodItem
	err := s.db.First(&food, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &food, nil
}

// DeleteFood removes a catalog entry. Meal logs referencing it keep their
// snapshotted name and nutrients.
func (s *FoodService) DeleteFood(id string) error {
	res := s.db.Delete(&models.FoodItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFoodNotFound
	}
	return nil
}
