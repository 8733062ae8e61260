package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/RaG1ng9107/diet-connectivity/models"
	"github.com/RaG1ng9107/diet-connectivity/utils"

	"gorm.io/gorm"
)

type MealService struct {
	db      *gorm.DB
	foodSvc *FoodService
	hub     *RealtimeHub
}

// NewMealService wires the catalog lookup and the optional realtime hub
// (nil disables event broadcasting, convenient in tests).
func NewMealService(db *gorm.DB, fs *FoodService, hub *RealtimeHub) *MealService {
	return &MealService{db: db, foodSvc: fs, hub: hub}
}

type MealLogRequest struct {
	FoodItemID string    `json:"food_item_id"`
	Quantity   float64   `json:"quantity"`
	MealType   string    `json:"meal_type"`
	LoggedAt   time.Time `json:"logged_at"`
}

func (r MealLogRequest) check() error {
	if r.FoodItemID == "" {
		return fmt.Errorf("%w: food_item_id is required", ErrValidation)
	}
	if !(r.Quantity > 0) { // also rejects NaN
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if !models.ValidMealType(r.MealType) {
		return fmt.Errorf("%w: invalid meal type %q", ErrValidation, r.MealType)
	}
	return nil
}

// AddMeal resolves the catalog entry, computes the nutrient snapshot and
// persists the log. The snapshot is never recomputed afterwards.
func (s *MealService) AddMeal(userID uint, req MealLogRequest) (*models.MealLog, error) {
	if err := req.check(); err != nil {
		return nil, err
	}

	food, err := s.foodSvc.GetFood(req.FoodItemID)
	if err != nil {
		return nil, err
	}

	loggedAt := req.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	nut := utils.NutrientsFor(*food, req.Quantity)
	meal := &models.MealLog{
		UserID:      userID,
		FoodItemID:  food.ID,
		FoodName:    food.Name,
		Quantity:    req.Quantity,
		ServingUnit: food.ServingUnit,
		MealType:    req.MealType,
		Calories:    nut.Calories,
		Protein:     nut.Protein,
		Carbs:       nut.Carbs,
		Fat:         nut.Fat,
		LoggedAt:    loggedAt,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast("meal.logged", meal, s.watchersOf(userID)...)
	}
	return meal, nil
}

// watchersOf is the student plus their assigned trainer, if any.
func (s *MealService) watchersOf(userID uint) []uint {
	ids := []uint{userID}
	var details models.StudentDetails
	if err := s.db.Select("trainer_id").Where("user_id = ?", userID).First(&details).Error; err == nil {
		if details.TrainerID != nil {
			ids = append(ids, *details.TrainerID)
		}
	}
	return ids
}

// ListMeals returns all of a user's logs, newest first.
func (s *MealService) ListMeals(userID uint) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&meals).Error
	return meals, err
}

// ListMealsByDateRange scopes at the query boundary; [from, to).
func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.MealLog, error) {
	var meals []models.MealLog
	err := s.db.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, from, to).
		Order("logged_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.MealLog, error) {
	if limit <= 0 {
		limit = 5
	}
	var meals []models.MealLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID uint, mealID string) (*models.MealLog, error) {
	var meal models.MealLog
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal re-runs the full create contract: resolve the food, validate,
// recompute the snapshot from the current catalog entry.
func (s *MealService) UpdateMeal(userID uint, mealID string, req MealLogRequest) (*models.MealLog, error) {
	if err := req.check(); err != nil {
		return nil, err
	}

	meal, err := s.GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}
	food, err := s.foodSvc.GetFood(req.FoodItemID)
	if err != nil {
		return nil, err
	}

	nut := utils.NutrientsFor(*food, req.Quantity)
	meal.FoodItemID = food.ID
	meal.FoodName = food.Name
	meal.Quantity = req.Quantity
	meal.ServingUnit = food.ServingUnit
	meal.MealType = req.MealType
	meal.Calories = nut.Calories
	meal.Protein = nut.Protein
	meal.Carbs = nut.Carbs
	meal.Fat = nut.Fat
	if !req.LoggedAt.IsZero() {
		meal.LoggedAt = req.LoggedAt
	}

	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// DeleteMeal hard-deletes the log. No cascade: nutrients were snapshotted,
// nothing else references the row.
func (s *MealService) DeleteMeal(userID uint, mealID string) error {
	res := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}
