package services

import (
	"testing"
	"time"

	"github.com/RaG1ng9107/diet-connectivity/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalsForDefaults(t *testing.T) {
	db := setupTestDB(t)
	user := seedStudent(t, db)
	macroSvc := NewMacroService(db, NewMealService(db, NewFoodService(db), nil))

	goals, err := macroSvc.GoalsFor(user.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultGoals, goals)
}

func TestGoalsForNoDetailsRow(t *testing.T) {
	db := setupTestDB(t)
	user := &models.User{Email: "bare@test.local", Password: "x", Role: models.RoleStudent}
	require.NoError(t, db.Create(user).Error)
	macroSvc := NewMacroService(db, NewMealService(db, NewFoodService(db), nil))

	goals, err := macroSvc.GoalsFor(user.ID)
	require.NoError(t, err)
	assert.Equal(t, DefaultGoals, goals)
}

func TestGoalsForPartialOverride(t *testing.T) {
	db := setupTestDB(t)
	user := seedStudent(t, db)
	require.NoError(t, db.Model(&models.StudentDetails{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{"calories_goal": 1800.0, "protein_goal": 120.0}).Error)

	macroSvc := NewMacroService(db, NewMealService(db, NewFoodService(db), nil))
	goals, err := macroSvc.GoalsFor(user.ID)
	require.NoError(t, err)
	assert.Equal(t, MacroGoals{Calories: 1800, Protein: 120, Carbs: 220, Fat: 60}, goals)
}

func TestDailySummaryScopesToDay(t *testing.T) {
	db := setupTestDB(t)
	user := seedStudent(t, db)
	food := seedChicken(t, db)
	mealSvc := NewMealService(db, NewFoodService(db), nil)
	macroSvc := NewMacroService(db, mealSvc)

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	// two meals on the day, one the evening before
	for _, at := range []time.Time{day.Add(8 * time.Hour), day.Add(13 * time.Hour), day.Add(-5 * time.Hour)} {
		_, err := mealSvc.AddMeal(user.ID, MealLogRequest{
			FoodItemID: food.ID, Quantity: 100, MealType: models.MealLunch, LoggedAt: at,
		})
		require.NoError(t, err)
	}

	summary, err := macroSvc.DailySummary(user.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 330.0, summary.Calories.Consumed) // 2 × 165, previous day excluded
	assert.Equal(t, 2000.0, summary.Calories.Goal)
	assert.Equal(t, StatusUnder, summary.Calories.Status)

	all, err := macroSvc.Summary(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 495.0, all.Calories.Consumed) // all-time sums every log
}

func TestDailySummaryStatusBands(t *testing.T) {
	db := setupTestDB(t)
	user := seedStudent(t, db)
	mealSvc := NewMealService(db, NewFoodService(db), nil)
	macroSvc := NewMacroService(db, mealSvc)

	// 1950 of 2000 kcal → 97.5%, "near"
	food := &models.FoodItem{
		Name: "Meal Replacement", Category: models.CategoryOther,
		CaloriesPer100: 1950, ProteinPer100: 0, CarbsPer100: 0, FatPer100: 0,
		RecommendedServing: 1, ServingUnit: models.UnitServing,
	}
	require.NoError(t, db.Create(food).Error)

	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	_, err := mealSvc.AddMeal(user.ID, MealLogRequest{
		FoodItemID: food.ID, Quantity: 1, MealType: models.MealDinner, LoggedAt: day.Add(18 * time.Hour),
	})
	require.NoError(t, err)

	summary, err := macroSvc.DailySummary(user.ID, day)
	require.NoError(t, err)
	assert.Equal(t, 1950.0, summary.Calories.Consumed)
	assert.InDelta(t, 97.5, summary.Calories.Percent, 1e-9)
	assert.Equal(t, StatusNear, summary.Calories.Status)
	assert.Equal(t, StatusUnder, summary.Protein.Status)
}
