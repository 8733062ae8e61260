package services

import (
	"testing"

	"github.com/RaG1ng9107/diet-connectivity/models"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestSumMeals(t *testing.T) {
	meals := []models.MealLog{
		{Calories: 248, Protein: 46.5, Carbs: 0, Fat: 5.4},
		{Calories: 88, Protein: 1.1, Carbs: 22.8, Fat: 0.3},
	}

	total := SumMeals(meals)
	assert.Equal(t, 336.0, total.Calories)
	assert.InDelta(t, 47.6, total.Protein, 1e-9)
	assert.InDelta(t, 22.8, total.Carbs, 1e-9)
	assert.InDelta(t, 5.7, total.Fat, 1e-9)
}

func TestSumMealsEmpty(t *testing.T) {
	total := SumMeals(nil)
	assert.Zero(t, total.Calories)
	assert.Zero(t, total.Protein)
	assert.Zero(t, total.Carbs)
	assert.Zero(t, total.Fat)
}

func TestSumMealsOrderIndependent(t *testing.T) {
	a := models.MealLog{Calories: 350, Protein: 15, Carbs: 60, Fat: 8}
	b := models.MealLog{Calories: 450, Protein: 40, Carbs: 20, Fat: 15}
	c := models.MealLog{Calories: 120, Protein: 24, Carbs: 3, Fat: 1.5}

	perms := [][]models.MealLog{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	want := SumMeals(perms[0])
	for _, p := range perms[1:] {
		assert.Equal(t, want, SumMeals(p))
	}
}

func TestSumMealsAdditiveUnderConcat(t *testing.T) {
	a := []models.MealLog{
		{Calories: 350, Protein: 15, Carbs: 60, Fat: 8},
		{Calories: 450, Protein: 40, Carbs: 20, Fat: 15},
	}
	b := []models.MealLog{
		{Calories: 120, Protein: 24, Carbs: 3, Fat: 1.5},
	}

	combined := SumMeals(append(append([]models.MealLog{}, a...), b...))
	assert.Equal(t, SumMeals(a).Add(SumMeals(b)), combined)
}

func TestResolveGoalsAllDefaults(t *testing.T) {
	got := ResolveGoals(DefaultGoals, nil)
	assert.Equal(t, MacroGoals{Calories: 2000, Protein: 140, Carbs: 220, Fat: 60}, got)
}

func TestResolveGoalsPartialOverride(t *testing.T) {
	got := ResolveGoals(DefaultGoals, &GoalOverride{
		Calories: f64(1800),
		Protein:  f64(120),
	})
	assert.Equal(t, MacroGoals{Calories: 1800, Protein: 120, Carbs: 220, Fat: 60}, got)
}

func TestResolveGoalsFullOverride(t *testing.T) {
	got := ResolveGoals(DefaultGoals, &GoalOverride{
		Calories: f64(2500),
		Protein:  f64(180),
		Carbs:    f64(300),
		Fat:      f64(80),
	})
	assert.Equal(t, MacroGoals{Calories: 2500, Protein: 180, Carbs: 300, Fat: 80}, got)
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 0.975, Ratio(1950, 2000), 1e-9)
	assert.Equal(t, 0.0, Ratio(500, 0))
	assert.Equal(t, 0.0, Ratio(500, -1))
}

func TestProgressPercentClamps(t *testing.T) {
	assert.InDelta(t, 97.5, ProgressPercent(1950, 2000), 1e-9)
	assert.Equal(t, 100.0, ProgressPercent(2500, 2000))
	assert.Equal(t, 0.0, ProgressPercent(0, 2000))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusNear, StatusFor(1950, 2000)) // 97.5%
	assert.Equal(t, StatusNear, StatusFor(1800, 2000)) // exactly 90%
	assert.Equal(t, StatusNear, StatusFor(2000, 2000)) // exactly 100%
	assert.Equal(t, StatusOver, StatusFor(2001, 2000))
	assert.Equal(t, StatusUnder, StatusFor(1799, 2000))
	assert.Equal(t, StatusUnder, StatusFor(0, 2000))
}
