package utils

import (
	"errors"
	"math"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// CalculateBMR uses the Mifflin-St Jeor equation.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		return math.Round(base + 5)
	}
	return math.Round(base - 161)
}

var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculateTDEE scales a BMR by activity level. Unknown levels fall back to
// sedentary.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	f, ok := activityFactors[activityLevel]
	if !ok {
		f = activityFactors["sedentary"]
	}
	return math.Round(bmr * f)
}

// SuggestMacros splits a calorie goal into gram targets using 4/4/9 kcal
// per gram for protein/carbs/fat.
func SuggestMacros(calorieGoal, proteinPct, fatPct float64) (protein, carbs, fat float64) {
	carbPct := 100 - proteinPct - fatPct
	protein = math.Round(calorieGoal * (proteinPct / 100) / 4)
	fat = math.Round(calorieGoal * (fatPct / 100) / 9)
	carbs = math.Round(calorieGoal * (carbPct / 100) / 4)
	return protein, carbs, fat
}
