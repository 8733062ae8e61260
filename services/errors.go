package services

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrFoodNotFound    = errors.New("food item not found")
	ErrMealNotFound    = errors.New("meal log not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrNotLinked       = errors.New("student is not assigned to this trainer")
)
