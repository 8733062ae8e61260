package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RaG1ng9107/diet-connectivity/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{Meals: meals}
}

func mealError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrFoodNotFound), errors.Is(err, services.ErrMealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// POST /meals
func (mc *MealController) LogMeal(c *gin.Context) {
	var req services.MealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.AddMeal(c.GetUint("userID"), req)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

// GET /meals
func (mc *MealController) ListMeals(c *gin.Context) {
	meals, err := mc.Meals.ListMeals(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /meals/recent?limit=5
func (mc *MealController) ListRecentMeals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	meals, err := mc.Meals.ListRecentMeals(c.GetUint("userID"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// PUT /meals/:id
func (mc *MealController) UpdateMeal(c *gin.Context) {
	var req services.MealLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.UpdateMeal(c.GetUint("userID"), c.Param("id"), req)
	if err != nil {
		mealError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DELETE /meals/:id
func (mc *MealController) DeleteMeal(c *gin.Context) {
	if err := mc.Meals.DeleteMeal(c.GetUint("userID"), c.Param("id")); err != nil {
		mealError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
