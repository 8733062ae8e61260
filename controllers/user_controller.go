package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RaG1ng9107/diet-connectivity/services"
	"github.com/RaG1ng9107/diet-connectivity/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// GET /user/profile
func (uc *UserController) GetProfile(c *gin.Context) {
	profile, err := uc.Users.GetProfile(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PUT /user/profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var input services.DetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details, err := uc.Users.UpsertDetails(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}

type GoalSuggestionInput struct {
	WeightKg      float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm      float64 `json:"height_cm" binding:"required,gt=0"`
	Age           int     `json:"age" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required,oneof=male female"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	ProteinPct    float64 `json:"protein_pct"`
	FatPct        float64 `json:"fat_pct"`
}

// POST /user/goal-suggestion — BMR/TDEE-derived macro targets the student
// can copy into their goal overrides.
func (uc *UserController) SuggestGoals(c *gin.Context) {
	var input GoalSuggestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ProteinPct <= 0 {
		input.ProteinPct = 30
	}
	if input.FatPct <= 0 {
		input.FatPct = 25
	}

	bmr := utils.CalculateBMR(input.WeightKg, input.HeightCm, input.Age, input.Gender)
	tdee := utils.CalculateTDEE(bmr, input.ActivityLevel)
	protein, carbs, fat := utils.SuggestMacros(tdee, input.ProteinPct, input.FatPct)

	c.JSON(http.StatusOK, gin.H{
		"bmr":      bmr,
		"tdee":     tdee,
		"calories": tdee,
		"protein":  protein,
		"carbs":    carbs,
		"fat":      fat,
	})
}

// GET /admin/users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Users.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// PUT /admin/users/:id/disabled
func (uc *UserController) SetUserDisabled(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var input struct {
		Disabled bool `json:"disabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := uc.Users.SetDisabled(uint(id), input.Disabled); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /admin/students/:id/trainer
func (uc *UserController) AssignTrainer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	var input struct {
		TrainerID *uint `json:"trainer_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := uc.Users.AssignTrainer(uint(id), input.TrainerID); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
