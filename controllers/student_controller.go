package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RaG1ng9107/diet-connectivity/services"

	"github.com/gin-gonic/gin"
)

// StudentController serves the trainer-side views of a student's data.
type StudentController struct {
	Users  *services.UserService
	Meals  *services.MealService
	Macros *services.MacroService
}

func NewStudentController(users *services.UserService, meals *services.MealService, macros *services.MacroService) *StudentController {
	return &StudentController{Users: users, Meals: meals, Macros: macros}
}

// GET /students — the trainer's roster
func (sc *StudentController) ListStudents(c *gin.Context) {
	students, err := sc.Users.ListStudentsForTrainer(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, students)
}

// linkedStudentID resolves :id and verifies the student is on this
// trainer's roster.
func (sc *StudentController) linkedStudentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return 0, false
	}

	linked, err := sc.Users.IsTrainerOf(c.GetUint("userID"), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return 0, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return 0, false
	}
	if !linked {
		c.JSON(http.StatusForbidden, gin.H{"error": "student is not assigned to this trainer"})
		return 0, false
	}
	return uint(id), true
}

// GET /students/:id/meals
func (sc *StudentController) ListStudentMeals(c *gin.Context) {
	studentID, ok := sc.linkedStudentID(c)
	if !ok {
		return
	}

	meals, err := sc.Meals.ListMeals(studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GET /students/:id/summary?date=YYYY-MM-DD
func (sc *StudentController) GetStudentSummary(c *gin.Context) {
	studentID, ok := sc.linkedStudentID(c)
	if !ok {
		return
	}

	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	summary, err := sc.Macros.DailySummary(studentID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
