package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/RaG1ng9107/diet-connectivity/services"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Feedback *services.FeedbackService
}

func NewFeedbackController(fb *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Feedback: fb}
}

type FeedbackInput struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// POST /feedback (trainer)
func (fc *FeedbackController) AddFeedback(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := fc.Feedback.AddFeedback(c.GetUint("userID"), input.StudentID, input.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNotLinked):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// GET /feedback — the student's own feedback
func (fc *FeedbackController) ListMyFeedback(c *gin.Context) {
	items, err := fc.Feedback.ListForStudent(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /students/:id/feedback (trainer)
func (fc *FeedbackController) ListStudentFeedback(c *gin.Context) {
	studentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	items, err := fc.Feedback.ListForStudent(uint(studentID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
