package controllers

import (
	"net/http"
	"time"

	"github.com/RaG1ng9107/diet-connectivity/services"

	"github.com/gin-gonic/gin"
)

type MacroController struct {
	Macros *services.MacroService
}

func NewMacroController(macros *services.MacroService) *MacroController {
	return &MacroController{Macros: macros}
}

// GET /macros/summary?date=2026-08-31
// Without a date, today's summary; date=all sums every log ever recorded.
func (mc *MacroController) GetSummary(c *gin.Context) {
	userID := c.GetUint("userID")

	dateStr := c.Query("date")
	if dateStr == "all" {
		summary, err := mc.Macros.Summary(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, summary)
		return
	}

	date := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	summary, err := mc.Macros.DailySummary(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /macros/goals
func (mc *MacroController) GetGoals(c *gin.Context) {
	goals, err := mc.Macros.GoalsFor(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}
