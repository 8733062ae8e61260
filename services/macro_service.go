package services

import (
	"errors"
	"time"

	"github.com/RaG1ng9107/diet-connectivity/models"
	"github.com/RaG1ng9107/diet-connectivity/utils"

	"gorm.io/gorm"
)

// Platform-default daily goals, applied field-by-field when a student has no
// stored override.
var DefaultGoals = MacroGoals{Calories: 2000, Protein: 140, Carbs: 220, Fat: 60}

type MacroGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// GoalOverride carries per-student goal fields; nil means "use the default".
type GoalOverride struct {
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
}

// ResolveGoals merges an override into the defaults field-wise. A nil
// override is equivalent to an empty one. Values are taken as-is; there is no
// cross-field caloric consistency check.
func ResolveGoals(defaults MacroGoals, override *GoalOverride) MacroGoals {
	out := defaults
	if override == nil {
		return out
	}
	if override.Calories != nil {
		out.Calories = *override.Calories
	}
	if override.Protein != nil {
		out.Protein = *override.Protein
	}
	if override.Carbs != nil {
		out.Carbs = *override.Carbs
	}
	if override.Fat != nil {
		out.Fat = *override.Fat
	}
	return out
}

// SumMeals folds the snapshot fields of a meal slice into consumed totals.
// Values were rounded at log time, so they are added verbatim. The fold is
// commutative and additive under concatenation.
func SumMeals(meals []models.MealLog) utils.Nutrients {
	var total utils.Nutrients
	for _, m := range meals {
		total = total.Add(utils.Nutrients{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
		})
	}
	return total
}

// Ratio is consumed/goal, 0 when the goal is unset or non-positive.
func Ratio(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return consumed / goal
}

// ProgressPercent clamps the ratio to [0, 100] for progress-bar display.
func ProgressPercent(consumed, goal float64) float64 {
	p := Ratio(consumed, goal) * 100
	if p > 100 {
		return 100
	}
	return p
}

const (
	StatusOver  = "over"
	StatusNear  = "near"
	StatusUnder = "under"
)

// StatusFor buckets consumption against a goal: over (>100%),
// near (90–100%), under (<90%).
func StatusFor(consumed, goal float64) string {
	r := Ratio(consumed, goal)
	switch {
	case r > 1:
		return StatusOver
	case r >= 0.9:
		return StatusNear
	default:
		return StatusUnder
	}
}

type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
	Status   string  `json:"status"`
}

type MacroSummary struct {
	Calories MacroProgress `json:"calories"`
	Protein  MacroProgress `json:"protein"`
	Carbs    MacroProgress `json:"carbs"`
	Fat      MacroProgress `json:"fat"`
}

type MacroService struct {
	db      *gorm.DB
	mealSvc *MealService
}

func NewMacroService(db *gorm.DB, ms *MealService) *MacroService {
	return &MacroService{db: db, mealSvc: ms}
}

// GoalsFor resolves a student's effective goals from their stored details.
// A student with no details row, or NULL goal columns, gets the defaults.
func (s *MacroService) GoalsFor(userID uint) (MacroGoals, error) {
	var details models.StudentDetails
	err := s.db.Where("user_id = ?", userID).First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultGoals, nil
		}
		return DefaultGoals, err
	}
	return ResolveGoals(DefaultGoals, &GoalOverride{
		Calories: details.CaloriesGoal,
		Protein:  details.ProteinGoal,
		Carbs:    details.CarbsGoal,
		Fat:      details.FatGoal,
	}), nil
}

// DailySummary is the consumed-vs-goal rollup for the given calendar day,
// scoped at the query boundary. Derived on every read, never persisted.
func (s *MacroService) DailySummary(userID uint, date time.Time) (*MacroSummary, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	meals, err := s.mealSvc.ListMealsByDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	return s.summarize(userID, meals)
}

// Summary sums every log the user has ever recorded.
func (s *MacroService) Summary(userID uint) (*MacroSummary, error) {
	meals, err := s.mealSvc.ListMeals(userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(userID, meals)
}

func (s *MacroService) summarize(userID uint, meals []models.MealLog) (*MacroSummary, error) {
	goals, err := s.GoalsFor(userID)
	if err != nil {
		return nil, err
	}
	consumed := SumMeals(meals)

	progress := func(consumed, goal float64) MacroProgress {
		return MacroProgress{
			Consumed: consumed,
			Goal:     goal,
			Percent:  ProgressPercent(consumed, goal),
			Status:   StatusFor(consumed, goal),
		}
	}
	return &MacroSummary{
		Calories: progress(consumed.Calories, goals.Calories),
		Protein:  progress(consumed.Protein, goals.Protein),
		Carbs:    progress(consumed.Carbs, goals.Carbs),
		Fat:      progress(consumed.Fat, goals.Fat),
	}, nil
}
