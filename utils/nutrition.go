package utils

import (
	"math"

	"github.com/RaG1ng9107/diet-connectivity/models"
)

// Nutrients holds absolute amounts for one consumed quantity, as opposed to
// the per-reference densities on the catalog entry.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

// NutrientsFor scales a catalog entry's density to an absolute amount.
// For g/ml foods the density is per 100 units, so the multiplier is
// quantity/100. For serving-denominated foods the density is per single
// serving and the quantity is a serving count, so it is used directly.
// Calories round to the nearest integer, macros to one decimal.
//
// Total function: no validation. Zero quantity yields zero output and
// degenerate inputs propagate; callers validate at their own boundary.
func NutrientsFor(food models.FoodItem, quantity float64) Nutrients {
	multiplier := quantity / 100
	if food.ServingUnit == models.UnitServing {
		multiplier = quantity
	}
	return Nutrients{
		Calories: math.Round(food.CaloriesPer100 * multiplier),
		Protein:  round1(food.ProteinPer100 * multiplier),
		Carbs:    round1(food.CarbsPer100 * multiplier),
		Fat:      round1(food.FatPer100 * multiplier),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
