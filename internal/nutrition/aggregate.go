package nutrition

import "math"

// Macros is an energy and macronutrient breakdown.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Add returns the component-wise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Fat:      m.Fat + o.Fat,
		Carbs:    m.Carbs + o.Carbs,
	}
}

// SumMeals totals a day's meals. An empty slice sums to zero.
func SumMeals(meals []Macros) Macros {
	var total Macros
	for _, m := range meals {
		total = total.Add(m)
	}
	return total
}

// CaloriesRemaining never goes below zero.
func CaloriesRemaining(target int, total float64) float64 {
	return math.Max(0, float64(target)-total)
}

// WeightProgressPercent is how far current has moved from start towards
// target, rounded to one decimal. It is 0 when start equals target and may
// be negative or exceed 100.
func WeightProgressPercent(start, current, target float64) float64 {
	if start == target {
		return 0
	}
	pct := (start - current) / (start - target) * 100
	return math.Round(pct*10) / 10
}

// WeightLost is first minus latest, clamped at zero. weights must be in
// date order.
func WeightLost(weights []float64) float64 {
	if len(weights) < 2 {
		return 0
	}
	return math.Max(0, weights[0]-weights[len(weights)-1])
}
