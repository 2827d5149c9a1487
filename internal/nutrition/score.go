package nutrition

import "math"

type Score string

const (
	ScoreExcellent  Score = "excellent"
	ScoreOK         Score = "ok"
	ScoreOverbudget Score = "overbudget"
)

// ScoreTolerance is the kcal distance from target still counted as excellent.
const ScoreTolerance = 200

// ScoreDay grades a day's intake against its target. Under-eating by more
// than the tolerance is "ok", not "excellent".
func ScoreDay(totalCalories float64, target int) Score {
	diff := totalCalories - float64(target)
	switch {
	case math.Abs(diff) <= ScoreTolerance:
		return ScoreExcellent
	case diff > ScoreTolerance:
		return ScoreOverbudget
	default:
		return ScoreOK
	}
}

// Valid reports whether s is one of the three known scores.
func (s Score) Valid() bool {
	switch s {
	case ScoreExcellent, ScoreOK, ScoreOverbudget:
		return true
	}
	return false
}
