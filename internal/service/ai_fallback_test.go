package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

func TestFallbackGateway(t *testing.T) {
	ctx := context.Background()
	f := NewFallbackGateway()

	t.Run("should log a fixed estimate", func(t *testing.T) {
		got := f.AnalyzeMeal(ctx, "борщ со сметаной", "")
		assert.Equal(t, nutrition.Macros{Calories: 200, Protein: 10, Fat: 8, Carbs: 20}, got.Macros())
		assert.Equal(t, "борщ со сметаной", got.Foods[0].Name)
		assert.Equal(t, 100.0, got.Foods[0].Grams)
	})

	t.Run("should grade the day by calories", func(t *testing.T) {
		cases := map[float64]nutrition.Score{
			2000: nutrition.ScoreExcellent,
			2250: nutrition.ScoreOverbudget,
			1500: nutrition.ScoreOK,
		}
		for calories, want := range cases {
			got := f.EvaluateDay(ctx, DayEvaluationInput{Totals: nutrition.Macros{Calories: calories}, CalorieTarget: 2000})
			assert.Equal(t, want, got.Score)
			assert.Equal(t, dayComments[want], got.Comment)
		}
	})

	t.Run("should pick quests from the default list", func(t *testing.T) {
		pick := &FallbackGateway{intn: func(n int) int { return n - 1 }}
		assert.Equal(t, defaultQuests[len(defaultQuests)-1], pick.GenerateDailyQuest(ctx))
	})

	t.Run("should give a positive summary", func(t *testing.T) {
		got := f.GenerateProgressSummary(ctx, ProgressInput{})
		assert.Equal(t, "good", got.OverallScore)
		assert.Len(t, got.Strengths, 2)
		assert.Len(t, got.AreasToImprove, 2)
	})
}
