package service

import (
	"context"
	"math/rand/v2"

	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

const (
	fallbackMealMessage = "Logged! (AI analysis is temporarily unavailable)"
	fallbackNameLength  = 50
)

var defaultQuests = []string{
	"Drink 8 glasses of water today",
	"Add vegetables to one of your meals",
	"Have a piece of fruit as an afternoon snack",
	"Try a new healthy food",
	"Eat breakfast within an hour of waking up",
	"Add protein to every meal",
	"Swap sweets for fruit today",
	"Eat slowly and without your phone",
}

var dayComments = map[nutrition.Score]string{
	nutrition.ScoreExcellent:  "Great day! You stayed within your calorie target. Keep it up!",
	nutrition.ScoreOverbudget: "A bit over your calories today. No worries, tomorrow is a new day!",
	nutrition.ScoreOK:         "Good day! Remember to eat regularly.",
}

// FallbackGateway answers every request with fixed, deterministic content.
// It backs the LLM gateways and serves alone when no provider is configured.
type FallbackGateway struct {
	intn func(n int) int
}

func NewFallbackGateway() *FallbackGateway {
	return &FallbackGateway{intn: rand.IntN}
}

// AnalyzeMeal records a single low-confidence 200 kcal item named after the text.
func (f *FallbackGateway) AnalyzeMeal(_ context.Context, text, _ string) MealAnalysis {
	name := []rune(text)
	if len(name) > fallbackNameLength {
		name = name[:fallbackNameLength]
	}
	return MealAnalysis{
		Foods: []models.ParsedFood{{
			Name:       string(name),
			Grams:      100,
			Calories:   200,
			Protein:    10,
			Fat:        8,
			Carbs:      20,
			Confidence: "low",
		}},
		TotalCalories: 200,
		TotalProtein:  10,
		TotalFat:      8,
		TotalCarbs:    20,
		Message:       fallbackMealMessage,
	}
}

func (f *FallbackGateway) EvaluateDay(_ context.Context, in DayEvaluationInput) DayEvaluation {
	score := nutrition.ScoreDay(in.Totals.Calories, in.CalorieTarget)
	return DayEvaluation{Score: score, Comment: dayComments[score]}
}

func (f *FallbackGateway) GenerateProgressSummary(context.Context, ProgressInput) ProgressSummary {
	return ProgressSummary{
		OverallScore: "good",
		SummaryText: "You are doing a great job tracking your nutrition! Every day is a step towards your goal. " +
			"Keep logging your meals and following your progress.",
		Strengths:      []string{"Tracking meals regularly", "Setting clear goals"},
		AreasToImprove: []string{"Keep tracking consistently", "Add more detail to meal descriptions"},
	}
}

func (f *FallbackGateway) GenerateDailyQuest(context.Context) string {
	return defaultQuests[f.intn(len(defaultQuests))]
}
