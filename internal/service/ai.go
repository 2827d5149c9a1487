package service

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/pageza/calorie-quest/backend/config"
	"github.com/pageza/calorie-quest/backend/internal/logger"
	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

// MealAnalysis is the nutrition estimate for a free-text meal description.
type MealAnalysis struct {
	Foods         []models.ParsedFood `json:"foods"`
	TotalCalories float64             `json:"totalCalories"`
	TotalProtein  float64             `json:"totalProtein"`
	TotalFat      float64             `json:"totalFat"`
	TotalCarbs    float64             `json:"totalCarbs"`
	Message       string              `json:"aiMessage"`
}

// Macros returns the analysis totals.
func (a MealAnalysis) Macros() nutrition.Macros {
	return nutrition.Macros{
		Calories: a.TotalCalories,
		Protein:  a.TotalProtein,
		Fat:      a.TotalFat,
		Carbs:    a.TotalCarbs,
	}
}

// DayEvaluationInput describes a day for grading.
type DayEvaluationInput struct {
	Totals           nutrition.Macros
	CalorieTarget    int
	MealDescriptions []string
}

type DayEvaluation struct {
	Score   nutrition.Score `json:"score"`
	Comment string          `json:"comment"`
}

// ProgressInput is the statistics a progress narrative is written from.
type ProgressInput struct {
	StartDate        string
	StartWeight      float64
	CurrentWeight    float64
	TargetWeight     float64
	AverageCalories  float64
	DaysWithinTarget int
	TotalDays        int
	Streak           int
	Level            int
	XP               int
	Achievements     []string
}

type ProgressSummary struct {
	OverallScore   string   `json:"overallScore"`
	SummaryText    string   `json:"summaryText"`
	Strengths      []string `json:"strengths"`
	AreasToImprove []string `json:"areasToImprove"`
}

// AIGateway produces nutrition estimates and coaching text. None of its
// operations fail: when the provider is unreachable or answers with
// something unusable, a deterministic fallback is returned instead.
type AIGateway interface {
	AnalyzeMeal(ctx context.Context, text, imageURL string) MealAnalysis
	EvaluateDay(ctx context.Context, in DayEvaluationInput) DayEvaluation
	GenerateProgressSummary(ctx context.Context, in ProgressInput) ProgressSummary
	GenerateDailyQuest(ctx context.Context) string
}

// NewAIGateway picks the gateway implementation from AI_PROVIDER.
func NewAIGateway(cfg *config.Config) AIGateway {
	log := logger.Named("ai")
	httpClient := &http.Client{Timeout: cfg.AITimeout}

	provider := cfg.AIProvider
	if provider == "auto" || provider == "" {
		switch {
		case cfg.GeminiAPIKey != "":
			provider = "gemini"
		case cfg.DeepSeekAPIKey != "":
			provider = "deepseek"
		default:
			provider = "stub"
		}
	}

	var llm completer
	switch provider {
	case "gemini":
		llm = NewGeminiClient(cfg.GeminiAPIKey,
			WithGeminiModel(cfg.GeminiModel),
			WithGeminiHTTPClient(httpClient),
		)
	case "deepseek":
		llm = NewDeepSeekClient(cfg.DeepSeekAPIKey, cfg.DeepSeekAPIURL, cfg.DeepSeekModel, httpClient)
	default:
		log.Warn("no AI provider configured, using built-in fallbacks")
		return NewFallbackGateway()
	}

	log.Info("AI gateway ready", zap.String("provider", provider))
	return newLLMGateway(llm, provider, cfg.AITimeout, log)
}
