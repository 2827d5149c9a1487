package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

// CompletionRequest is a single prompt sent to a language model.
type CompletionRequest struct {
	System string
	Prompt string
	// JSON asks the provider for a JSON object reply.
	JSON bool
}

// completer is the one call an LLM provider has to support.
type completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

var errNoJSON = errors.New("no JSON object in model reply")

// AICallsPerRequest is the most gateway calls a single API request makes.
// Adding or editing a meal analyzes it and then re-evaluates its day.
const AICallsPerRequest = 2

const nutritionistSystem = `You are a friendly nutrition assistant. You are NOT a doctor and never give medical advice. ` +
	`Keep a supportive, encouraging tone. Remind the user to see a doctor for serious health concerns.`

var questLine = regexp.MustCompile(`(?mi)QUEST:\s*(.+)$`)

// llmGateway implements AIGateway on top of a completer. It owns the
// prompts and reply parsing, and falls back on any error.
type llmGateway struct {
	llm      completer
	provider string
	// callTimeout bounds one gateway operation, retries included.
	callTimeout time.Duration
	fallback    *FallbackGateway
	log         *zap.Logger
}

func newLLMGateway(llm completer, provider string, callTimeout time.Duration, log *zap.Logger) *llmGateway {
	return &llmGateway{
		llm:         llm,
		provider:    provider,
		callTimeout: callTimeout,
		fallback:    NewFallbackGateway(),
		log:         log,
	}
}

type mealPayload struct {
	Foods         []models.ParsedFood `json:"foods"`
	TotalCalories *float64            `json:"totalCalories"`
	TotalProtein  *float64            `json:"totalProtein"`
	TotalFat      *float64            `json:"totalFat"`
	TotalCarbs    *float64            `json:"totalCarbs"`
	Message       string              `json:"aiMessage"`
}

func (g *llmGateway) AnalyzeMeal(ctx context.Context, text, imageURL string) MealAnalysis {
	var p mealPayload
	if err := g.completeJSON(ctx, mealPrompt(text, imageURL), &p); err != nil {
		g.warn("meal analysis", err)
		return g.fallback.AnalyzeMeal(ctx, text, imageURL)
	}

	// Totals missing from the reply are summed from the items.
	var items nutrition.Macros
	for _, f := range p.Foods {
		items = items.Add(nutrition.Macros{Calories: f.Calories, Protein: f.Protein, Fat: f.Fat, Carbs: f.Carbs})
	}
	out := MealAnalysis{
		Foods:         p.Foods,
		TotalCalories: valueOr(p.TotalCalories, items.Calories),
		TotalProtein:  valueOr(p.TotalProtein, items.Protein),
		TotalFat:      valueOr(p.TotalFat, items.Fat),
		TotalCarbs:    valueOr(p.TotalCarbs, items.Carbs),
		Message:       p.Message,
	}
	if out.Foods == nil {
		out.Foods = []models.ParsedFood{}
	}
	if out.TotalCalories < 0 || out.TotalProtein < 0 || out.TotalFat < 0 || out.TotalCarbs < 0 {
		g.warn("meal analysis", errors.New("negative totals in reply"))
		return g.fallback.AnalyzeMeal(ctx, text, imageURL)
	}
	if out.Message == "" {
		out.Message = "Logged!"
	}
	return out
}

func (g *llmGateway) EvaluateDay(ctx context.Context, in DayEvaluationInput) DayEvaluation {
	var p struct {
		Score   string `json:"score"`
		Comment string `json:"comment"`
	}
	if err := g.completeJSON(ctx, dayPrompt(in), &p); err != nil {
		g.warn("day evaluation", err)
		return g.fallback.EvaluateDay(ctx, in)
	}

	out := DayEvaluation{Score: nutrition.Score(strings.ToLower(strings.TrimSpace(p.Score))), Comment: p.Comment}
	if !out.Score.Valid() {
		out.Score = nutrition.ScoreDay(in.Totals.Calories, in.CalorieTarget)
	}
	if out.Comment == "" {
		out.Comment = "The day is going well!"
	}
	return out
}

func (g *llmGateway) GenerateProgressSummary(ctx context.Context, in ProgressInput) ProgressSummary {
	var p ProgressSummary
	if err := g.completeJSON(ctx, progressPrompt(in), &p); err != nil {
		g.warn("progress summary", err)
		return g.fallback.GenerateProgressSummary(ctx, in)
	}

	if p.OverallScore == "" {
		p.OverallScore = "okay"
	}
	if p.SummaryText == "" {
		p.SummaryText = "Great work! Keep it up."
	}
	if p.Strengths == nil {
		p.Strengths = []string{}
	}
	if p.AreasToImprove == nil {
		p.AreasToImprove = []string{}
	}
	return p
}

func (g *llmGateway) GenerateDailyQuest(ctx context.Context) string {
	reply, err := g.complete(ctx, CompletionRequest{System: nutritionistSystem, Prompt: questPrompt})
	if err != nil {
		g.warn("daily quest", err)
		return g.fallback.GenerateDailyQuest(ctx)
	}
	if quest := parseQuest(reply); quest != "" {
		return quest
	}
	g.warn("daily quest", errors.New("no QUEST line in reply"))
	return g.fallback.GenerateDailyQuest(ctx)
}

func (g *llmGateway) completeJSON(ctx context.Context, prompt string, v interface{}) error {
	reply, err := g.complete(ctx, CompletionRequest{System: nutritionistSystem, Prompt: prompt, JSON: true})
	if err != nil {
		return err
	}
	return decodePayload(reply, v)
}

func (g *llmGateway) complete(ctx context.Context, req CompletionRequest) (string, error) {
	if g.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.callTimeout)
		defer cancel()
	}
	return g.llm.Complete(ctx, req)
}

func (g *llmGateway) warn(op string, err error) {
	g.log.Warn("AI call failed, using fallback",
		zap.String("op", op),
		zap.String("provider", g.provider),
		zap.Error(err),
	)
}

// SanitizeJSON strips markdown code fences around a model reply.
func SanitizeJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}

// decodePayload unmarshals the span from the first '{' to the last '}'.
func decodePayload(reply string, v interface{}) error {
	text := SanitizeJSON(reply)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return errNoJSON
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), v); err != nil {
		return fmt.Errorf("invalid JSON in model reply: %w", err)
	}
	return nil
}

func parseQuest(reply string) string {
	m := questLine.FindStringSubmatch(reply)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func valueOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}
