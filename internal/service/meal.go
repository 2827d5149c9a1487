package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/calorie-quest/backend/internal/logger"
	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

// dayListLimit is how many recent days the day list returns.
const dayListLimit = 30

// MealInput is a new meal for a given date.
type MealInput struct {
	Time     string `json:"time"`
	RawText  string `json:"rawText"`
	ImageURL string `json:"imageUrl"`
}

// MealEdit changes a meal. Nil fields keep their current value.
type MealEdit struct {
	Time    *string `json:"time"`
	RawText *string `json:"rawText"`
}

// MealResult is a stored meal plus the feedback generated for it.
type MealResult struct {
	Meal     *models.MealEntry
	Message  string
	Unlocked []string
}

// DaySummary is a day together with its number of meals.
type DaySummary struct {
	models.Day
	MealCount int
}

// mealRewarder is notified after a meal is recorded.
type mealRewarder interface {
	UpdateAfterMeal(ctx context.Context, profileID uuid.UUID) []string
}

// MealService logs meals and keeps each day's totals and score current.
type MealService struct {
	db      *gorm.DB
	ai      AIGateway
	rewards mealRewarder
	log     *zap.Logger
}

var _ IMealService = (*MealService)(nil)

func NewMealService(db *gorm.DB, ai AIGateway, rewards mealRewarder) *MealService {
	return &MealService{db: db, ai: ai, rewards: rewards, log: logger.Named("meals")}
}

// ListDays returns the most recent days, newest first.
func (s *MealService) ListDays(ctx context.Context) ([]DaySummary, error) {
	db := s.db.WithContext(ctx)

	var days []models.Day
	if err := db.Order("date desc").Limit(dayListLimit).Find(&days).Error; err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return []DaySummary{}, nil
	}

	ids := make([]uuid.UUID, len(days))
	for i, d := range days {
		ids[i] = d.ID
	}
	var counts []struct {
		DayID uuid.UUID
		N     int
	}
	if err := db.Model(&models.MealEntry{}).
		Select("day_id, count(*) as n").
		Where("day_id IN ?", ids).
		Group("day_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byDay := make(map[uuid.UUID]int, len(counts))
	for _, c := range counts {
		byDay[c.DayID] = c.N
	}

	out := make([]DaySummary, len(days))
	for i, d := range days {
		out[i] = DaySummary{Day: d, MealCount: byDay[d.ID]}
	}
	return out, nil
}

// GetDay returns a day with its meals in time order.
func (s *MealService) GetDay(ctx context.Context, date string) (*models.Day, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	var day models.Day
	err := s.db.WithContext(ctx).
		Preload("Meals", func(tx *gorm.DB) *gorm.DB { return tx.Order("time asc, created_at asc") }).
		Where("date = ?", date).
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// AddMeal analyzes and stores a meal, creating the day on first use.
func (s *MealService) AddMeal(ctx context.Context, date string, in MealInput) (*MealResult, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	in.RawText = strings.TrimSpace(in.RawText)
	in.Time = strings.TrimSpace(in.Time)
	if in.Time == "" || in.RawText == "" {
		return nil, invalid("time and rawText are required")
	}
	if !validTime(in.Time) {
		return nil, invalid("time must be formatted as HH:MM")
	}

	profile, err := loadProfile(ctx, s.db)
	if err != nil {
		return nil, err
	}

	analysis := s.ai.AnalyzeMeal(ctx, in.RawText, in.ImageURL)

	meal := &models.MealEntry{
		Time:    in.Time,
		RawText: in.RawText,
		Foods:   analysis.Foods,
	}
	if in.ImageURL != "" {
		meal.ImageURL = &in.ImageURL
	}
	applyMacros(meal, analysis.Macros())

	// A new day only exists together with its first meal.
	var day models.Day
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where(models.Day{Date: date}).
			Attrs(models.Day{ProfileID: profile.ID, CalorieTarget: profile.DailyCalorieTarget}).
			FirstOrCreate(&day).Error
		if err != nil {
			return err
		}
		meal.DayID = day.ID
		return tx.Create(meal).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.recomputeDay(ctx, &day); err != nil {
		return nil, err
	}

	unlocked := s.rewards.UpdateAfterMeal(ctx, profile.ID)

	s.log.Info("meal added",
		zap.String("date", date),
		zap.Float64("calories", meal.Calories),
		zap.Float64("dayTotal", day.TotalCalories),
	)
	return &MealResult{Meal: meal, Message: analysis.Message, Unlocked: unlocked}, nil
}

// EditMeal re-analyzes a meal from its (possibly changed) text.
func (s *MealService) EditMeal(ctx context.Context, id uuid.UUID, in MealEdit) (*MealResult, error) {
	meal, day, err := s.loadMeal(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Time != nil && strings.TrimSpace(*in.Time) != "" {
		t := strings.TrimSpace(*in.Time)
		if !validTime(t) {
			return nil, invalid("time must be formatted as HH:MM")
		}
		meal.Time = t
	}
	if in.RawText != nil && strings.TrimSpace(*in.RawText) != "" {
		meal.RawText = strings.TrimSpace(*in.RawText)
	}

	imageURL := ""
	if meal.ImageURL != nil {
		imageURL = *meal.ImageURL
	}
	analysis := s.ai.AnalyzeMeal(ctx, meal.RawText, imageURL)
	meal.Foods = analysis.Foods
	applyMacros(meal, analysis.Macros())

	if err := s.db.WithContext(ctx).Save(meal).Error; err != nil {
		return nil, err
	}
	if err := s.recomputeDay(ctx, day); err != nil {
		return nil, err
	}
	return &MealResult{Meal: meal, Message: analysis.Message}, nil
}

// DeleteMeal removes a meal. Its day stays, with totals recomputed.
func (s *MealService) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	meal, day, err := s.loadMeal(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(meal).Error; err != nil {
		return err
	}
	return s.recomputeDay(ctx, day)
}

func (s *MealService) loadMeal(ctx context.Context, id uuid.UUID) (*models.MealEntry, *models.Day, error) {
	db := s.db.WithContext(ctx)

	var meal models.MealEntry
	err := db.First(&meal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrMealNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	var day models.Day
	if err := db.First(&day, "id = ?", meal.DayID).Error; err != nil {
		return nil, nil, err
	}
	return &meal, &day, nil
}

// recomputeDay rebuilds the day's totals from its meals and re-evaluates it.
func (s *MealService) recomputeDay(ctx context.Context, day *models.Day) error {
	db := s.db.WithContext(ctx)

	var meals []models.MealEntry
	if err := db.Where("day_id = ?", day.ID).Order("time asc").Find(&meals).Error; err != nil {
		return err
	}

	macros := make([]nutrition.Macros, len(meals))
	descriptions := make([]string, len(meals))
	for i, m := range meals {
		macros[i] = nutrition.Macros{Calories: m.Calories, Protein: m.Protein, Fat: m.Fat, Carbs: m.Carbs}
		descriptions[i] = m.RawText
	}
	totals := nutrition.SumMeals(macros)

	eval := s.ai.EvaluateDay(ctx, DayEvaluationInput{
		Totals:           totals,
		CalorieTarget:    day.CalorieTarget,
		MealDescriptions: descriptions,
	})

	day.TotalCalories = totals.Calories
	day.TotalProtein = totals.Protein
	day.TotalFat = totals.Fat
	day.TotalCarbs = totals.Carbs
	day.Score = string(eval.Score)
	day.Summary = eval.Comment

	return db.Model(day).Updates(map[string]interface{}{
		"total_calories": day.TotalCalories,
		"total_protein":  day.TotalProtein,
		"total_fat":      day.TotalFat,
		"total_carbs":    day.TotalCarbs,
		"score":          day.Score,
		"summary":        day.Summary,
	}).Error
}

func applyMacros(meal *models.MealEntry, m nutrition.Macros) {
	meal.Calories = m.Calories
	meal.Protein = m.Protein
	meal.Fat = m.Fat
	meal.Carbs = m.Carbs
}
