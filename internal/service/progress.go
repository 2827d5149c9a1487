package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pageza/calorie-quest/backend/internal/logger"
	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

// ProgressService maintains the cached AI progress narrative.
type ProgressService struct {
	db  *gorm.DB
	ai  AIGateway
	now Clock
	log *zap.Logger
}

var _ IProgressService = (*ProgressService)(nil)

func NewProgressService(db *gorm.DB, ai AIGateway, now Clock) *ProgressService {
	return &ProgressService{db: db, ai: ai, now: now, log: logger.Named("progress")}
}

// GetSummary returns the last computed summary.
func (s *ProgressService) GetSummary(ctx context.Context) (*models.ProgressSummaryCache, error) {
	profile, err := loadProfile(ctx, s.db)
	if err != nil {
		return nil, err
	}
	var cache models.ProgressSummaryCache
	err = s.db.WithContext(ctx).Where("profile_id = ?", profile.ID).First(&cache).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSummaryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cache, nil
}

// Recompute rebuilds the statistics, asks the AI for a fresh narrative and
// replaces the cached summary.
func (s *ProgressService) Recompute(ctx context.Context) (*models.ProgressSummaryCache, error) {
	profile, err := loadProfile(ctx, s.db)
	if err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	var days []models.Day
	if err := db.Where("profile_id = ?", profile.ID).Order("date asc").Find(&days).Error; err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, ErrNoDays
	}

	var totalCalories float64
	withinTarget := 0
	for _, d := range days {
		totalCalories += d.TotalCalories
		if nutrition.ScoreDay(d.TotalCalories, d.CalorieTarget) == nutrition.ScoreExcellent {
			withinTarget++
		}
	}
	average := totalCalories / float64(len(days))

	var weights []float64
	if err := db.Model(&models.BodyMeasurement{}).
		Where("profile_id = ?", profile.ID).
		Order("date asc").
		Pluck("weight_kg", &weights).Error; err != nil {
		return nil, err
	}
	startWeight, currentWeight := profile.WeightKg, profile.WeightKg
	if len(weights) > 0 {
		startWeight, currentWeight = weights[0], weights[len(weights)-1]
	}

	input := ProgressInput{
		StartDate:        days[0].Date,
		StartWeight:      startWeight,
		CurrentWeight:    currentWeight,
		TargetWeight:     profile.TargetWeightKg,
		AverageCalories:  average,
		DaysWithinTarget: withinTarget,
		TotalDays:        len(days),
		Level:            1,
		Achievements:     []string{},
	}
	var state models.GamificationState
	err = db.Where("profile_id = ?", profile.ID).First(&state).Error
	switch {
	case err == nil:
		input.Streak = state.CurrentStreakDays
		input.Level = state.Level
		input.XP = state.XP
		input.Achievements = state.Achievements
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	summary := s.ai.GenerateProgressSummary(ctx, input)

	details := models.ProgressDetails{
		AverageDailyCalories: math.Round(average),
		DaysWithinTarget:     withinTarget,
		TotalDays:            len(days),
		WeightProgress: models.WeightProgress{
			StartWeight:     startWeight,
			CurrentWeight:   currentWeight,
			TargetWeight:    profile.TargetWeightKg,
			ProgressPercent: nutrition.WeightProgressPercent(startWeight, currentWeight, profile.TargetWeightKg),
		},
		Strengths:      summary.Strengths,
		AreasToImprove: summary.AreasToImprove,
	}

	var cache models.ProgressSummaryCache
	err = db.Where("profile_id = ?", profile.ID).First(&cache).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	cache.ProfileID = profile.ID
	cache.SummaryText = summary.SummaryText
	cache.OverallScore = summary.OverallScore
	cache.LastComputedAt = s.now()
	cache.Details = datatypes.NewJSONType(details)
	if err := db.Save(&cache).Error; err != nil {
		return nil, err
	}

	s.log.Info("progress recomputed",
		zap.Int("days", len(days)),
		zap.Int("daysWithinTarget", withinTarget),
		zap.String("overallScore", cache.OverallScore),
	)
	return &cache, nil
}
