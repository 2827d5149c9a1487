package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pageza/calorie-quest/backend/internal/logger"
	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

// GamificationService keeps streaks, XP and achievements up to date.
type GamificationService struct {
	db                  *gorm.DB
	now                 Clock
	bonusPerAchievement bool
	log                 *zap.Logger
}

var _ IGamificationService = (*GamificationService)(nil)

// NewGamificationService creates a GamificationService. With
// bonusPerAchievement the unlock bonus is paid for every new achievement
// instead of once per update.
func NewGamificationService(db *gorm.DB, now Clock, bonusPerAchievement bool) *GamificationService {
	return &GamificationService{
		db:                  db,
		now:                 now,
		bonusPerAchievement: bonusPerAchievement,
		log:                 logger.Named("gamification"),
	}
}

// GetState returns the profile's gamification record.
func (s *GamificationService) GetState(ctx context.Context) (*models.GamificationState, error) {
	profile, err := loadProfile(ctx, s.db)
	if err != nil {
		return nil, err
	}
	state, err := s.loadState(ctx, profile.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	return state, err
}

// UpdateAfterMeal applies the rewards for a newly recorded meal and returns
// the achievements it unlocked. Failures are logged and never returned.
func (s *GamificationService) UpdateAfterMeal(ctx context.Context, profileID uuid.UUID) []string {
	unlocked, err := s.update(ctx, profileID)
	if err != nil {
		s.log.Error("gamification update failed", zap.String("profileId", profileID.String()), zap.Error(err))
		return nil
	}
	return unlocked
}

func (s *GamificationService) update(ctx context.Context, profileID uuid.UUID) ([]string, error) {
	db := s.db.WithContext(ctx)

	state, err := s.loadState(ctx, profileID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var days []models.Day
	if err := db.Where("profile_id = ?", profileID).Order("date asc").Find(&days).Error; err != nil {
		return nil, err
	}
	var weights []float64
	if err := db.Model(&models.BodyMeasurement{}).
		Where("profile_id = ?", profileID).
		Order("date asc").
		Pluck("weight_kg", &weights).Error; err != nil {
		return nil, err
	}

	now := s.now()
	todayStr := nutrition.DateString(now)

	var today *models.Day
	activeDays, withinTarget := 0, 0
	for i := range days {
		d := &days[i]
		if d.Date == todayStr {
			today = d
		}
		if d.TotalCalories > 0 {
			activeDays++
		}
		if nutrition.ScoreDay(d.TotalCalories, d.CalorieTarget) == nutrition.ScoreExcellent {
			withinTarget++
		}
	}

	active := today != nil && today.TotalCalories > 0
	streak := nutrition.NextStreak(state.CurrentStreakDays, state.LastActiveDate, now, active)
	longest := nutrition.LongestStreak(state.LongestStreakDays, streak)

	xp := nutrition.AddXP(state.XP, nutrition.ActionMealRecorded)
	if today != nil {
		var meals int64
		if err := db.Model(&models.MealEntry{}).Where("day_id = ?", today.ID).Count(&meals).Error; err != nil {
			return nil, err
		}
		if meals > 0 {
			xp = nutrition.AddXP(xp, nutrition.ActionDayCompleted)
		}
		if nutrition.ScoreDay(today.TotalCalories, today.CalorieTarget) == nutrition.ScoreExcellent {
			xp = nutrition.AddXP(xp, nutrition.ActionWithinTarget)
		}
	}

	earned := nutrition.DetermineAchievements(nutrition.Stats{
		ActiveDays:       activeDays,
		Streak:           streak,
		DaysWithinTarget: withinTarget,
		WeightLostKg:     nutrition.WeightLost(weights),
		XP:               xp,
	})
	unlocked := nutrition.NewAchievements(state.Achievements, earned)
	switch {
	case len(unlocked) == 0:
	case s.bonusPerAchievement:
		for range unlocked {
			xp = nutrition.AddXP(xp, nutrition.ActionAchievementUnlocked)
		}
	default:
		xp = nutrition.AddXP(xp, nutrition.ActionAchievementUnlocked)
	}

	err = db.Model(state).Updates(map[string]interface{}{
		"current_streak_days": streak,
		"longest_streak_days": longest,
		"xp":                  xp,
		"level":               nutrition.Level(xp),
		"last_active_date":    todayStr,
		"achievements":        datatypes.JSONSlice[string](nutrition.MergeAchievements(state.Achievements, earned)),
	}).Error
	if err != nil {
		return nil, err
	}

	if len(unlocked) > 0 {
		s.log.Info("achievements unlocked", zap.Strings("ids", unlocked), zap.Int("xp", xp))
	}
	return unlocked, nil
}

func (s *GamificationService) loadState(ctx context.Context, profileID uuid.UUID) (*models.GamificationState, error) {
	var state models.GamificationState
	if err := s.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}
