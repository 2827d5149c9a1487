package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/testhelpers"
)

func TestProfileService_SaveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("should create profile with derived target and starter records", func(t *testing.T) {
		db := testhelpers.SetupSQLite(t)
		svc := NewProfileService(db, fixedClock(testNow))

		profile, created, err := svc.SaveProfile(ctx, teenProfile)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 2839, profile.DailyCalorieTarget)
		assert.Equal(t, models.PrimarySlot, profile.Slot)

		var state models.GamificationState
		require.NoError(t, db.Where("profile_id = ?", profile.ID).First(&state).Error)
		assert.Equal(t, 1, state.Level)
		assert.Zero(t, state.XP)
		assert.Nil(t, state.LastActiveDate)
		assert.Empty(t, state.Achievements)

		var cache models.ProgressSummaryCache
		require.NoError(t, db.Where("profile_id = ?", profile.ID).First(&cache).Error)
		assert.Equal(t, "starting", cache.OverallScore)
		assert.Equal(t, welcomeSummary, cache.SummaryText)
	})

	t.Run("should update the same profile on second save", func(t *testing.T) {
		db := testhelpers.SetupSQLite(t)
		svc := NewProfileService(db, fixedClock(testNow))

		first, _, err := svc.SaveProfile(ctx, teenProfile)
		require.NoError(t, err)

		adult := ProfileInput{Age: 30, Gender: "male", HeightCm: 175, WeightKg: 70, TargetWeightKg: 68, ActivityLevel: "high"}
		second, created, err := svc.SaveProfile(ctx, adult)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 2844, second.DailyCalorieTarget)

		var count int64
		require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
		require.NoError(t, db.Model(&models.GamificationState{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("should keep the target of existing days", func(t *testing.T) {
		db, profile := setupProfile(t)
		day := models.Day{ProfileID: profile.ID, Date: "2025-03-09", CalorieTarget: profile.DailyCalorieTarget}
		require.NoError(t, db.Create(&day).Error)

		in := teenProfile
		in.ActivityLevel = "low"
		_, _, err := NewProfileService(db, fixedClock(testNow)).SaveProfile(ctx, in)
		require.NoError(t, err)

		var stored models.Day
		require.NoError(t, db.First(&stored, "id = ?", day.ID).Error)
		assert.Equal(t, 2839, stored.CalorieTarget)
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		db := testhelpers.SetupSQLite(t)
		svc := NewProfileService(db, fixedClock(testNow))

		cases := map[string]func(*ProfileInput){
			"missing age":     func(in *ProfileInput) { in.Age = 0 },
			"bad gender":      func(in *ProfileInput) { in.Gender = "other" },
			"bad activity":    func(in *ProfileInput) { in.ActivityLevel = "extreme" },
			"missing height":  func(in *ProfileInput) { in.HeightCm = 0 },
			"negative weight": func(in *ProfileInput) { in.WeightKg = -1 },
			"missing target":  func(in *ProfileInput) { in.TargetWeightKg = 0 },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				in := teenProfile
				mutate(&in)
				_, _, err := svc.SaveProfile(ctx, in)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("should report missing profile", func(t *testing.T) {
		svc := NewProfileService(testhelpers.SetupSQLite(t), fixedClock(testNow))
		_, err := svc.GetProfile(ctx)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("should return saved profile", func(t *testing.T) {
		db, saved := setupProfile(t)
		got, err := NewProfileService(db, fixedClock(testNow)).GetProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, got.ID)
		assert.Equal(t, 13, got.Age)
	})
}
