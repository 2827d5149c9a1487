package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
	"github.com/pageza/calorie-quest/backend/internal/testhelpers"
)

// seedDay stores a day with one meal worth calories.
func seedDay(t *testing.T, db *gorm.DB, profileID uuid.UUID, date string, calories float64, target int) {
	t.Helper()
	day := models.Day{ProfileID: profileID, Date: date, TotalCalories: calories, CalorieTarget: target}
	require.NoError(t, db.Create(&day).Error)
	meal := models.MealEntry{DayID: day.ID, Time: "12:00", RawText: "meal", Calories: calories}
	require.NoError(t, db.Create(&meal).Error)
}

func setState(t *testing.T, db *gorm.DB, profileID uuid.UUID, updates map[string]interface{}) {
	t.Helper()
	require.NoError(t, db.Model(&models.GamificationState{}).Where("profile_id = ?", profileID).Updates(updates).Error)
}

func loadState(t *testing.T, db *gorm.DB) *models.GamificationState {
	t.Helper()
	state, err := NewGamificationService(db, fixedClock(testNow), false).GetState(context.Background())
	require.NoError(t, err)
	return state
}

func daysBefore(n int) string {
	return nutrition.DateString(testNow.AddDate(0, 0, -n))
}

func TestGamificationService_UpdateAfterMeal(t *testing.T) {
	ctx := context.Background()
	today := nutrition.DateString(testNow)

	t.Run("should start a streak on the first active day", func(t *testing.T) {
		db, profile := setupProfile(t)
		seedDay(t, db, profile.ID, today, 200, 2839)
		svc := NewGamificationService(db, fixedClock(testNow), false)

		unlocked := svc.UpdateAfterMeal(ctx, profile.ID)
		assert.Equal(t, []string{nutrition.AchFirstDay}, unlocked)

		state := loadState(t, db)
		assert.Equal(t, 1, state.CurrentStreakDays)
		assert.Equal(t, 1, state.LongestStreakDays)
		// meal 5 + day completed 15 + unlock bonus 50
		assert.Equal(t, 70, state.XP)
		assert.Equal(t, 1, state.Level)
		require.NotNil(t, state.LastActiveDate)
		assert.Equal(t, today, *state.LastActiveDate)
		assert.Equal(t, []string{nutrition.AchFirstDay}, []string(state.Achievements))
	})

	t.Run("should extend a streak from yesterday", func(t *testing.T) {
		db, profile := setupProfile(t)
		seedDay(t, db, profile.ID, daysBefore(1), 200, 2839)
		seedDay(t, db, profile.ID, today, 200, 2839)
		setState(t, db, profile.ID, map[string]interface{}{
			"current_streak_days": 3,
			"longest_streak_days": 3,
			"last_active_date":    daysBefore(1),
			"achievements":        `["first_day"]`,
		})

		assert.Empty(t, NewGamificationService(db, fixedClock(testNow), false).UpdateAfterMeal(ctx, profile.ID))

		state := loadState(t, db)
		assert.Equal(t, 4, state.CurrentStreakDays)
		assert.Equal(t, 4, state.LongestStreakDays)
		assert.Equal(t, 20, state.XP)
	})

	t.Run("should restart a broken streak and keep the record", func(t *testing.T) {
		db, profile := setupProfile(t)
		seedDay(t, db, profile.ID, today, 200, 2839)
		setState(t, db, profile.ID, map[string]interface{}{
			"current_streak_days": 5,
			"longest_streak_days": 9,
			"last_active_date":    daysBefore(3),
			"achievements":        `["first_day"]`,
		})

		NewGamificationService(db, fixedClock(testNow), false).UpdateAfterMeal(ctx, profile.ID)

		state := loadState(t, db)
		assert.Equal(t, 1, state.CurrentStreakDays)
		assert.Equal(t, 9, state.LongestStreakDays)
	})

	t.Run("should restart the streak on a second update the same day", func(t *testing.T) {
		db, profile := setupProfile(t)
		seedDay(t, db, profile.ID, today, 200, 2839)
		setState(t, db, profile.ID, map[string]interface{}{
			"current_streak_days": 4,
			"longest_streak_days": 4,
			"last_active_date":    today,
			"achievements":        `["first_day"]`,
		})

		NewGamificationService(db, fixedClock(testNow), false).UpdateAfterMeal(ctx, profile.ID)

		state := loadState(t, db)
		assert.Equal(t, 1, state.CurrentStreakDays)
		assert.Equal(t, 4, state.LongestStreakDays)
	})

	t.Run("should leave the streak alone when today has no meals", func(t *testing.T) {
		db, profile := setupProfile(t)
		seedDay(t, db, profile.ID, daysBefore(2), 200, 2839)
		setState(t, db, profile.ID, map[string]interface{}{
			"current_streak_days": 2,
			"longest_streak_days": 2,
			"last_active_date":    daysBefore(2),
			"achievements":        `["first_day"]`,
		})

		NewGamificationService(db, fixedClock(testNow), false).UpdateAfterMeal(ctx, profile.ID)

		state := loadState(t, db)
		assert.Equal(t, 2, state.CurrentStreakDays)
		assert.Equal(t, 5, state.XP, "only the meal reward applies")
		require.NotNil(t, state.LastActiveDate)
		assert.Equal(t, today, *state.LastActiveDate)
	})

	t.Run("should award the within target bonus", func(t *testing.T) {
		db, profile := setupProfile(t)
		seedDay(t, db, profile.ID, today, 2700, 2839)
		setState(t, db, profile.ID, map[string]interface{}{"achievements": `["first_day"]`})

		NewGamificationService(db, fixedClock(testNow), false).UpdateAfterMeal(ctx, profile.ID)

		assert.Equal(t, 45, loadState(t, db).XP)
	})

	t.Run("should level up and unlock xp achievements", func(t *testing.T) {
		db, profile := setupProfile(t)
		seedDay(t, db, profile.ID, today, 200, 2839)
		setState(t, db, profile.ID, map[string]interface{}{"xp": 90, "level": 1, "achievements": `["first_day"]`})

		unlocked := NewGamificationService(db, fixedClock(testNow), false).UpdateAfterMeal(ctx, profile.ID)
		assert.Equal(t, []string{nutrition.AchXP100}, unlocked)

		state := loadState(t, db)
		assert.Equal(t, 160, state.XP)
		assert.Equal(t, 2, state.Level)
		assert.ElementsMatch(t, []string{nutrition.AchFirstDay, nutrition.AchXP100}, state.Achievements)
	})

	t.Run("should unlock weight achievements from measurements", func(t *testing.T) {
		db, profile := setupProfile(t)
		seedDay(t, db, profile.ID, today, 200, 2839)
		setState(t, db, profile.ID, map[string]interface{}{"achievements": `["first_day"]`})
		for date, w := range map[string]float64{daysBefore(20): 80, daysBefore(10): 79.4, daysBefore(1): 78.8} {
			require.NoError(t, db.Create(&models.BodyMeasurement{ProfileID: profile.ID, Date: date, WeightKg: w}).Error)
		}

		unlocked := NewGamificationService(db, fixedClock(testNow), false).UpdateAfterMeal(ctx, profile.ID)
		assert.Equal(t, []string{nutrition.AchFirstKilogram}, unlocked)
	})

	t.Run("should ignore a profile without state", func(t *testing.T) {
		db := testhelpers.SetupSQLite(t)
		assert.Nil(t, NewGamificationService(db, fixedClock(testNow), false).UpdateAfterMeal(ctx, uuid.New()))
	})
}

func TestGamificationService_AchievementBonus(t *testing.T) {
	ctx := context.Background()

	// A week of on-target days ending today unlocks four achievements at once.
	seedWeek := func(t *testing.T) (*gorm.DB, uuid.UUID) {
		db, profile := setupProfile(t)
		for i := 6; i >= 0; i-- {
			seedDay(t, db, profile.ID, daysBefore(i), 2000, 2000)
		}
		setState(t, db, profile.ID, map[string]interface{}{
			"current_streak_days": 6,
			"longest_streak_days": 6,
			"last_active_date":    daysBefore(1),
		})
		return db, profile.ID
	}
	want := []string{nutrition.AchFirstDay, nutrition.AchWeekChampion, nutrition.AchStreak7, nutrition.AchWeekOnTarget}

	t.Run("should pay the bonus once per update by default", func(t *testing.T) {
		db, profileID := seedWeek(t)
		unlocked := NewGamificationService(db, fixedClock(testNow), false).UpdateAfterMeal(ctx, profileID)
		assert.Equal(t, want, unlocked)

		state := loadState(t, db)
		// 5 + 15 + 25 + 50
		assert.Equal(t, 95, state.XP)
		assert.Equal(t, 7, state.CurrentStreakDays)
	})

	t.Run("should pay the bonus per achievement when configured", func(t *testing.T) {
		db, profileID := seedWeek(t)
		unlocked := NewGamificationService(db, fixedClock(testNow), true).UpdateAfterMeal(ctx, profileID)
		assert.Equal(t, want, unlocked)

		state := loadState(t, db)
		// 5 + 15 + 25 + 4*50
		assert.Equal(t, 245, state.XP)
		assert.Equal(t, 3, state.Level)
	})
}

func TestGamificationService_GetState(t *testing.T) {
	svc := NewGamificationService(testhelpers.SetupSQLite(t), time.Now, false)
	_, err := svc.GetState(context.Background())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
