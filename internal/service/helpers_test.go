package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/testhelpers"
)

// testNow is a fixed "current time" used across the service tests.
var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// teenProfile targets 2839 kcal per day.
var teenProfile = ProfileInput{
	Age:            13,
	Gender:         "male",
	HeightCm:       172,
	WeightKg:       65,
	TargetWeightKg: 60,
	ActivityLevel:  "medium",
}

func setupProfile(t *testing.T) (*gorm.DB, *models.Profile) {
	t.Helper()
	db := testhelpers.SetupSQLite(t)
	profile, created, err := NewProfileService(db, fixedClock(testNow)).SaveProfile(context.Background(), teenProfile)
	require.NoError(t, err)
	require.True(t, created)
	return db, profile
}

// scriptedAI returns a fixed meal analysis and grades days like the fallback.
type scriptedAI struct {
	FallbackGateway

	mu     sync.Mutex
	meal   MealAnalysis
	quests []string
	calls  int
}

func newScriptedAI(meal MealAnalysis) *scriptedAI {
	return &scriptedAI{meal: meal}
}

func (a *scriptedAI) AnalyzeMeal(context.Context, string, string) MealAnalysis {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return a.meal
}

func (a *scriptedAI) GenerateDailyQuest(context.Context) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	q := "Drink a glass of water"
	if len(a.quests) > 0 {
		q, a.quests = a.quests[0], a.quests[1:]
	}
	return q
}

func (a *scriptedAI) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls
}

// noRewards satisfies mealRewarder without touching gamification.
type noRewards struct{}

func (noRewards) UpdateAfterMeal(context.Context, uuid.UUID) []string { return nil }
