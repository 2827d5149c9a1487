package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pageza/calorie-quest/backend/internal/models"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
	"github.com/pageza/calorie-quest/backend/internal/service"
)

// DayListItem is one row of the day list.
type DayListItem struct {
	ID                uuid.UUID `json:"id"`
	Date              string    `json:"date"`
	TotalCalories     float64   `json:"totalCalories"`
	DayScore          string    `json:"dayScore"`
	AIDaySummary      string    `json:"aiDaySummary"`
	CalorieTarget     int       `json:"calorieTargetForDay"`
	MealCount         int       `json:"mealCount"`
	CaloriesRemaining float64   `json:"caloriesRemaining"`
	CreatedAt         time.Time `json:"createdAt"`
}

func newDayListItem(d service.DaySummary) DayListItem {
	return DayListItem{
		ID:                d.ID,
		Date:              d.Date,
		TotalCalories:     d.TotalCalories,
		DayScore:          d.Score,
		AIDaySummary:      d.Summary,
		CalorieTarget:     d.CalorieTarget,
		MealCount:         d.MealCount,
		CaloriesRemaining: nutrition.CaloriesRemaining(d.CalorieTarget, d.TotalCalories),
		CreatedAt:         d.CreatedAt,
	}
}

// DayResponse is a day with all its meals.
type DayResponse struct {
	ID                uuid.UUID          `json:"id"`
	Date              string             `json:"date"`
	TotalCalories     float64            `json:"totalCalories"`
	TotalProtein      float64            `json:"totalProtein"`
	TotalFat          float64            `json:"totalFat"`
	TotalCarbs        float64            `json:"totalCarbs"`
	DayScore          string             `json:"dayScore"`
	AIDaySummary      string             `json:"aiDaySummary"`
	CalorieTarget     int                `json:"calorieTargetForDay"`
	MealEntries       []models.MealEntry `json:"mealEntries"`
	CaloriesRemaining float64            `json:"caloriesRemaining"`
	CreatedAt         time.Time          `json:"createdAt"`
}

func newDayResponse(d *models.Day) DayResponse {
	meals := d.Meals
	if meals == nil {
		meals = []models.MealEntry{}
	}
	return DayResponse{
		ID:                d.ID,
		Date:              d.Date,
		TotalCalories:     d.TotalCalories,
		TotalProtein:      d.TotalProtein,
		TotalFat:          d.TotalFat,
		TotalCarbs:        d.TotalCarbs,
		DayScore:          d.Score,
		AIDaySummary:      d.Summary,
		CalorieTarget:     d.CalorieTarget,
		MealEntries:       meals,
		CaloriesRemaining: nutrition.CaloriesRemaining(d.CalorieTarget, d.TotalCalories),
		CreatedAt:         d.CreatedAt,
	}
}

// MealResponse is a stored meal plus the feedback produced while saving it.
type MealResponse struct {
	models.MealEntry
	AIMessage            string                      `json:"aiMessage,omitempty"`
	UnlockedAchievements []nutrition.AchievementInfo `json:"unlockedAchievements,omitempty"`
}

func newMealResponse(res *service.MealResult) MealResponse {
	out := MealResponse{MealEntry: *res.Meal, AIMessage: res.Message}
	if len(res.Unlocked) > 0 {
		out.UnlockedAchievements = nutrition.Catalog(res.Unlocked)
	}
	return out
}

// GamificationResponse adds level progress and achievement details to the stored state.
type GamificationResponse struct {
	ID                 uuid.UUID                   `json:"id"`
	CurrentStreakDays  int                         `json:"currentStreakDays"`
	LongestStreakDays  int                         `json:"longestStreakDays"`
	XP                 int                         `json:"xp"`
	Level              int                         `json:"level"`
	XPInLevel          int                         `json:"xpInLevel"`
	XPForNextLevel     int                         `json:"xpForNextLevel"`
	Achievements       []string                    `json:"achievements"`
	AchievementDetails []nutrition.AchievementInfo `json:"achievementDetails"`
	LastActiveDate     *string                     `json:"lastActiveDate"`
}

func newGamificationResponse(s *models.GamificationState) GamificationResponse {
	achievements := []string(s.Achievements)
	if achievements == nil {
		achievements = []string{}
	}
	return GamificationResponse{
		ID:                 s.ID,
		CurrentStreakDays:  s.CurrentStreakDays,
		LongestStreakDays:  s.LongestStreakDays,
		XP:                 s.XP,
		Level:              s.Level,
		XPInLevel:          nutrition.XPInLevel(s.XP),
		XPForNextLevel:     nutrition.XPPerLevel,
		Achievements:       achievements,
		AchievementDetails: nutrition.Catalog(achievements),
		LastActiveDate:     s.LastActiveDate,
	}
}

type loginRequest struct {
	Passphrase string `json:"passphrase"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}
