package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Day aggregates the meals logged on one calendar date.
type Day struct {
	Base
	ProfileID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	Date          string      `gorm:"size:10;not null;uniqueIndex" json:"date"`
	TotalCalories float64     `gorm:"not null;default:0" json:"totalCalories"`
	TotalProtein  float64     `gorm:"not null;default:0" json:"totalProtein"`
	TotalFat      float64     `gorm:"not null;default:0" json:"totalFat"`
	TotalCarbs    float64     `gorm:"not null;default:0" json:"totalCarbs"`
	CalorieTarget int         `gorm:"not null" json:"calorieTargetForDay"`
	Score         string      `gorm:"size:16" json:"dayScore"`
	Summary       string      `gorm:"type:text" json:"aiDaySummary"`
	Meals         []MealEntry `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"mealEntries,omitempty"`
}

func (Day) TableName() string {
	return "days"
}

// ParsedFood is one item recognised in a meal description.
type ParsedFood struct {
	Name       string  `json:"name"`
	Grams      float64 `json:"grams"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Fat        float64 `json:"fat"`
	Carbs      float64 `json:"carbs"`
	Confidence string  `json:"confidence"`
}

// MealEntry is a single logged meal with its estimated nutrition.
type MealEntry struct {
	Base
	DayID    uuid.UUID                       `gorm:"type:uuid;not null;index" json:"dayId"`
	Time     string                          `gorm:"size:5;not null" json:"time"`
	RawText  string                          `gorm:"type:text;not null" json:"rawText"`
	ImageURL *string                         `json:"imageUrl,omitempty"`
	Calories float64                         `gorm:"not null;default:0" json:"calories"`
	Protein  float64                         `gorm:"not null;default:0" json:"protein"`
	Fat      float64                         `gorm:"not null;default:0" json:"fat"`
	Carbs    float64                         `gorm:"not null;default:0" json:"carbs"`
	Foods    datatypes.JSONSlice[ParsedFood] `json:"parsedFoodJson"`
}

func (MealEntry) TableName() string {
	return "meal_entries"
}
