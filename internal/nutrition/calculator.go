// Package nutrition holds the pure calculations behind calorie targets, day
// scoring and progression. Nothing here touches storage or the network.
package nutrition

import "math"

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivityLow:    1.375,
	ActivityMedium: 1.55,
	ActivityHigh:   1.725,
}

// defaultMultiplier applies to unrecognised activity levels.
const defaultMultiplier = 1.55

// minorAdjustment scales the target for users younger than 18.
const minorAdjustment = 1.1

// BMR returns the Mifflin-St Jeor basal metabolic rate. Any gender other
// than male uses the female constant.
func BMR(gender Gender, age int, heightCm, weightKg float64) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == Male {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityMultiplier returns the TDEE multiplier for an activity level.
func ActivityMultiplier(level ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return defaultMultiplier
}

// DailyCalories returns the daily calorie target in kcal.
func DailyCalories(gender Gender, age int, heightCm, weightKg float64, activity ActivityLevel) int {
	tdee := math.Round(BMR(gender, age, heightCm, weightKg) * ActivityMultiplier(activity))
	if age < 18 {
		return int(math.Round(tdee * minorAdjustment))
	}
	return int(tdee)
}

// ValidGender reports whether g is one of the accepted genders.
func ValidGender(g Gender) bool {
	return g == Male || g == Female
}

// ValidActivity reports whether a is one of the accepted activity levels.
func ValidActivity(a ActivityLevel) bool {
	_, ok := activityMultipliers[a]
	return ok
}
