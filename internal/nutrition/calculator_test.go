package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyCalories(t *testing.T) {
	tests := []struct {
		name     string
		gender   Gender
		age      int
		height   float64
		weight   float64
		activity ActivityLevel
		want     int
	}{
		// bmr 1665, tdee round(2580.75)=2581, teen round(2839.1)=2839
		{"teen male medium", Male, 13, 172, 65, ActivityMedium, 2839},
		// bmr 1648.75, tdee round(2555.56)=2556
		{"adult male medium", Male, 30, 175, 70, ActivityMedium, 2556},
		// bmr 1345.25, tdee round(1849.72)=1850
		{"adult female low", Female, 25, 165, 60, ActivityLow, 1850},
		// bmr 1648.75, tdee round(2844.09)=2844
		{"adult male high", Male, 30, 175, 70, ActivityHigh, 2844},
		{"unknown activity uses medium", Male, 30, 175, 70, ActivityLevel("extreme"), 2556},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DailyCalories(tt.gender, tt.age, tt.height, tt.weight, tt.activity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBMRGenderOffset(t *testing.T) {
	for _, age := range []int{10, 17, 18, 45, 80} {
		male := BMR(Male, age, 170, 70)
		female := BMR(Female, age, 170, 70)
		assert.InDelta(t, 166, male-female, 1e-9)
	}
}

func TestDailyCaloriesMinorAdjustment(t *testing.T) {
	for _, activity := range []ActivityLevel{ActivityLow, ActivityMedium, ActivityHigh} {
		tdee := math.Round(BMR(Female, 17, 160, 55) * ActivityMultiplier(activity))
		got := DailyCalories(Female, 17, 160, 55, activity)
		assert.Equal(t, int(math.Round(tdee*1.1)), got)
		assert.Positive(t, got)
	}
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidGender(Male))
	assert.True(t, ValidGender(Female))
	assert.False(t, ValidGender("other"))
	assert.True(t, ValidActivity(ActivityHigh))
	assert.False(t, ValidActivity(""))
}
