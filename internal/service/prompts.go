package service

import (
	"fmt"
	"math"
	"strings"
)

func mealPrompt(text, imageURL string) string {
	var b strings.Builder
	b.WriteString("Analyze the following meal description and determine:\n")
	b.WriteString("1. The list of foods (name, approximate weight in grams)\n")
	b.WriteString("2. Approximate calories and macronutrients (protein, fat, carbs) for each\n")
	b.WriteString("3. Your confidence in each estimate (low, medium, high)\n\n")
	b.WriteString("If no weight is given, estimate it from context.\n\n")
	fmt.Fprintf(&b, "Meal: %q\n", text)
	if imageURL != "" {
		fmt.Fprintf(&b, "A photo of the meal is available at: %s\n", imageURL)
	}
	b.WriteString(`
Reply ONLY with JSON in this format:
{
  "foods": [
    {"name": "food name", "grams": 0, "calories": 0, "protein": 0, "fat": 0, "carbs": 0, "confidence": "low|medium|high"}
  ],
  "totalCalories": 0,
  "totalProtein": 0,
  "totalFat": 0,
  "totalCarbs": 0,
  "aiMessage": "a short friendly note about what was logged"
}`)
	return b.String()
}

func dayPrompt(in DayEvaluationInput) string {
	return fmt.Sprintf(`Evaluate the user's day and give a friendly comment:
- Calories eaten: %.0f
- Daily target: %d
- Protein: %.0fg, Fat: %.0fg, Carbs: %.0fg
- Meals: %s

Reply ONLY with JSON:
{
  "score": "excellent|ok|overbudget",
  "comment": "2-4 friendly sentences with one tip"
}`,
		in.Totals.Calories, in.CalorieTarget,
		in.Totals.Protein, in.Totals.Fat, in.Totals.Carbs,
		strings.Join(in.MealDescriptions, ", "),
	)
}

func progressPrompt(in ProgressInput) string {
	weightChange := 0.0
	if in.StartWeight != 0 {
		weightChange = (in.StartWeight - in.CurrentWeight) / in.StartWeight * 100
	}
	withinPct := 0.0
	if in.TotalDays > 0 {
		withinPct = float64(in.DaysWithinTarget) / float64(in.TotalDays) * 100
	}
	achievements := strings.Join(in.Achievements, ", ")
	if achievements == "" {
		achievements = "none yet"
	}

	return fmt.Sprintf(`Evaluate the user's overall progress since %s:
- Start weight: %.1f kg
- Current weight: %.1f kg
- Target weight: %.1f kg
- Weight change: %.1f%%
- Average daily calories: %.0f
- Days within calorie target: %d/%d (%.0f%%)
- Current streak: %d days
- Level: %d (%d XP)
- Achievements: %s

Reply ONLY with JSON:
{
  "overallScore": "excellent|good|okay|room to grow",
  "summaryText": "3-4 paragraphs of friendly, detailed analysis",
  "strengths": ["strength 1", "strength 2"],
  "areasToImprove": ["area 1", "area 2"]
}`,
		in.StartDate, in.StartWeight, in.CurrentWeight, in.TargetWeight, weightChange,
		math.Round(in.AverageCalories), in.DaysWithinTarget, in.TotalDays, withinPct,
		in.Streak, in.Level, in.XP, achievements,
	)
}

const questPrompt = `Come up with ONE simple, non-extreme mini quest for today for a teenager.

IMPORTANT:
- No fasting and no risky diets
- Only positive, healthy habits
- Simple and achievable

Examples: "Drink 8 glasses of water", "Add vegetables to lunch", "Have a fruit as a snack"

Reply in exactly this format (plain text, no JSON):
QUEST: [the quest]`
