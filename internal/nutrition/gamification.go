package nutrition

// Action is something the user did that earns experience.
type Action string

const (
	ActionMealRecorded        Action = "meal_recorded"
	ActionDayCompleted        Action = "day_completed"
	ActionWithinTarget        Action = "within_target"
	ActionAchievementUnlocked Action = "achievement_unlocked"
)

var actionRewards = map[Action]int{
	ActionMealRecorded:        5,
	ActionDayCompleted:        15,
	ActionWithinTarget:        25,
	ActionAchievementUnlocked: 50,
}

// XPPerLevel is the experience needed to advance one level.
const XPPerLevel = 100

// AddXP returns xp plus the reward for action. Unknown actions award nothing.
func AddXP(xp int, action Action) int {
	return xp + actionRewards[action]
}

// Level is 1 for 0..99 XP, 2 for 100..199 and so on.
func Level(xp int) int {
	return xp/XPPerLevel + 1
}

// XPInLevel is the progress towards the next level.
func XPInLevel(xp int) int {
	return xp % XPPerLevel
}

// Stats are the inputs achievements are derived from.
type Stats struct {
	ActiveDays       int
	Streak           int
	DaysWithinTarget int
	WeightLostKg     float64
	XP               int
}

// Achievement identifiers.
const (
	AchFirstDay      = "first_day"
	AchWeekChampion  = "week_champion"
	AchMonthMarathon = "month_marathon"
	AchHundredDays   = "hundred_days"
	AchStreak7       = "streak_7"
	AchStreak30      = "streak_30"
	AchWeekOnTarget  = "week_on_target"
	AchMonthOnTarget = "month_on_target"
	AchFirstKilogram = "first_kilogram"
	AchFiveKilograms = "five_kilograms"
	AchXP100         = "xp_100"
	AchXP500         = "xp_500"
	AchXP1000        = "xp_1000"
)

// AchievementInfo is the display data for an achievement.
type AchievementInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type rule struct {
	info AchievementInfo
	met  func(Stats) bool
}

// rules are evaluated in order; DetermineAchievements preserves it.
var rules = []rule{
	{AchievementInfo{AchFirstDay, "First Day", "Log your first day", "🌱"}, func(s Stats) bool { return s.ActiveDays >= 1 }},
	{AchievementInfo{AchWeekChampion, "Week Champion", "Log meals on 7 days", "🏅"}, func(s Stats) bool { return s.ActiveDays >= 7 }},
	{AchievementInfo{AchMonthMarathon, "Month Marathon", "Log meals on 30 days", "🏃"}, func(s Stats) bool { return s.ActiveDays >= 30 }},
	{AchievementInfo{AchHundredDays, "Hundred Days", "Log meals on 100 days", "💯"}, func(s Stats) bool { return s.ActiveDays >= 100 }},
	{AchievementInfo{AchStreak7, "7 Days in a Row", "Keep a 7 day streak", "🔥"}, func(s Stats) bool { return s.Streak >= 7 }},
	{AchievementInfo{AchStreak30, "Month Streak", "Keep a 30 day streak", "⚡"}, func(s Stats) bool { return s.Streak >= 30 }},
	{AchievementInfo{AchWeekOnTarget, "Week on Target", "Stay within target on 7 days", "🎯"}, func(s Stats) bool { return s.DaysWithinTarget >= 7 }},
	{AchievementInfo{AchMonthOnTarget, "Month on Target", "Stay within target on 30 days", "🏆"}, func(s Stats) bool { return s.DaysWithinTarget >= 30 }},
	{AchievementInfo{AchFirstKilogram, "First Kilogram", "Lose your first kilogram", "⚖️"}, func(s Stats) bool { return s.WeightLostKg >= 1 }},
	{AchievementInfo{AchFiveKilograms, "Five Kilograms Down", "Lose five kilograms", "🥇"}, func(s Stats) bool { return s.WeightLostKg >= 5 }},
	{AchievementInfo{AchXP100, "Warming Up", "Earn 100 XP", "⭐"}, func(s Stats) bool { return s.XP >= 100 }},
	{AchievementInfo{AchXP500, "The Journey Begins", "Earn 500 XP", "🌟"}, func(s Stats) bool { return s.XP >= 500 }},
	{AchievementInfo{AchXP1000, "Thousand Club", "Earn 1000 XP", "👑"}, func(s Stats) bool { return s.XP >= 1000 }},
}

// DetermineAchievements returns every achievement the stats qualify for.
func DetermineAchievements(s Stats) []string {
	if s.WeightLostKg < 0 {
		s.WeightLostKg = 0
	}
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.met(s) {
			out = append(out, r.info.ID)
		}
	}
	return out
}

// NewAchievements returns the entries of next missing from prev, in the order of next.
func NewAchievements(prev, next []string) []string {
	seen := toSet(prev)
	out := make([]string, 0, len(next))
	for _, id := range next {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// MergeAchievements returns the deduplicated union of prev and next.
func MergeAchievements(prev, next []string) []string {
	seen := make(map[string]struct{}, len(prev)+len(next))
	out := make([]string, 0, len(prev)+len(next))
	for _, list := range [][]string{prev, next} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// Catalog returns display info for the given ids. Unknown ids get a bare entry.
func Catalog(ids []string) []AchievementInfo {
	out := make([]AchievementInfo, 0, len(ids))
	for _, id := range ids {
		info, ok := lookup(id)
		if !ok {
			info = AchievementInfo{ID: id, Name: id}
		}
		out = append(out, info)
	}
	return out
}

// AllAchievements lists the full catalog in evaluation order.
func AllAchievements() []AchievementInfo {
	out := make([]AchievementInfo, len(rules))
	for i, r := range rules {
		out[i] = r.info
	}
	return out
}

func lookup(id string) (AchievementInfo, bool) {
	for _, r := range rules {
		if r.info.ID == id {
			return r.info, true
		}
	}
	return AchievementInfo{}, false
}

func toSet(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}
