package engage

import "vitalog/internal/wellness"

// GoalProgress pairs a goal with its capped completion percent.
type GoalProgress struct {
	wellness.Goal
	Percent float64 `json:"percent"`
}

// DaySummary is the dashboard snapshot: total logged calories, today's
// sleep and steps, and per-goal completion.
type DaySummary struct {
	TotalCalories float64               `json:"total_calories"`
	StepsToday    int                   `json:"steps_today"`
	SleepHours    float64               `json:"sleep_hours"`
	Streak        int                   `json:"streak"`
	Goals         []GoalProgress        `json:"goals"`
	Medications   []wellness.Medication `json:"medications"`
}

func (e *Engine) DaySummary() DaySummary {
	today := e.now().Format(wellness.DateLayout)

	var out DaySummary
	for _, m := range e.store.Meals() {
		out.TotalCalories += m.Calories
	}
	for _, entry := range e.store.SleepEntries() {
		if entry.Date == today {
			out.SleepHours = entry.Duration
			break
		}
	}
	for _, entry := range e.store.StepEntries() {
		if entry.Date == today {
			out.StepsToday = entry.Count
			break
		}
	}
	for _, g := range e.store.Goals() {
		out.Goals = append(out.Goals, GoalProgress{Goal: g, Percent: CompletionPercent(g)})
	}
	out.Medications = e.store.Medications()
	out.Streak = e.Streak()
	return out
}

// WeeklyWindow is the last-7-day slice of loggable data fed to the
// weekly-report feature.
type WeeklyWindow struct {
	Meals    []wellness.Meal
	Sleep    []wellness.SleepEntry
	Workouts []wellness.WorkoutLog
}

func (e *Engine) WeekOf() WeeklyWindow {
	cutoff := e.now().AddDate(0, 0, -7)
	cutoffDate := cutoff.Format(wellness.DateLayout)

	var w WeeklyWindow
	for _, m := range e.store.Meals() {
		if m.CreatedAt.After(cutoff) {
			w.Meals = append(w.Meals, m)
		}
	}
	for _, s := range e.store.SleepEntries() {
		if s.Date >= cutoffDate {
			w.Sleep = append(w.Sleep, s)
		}
	}
	for _, l := range e.store.WorkoutLogs() {
		if l.Date >= cutoffDate {
			w.Workouts = append(w.Workouts, l)
		}
	}
	return w
}
