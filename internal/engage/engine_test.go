package engage

import (
	"path/filepath"
	"testing"
	"time"

	"vitalog/internal/settings"
	"vitalog/internal/store"
	"vitalog/internal/wellness"
)

func newTestEngine(t *testing.T, st *store.Store, clock *time.Time) *Engine {
	t.Helper()
	prefs, err := settings.Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("open settings: %v", err)
	}
	t.Cleanup(func() { prefs.Close() })
	return New(st, prefs, WithClock(func() time.Time { return *clock }))
}

func TestEvaluateVisit_StreakRules(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, store.New(), &clock)

	// Day 1, day 2, then a skipped day: streak goes 1, 2, then resets to 1.
	wantByDay := []struct {
		offset int
		streak int
	}{
		{0, 1},
		{1, 2},
		{3, 1},
	}
	base := clock
	for _, step := range wantByDay {
		clock = base.AddDate(0, 0, step.offset)
		got, err := eng.EvaluateVisit()
		if err != nil {
			t.Fatalf("EvaluateVisit: %v", err)
		}
		if got != step.streak {
			t.Errorf("day offset %d: streak = %d, want %d", step.offset, got, step.streak)
		}
	}
}

func TestEvaluateVisit_SameDayIdempotent(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	eng := newTestEngine(t, store.New(), &clock)

	if _, err := eng.EvaluateVisit(); err != nil {
		t.Fatal(err)
	}
	clock = clock.AddDate(0, 0, 1)
	if _, err := eng.EvaluateVisit(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		got, err := eng.EvaluateVisit()
		if err != nil {
			t.Fatal(err)
		}
		if got != 2 {
			t.Fatalf("repeat visit %d: streak = %d, want 2", i, got)
		}
	}
}

func TestEvaluateVisit_SurvivesRestart(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	prefs, err := settings.Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("open settings: %v", err)
	}
	defer prefs.Close()

	eng := New(store.New(), prefs, WithClock(func() time.Time { return clock }))
	if _, err := eng.EvaluateVisit(); err != nil {
		t.Fatal(err)
	}

	// A fresh engine over the same settings store must continue the
	// streak, not restart it.
	clock = clock.AddDate(0, 0, 1)
	eng2 := New(store.New(), prefs, WithClock(func() time.Time { return clock }))
	got, err := eng2.EvaluateVisit()
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("streak after restart = %d, want 2", got)
	}
}

func TestEvaluate_UnlocksAtThresholds(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	st := store.New()
	eng := newTestEngine(t, st, &clock)

	if unlocked := eng.Evaluate(); len(unlocked) != 0 {
		t.Fatalf("fresh state unlocked %v, want none", ids(unlocked))
	}

	if _, err := st.AddMeal("toast", wellness.Meal{Calories: 200}); err != nil {
		t.Fatal(err)
	}
	unlocked := eng.Evaluate()
	if len(unlocked) != 1 || unlocked[0].ID != wellness.AchFirstMeal {
		t.Fatalf("after first meal unlocked %v, want [%s]", ids(unlocked), wellness.AchFirstMeal)
	}

	for i := 0; i < 4; i++ {
		if _, err := st.AddMeal("snack", wellness.Meal{Calories: 100}); err != nil {
			t.Fatal(err)
		}
	}
	unlocked = eng.Evaluate()
	if len(unlocked) != 1 || unlocked[0].ID != wellness.AchFiveMeals {
		t.Fatalf("after fifth meal unlocked %v, want [%s]", ids(unlocked), wellness.AchFiveMeals)
	}

	if _, err := st.AddWorkoutLog("Running", 30); err != nil {
		t.Fatal(err)
	}
	unlocked = eng.Evaluate()
	if len(unlocked) != 1 || unlocked[0].ID != wellness.AchFirstWorkout {
		t.Fatalf("after first workout unlocked %v, want [%s]", ids(unlocked), wellness.AchFirstWorkout)
	}
}

func TestEvaluate_Monotonic(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	st := store.New()
	eng := newTestEngine(t, st, &clock)

	if _, err := st.AddMeal("toast", wellness.Meal{Calories: 200}); err != nil {
		t.Fatal(err)
	}
	if got := eng.Evaluate(); len(got) != 1 {
		t.Fatalf("first pass unlocked %d, want 1", len(got))
	}
	// Same inputs, second pass: nothing new.
	if got := eng.Evaluate(); len(got) != 0 {
		t.Fatalf("second pass unlocked %v, want none", ids(got))
	}

	var count int
	for _, a := range eng.Achievements() {
		if a.Unlocked {
			count++
		}
	}
	if count != 1 {
		t.Errorf("catalog shows %d unlocked, want 1", count)
	}
}

func TestEvaluate_StreakAchievements(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	st := store.New()
	eng := newTestEngine(t, st, &clock)

	base := clock
	for day := 0; day < 3; day++ {
		clock = base.AddDate(0, 0, day)
		if _, err := eng.EvaluateVisit(); err != nil {
			t.Fatal(err)
		}
	}
	unlocked := eng.Evaluate()
	if len(unlocked) != 1 || unlocked[0].ID != wellness.AchStreak3 {
		t.Fatalf("after 3-day streak unlocked %v, want [%s]", ids(unlocked), wellness.AchStreak3)
	}

	for day := 3; day < 7; day++ {
		clock = base.AddDate(0, 0, day)
		if _, err := eng.EvaluateVisit(); err != nil {
			t.Fatal(err)
		}
	}
	unlocked = eng.Evaluate()
	if len(unlocked) != 1 || unlocked[0].ID != wellness.AchStreak7 {
		t.Fatalf("after 7-day streak unlocked %v, want [%s]", ids(unlocked), wellness.AchStreak7)
	}
}

func TestCompletedNow_FiresOnce(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	st := store.New()
	eng := newTestEngine(t, st, &clock)

	if _, err := st.UpdateGoalProgress(wellness.GoalWater, 8); err != nil {
		t.Fatal(err)
	}
	completed := eng.CompletedNow()
	if len(completed) != 1 || completed[0].ID != wellness.GoalWater {
		t.Fatalf("completed = %v, want [water]", goalIDs(completed))
	}

	// Still at target: must not fire again.
	if got := eng.CompletedNow(); len(got) != 0 {
		t.Fatalf("repeat check completed %v, want none", goalIDs(got))
	}
	if _, err := st.UpdateGoalProgress(wellness.GoalWater, 1); err != nil {
		t.Fatal(err)
	}
	if got := eng.CompletedNow(); len(got) != 0 {
		t.Fatalf("increment past target completed %v, want none", goalIDs(got))
	}
}

func TestDaySummary(t *testing.T) {
	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	st := store.New(store.WithClock(func() time.Time { return clock }))
	eng := newTestEngine(t, st, &clock)

	if _, err := st.AddMeal("oatmeal", wellness.Meal{Calories: 320}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.AddMeal("salad", wellness.Meal{Calories: 450}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.LogSteps(6000); err != nil {
		t.Fatal(err)
	}
	if _, err := st.AddSleepEntry(7.5, wellness.SleepGood); err != nil {
		t.Fatal(err)
	}

	sum := eng.DaySummary()
	if sum.TotalCalories != 770 {
		t.Errorf("total calories = %v, want 770", sum.TotalCalories)
	}
	if sum.StepsToday != 6000 {
		t.Errorf("steps today = %d, want 6000", sum.StepsToday)
	}
	if sum.SleepHours != 7.5 {
		t.Errorf("sleep hours = %v, want 7.5", sum.SleepHours)
	}
	if len(sum.Goals) != len(wellness.DefaultGoals()) {
		t.Errorf("summary has %d goals, want %d", len(sum.Goals), len(wellness.DefaultGoals()))
	}
}

func TestCompletionPercent_Capped(t *testing.T) {
	g := wellness.Goal{Current: 15000, Target: 10000}
	if got := CompletionPercent(g); got != 100 {
		t.Errorf("percent = %v, want cap at 100", got)
	}
	if got := CompletionPercent(wellness.Goal{Current: 4, Target: 8}); got != 50 {
		t.Errorf("percent = %v, want 50", got)
	}
}

func ids(as []wellness.Achievement) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}

func goalIDs(gs []wellness.Goal) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.ID
	}
	return out
}
