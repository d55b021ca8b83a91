package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"vitalog/internal/wellness"
)

func newTestStore(opts ...Option) (*Store, *[]string) {
	var notes []string
	opts = append(opts, WithNotifier(func(msg string) {
		notes = append(notes, msg)
	}))
	return New(opts...), &notes
}

func TestAddMeal_PrependsAndNotifies(t *testing.T) {
	st, notes := newTestStore()

	first, err := st.AddMeal("oatmeal with berries", wellness.Meal{Calories: 320, Protein: 12, Carbs: 54, Fat: 6})
	if err != nil {
		t.Fatalf("AddMeal: %v", err)
	}
	second, err := st.AddMeal("grilled chicken salad", wellness.Meal{Calories: 450, Protein: 30, Carbs: 40, Fat: 15})
	if err != nil {
		t.Fatalf("AddMeal: %v", err)
	}

	meals := st.Meals()
	if len(meals) != 2 {
		t.Fatalf("got %d meals, want 2", len(meals))
	}
	if meals[0].ID != second.ID || meals[1].ID != first.ID {
		t.Errorf("meals not in most-recent-first order")
	}
	if len(*notes) != 2 || (*notes)[0] != "Meal logged successfully!" {
		t.Errorf("notifications = %v", *notes)
	}
}

func TestAddMeal_Validation(t *testing.T) {
	st, _ := newTestStore()

	cases := []struct {
		name        string
		description string
		facts       wellness.Meal
	}{
		{"empty description", "  ", wellness.Meal{Calories: 100}},
		{"negative calories", "toast", wellness.Meal{Calories: -1}},
		{"negative protein", "toast", wellness.Meal{Protein: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := st.AddMeal(tc.description, tc.facts)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
		})
	}
	if len(st.Meals()) != 0 {
		t.Errorf("rejected meals must not be stored")
	}
}

func TestLogSteps_UpsertsByDate(t *testing.T) {
	st, _ := newTestStore()

	if _, err := st.LogSteps(5000); err != nil {
		t.Fatalf("LogSteps: %v", err)
	}
	if _, err := st.LogSteps(8000); err != nil {
		t.Fatalf("LogSteps: %v", err)
	}

	entries := st.StepEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d step entries, want 1 (same-day upsert)", len(entries))
	}
	if entries[0].Count != 8000 {
		t.Errorf("count = %d, want 8000", entries[0].Count)
	}

	goal, ok := st.Goal(wellness.GoalSteps)
	if !ok {
		t.Fatal("steps goal missing")
	}
	if goal.Current != 8000 {
		t.Errorf("steps goal current = %d, want 8000", goal.Current)
	}
}

func TestLogSteps_MayExceedGoalTarget(t *testing.T) {
	st, _ := newTestStore()

	if _, err := st.LogSteps(15000); err != nil {
		t.Fatalf("LogSteps: %v", err)
	}
	goal, _ := st.Goal(wellness.GoalSteps)
	if goal.Current != 15000 {
		t.Errorf("steps goal current = %d, want 15000 (no clamp to target)", goal.Current)
	}
}

func TestUpdateGoalProgress_ClampsToBounds(t *testing.T) {
	st, _ := newTestStore()

	goal, err := st.UpdateGoalProgress(wellness.GoalWater, 20)
	if err != nil {
		t.Fatalf("UpdateGoalProgress: %v", err)
	}
	if goal.Current != goal.Target {
		t.Errorf("current = %d, want clamp to target %d", goal.Current, goal.Target)
	}

	goal, err = st.UpdateGoalProgress(wellness.GoalWater, -100)
	if err != nil {
		t.Fatalf("UpdateGoalProgress: %v", err)
	}
	if goal.Current != 0 {
		t.Errorf("current = %d, want clamp to 0", goal.Current)
	}
}

func TestUpdateGoalProgress_UnknownGoal(t *testing.T) {
	st, _ := newTestStore()

	_, err := st.UpdateGoalProgress("running", 1)
	var rerr *ReferentialError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want ReferentialError", err)
	}
	if rerr.ID != "running" {
		t.Errorf("error id = %q, want running", rerr.ID)
	}
}

func TestAddWorkoutLog_BumpsWorkoutGoal(t *testing.T) {
	st, _ := newTestStore()

	for i := 0; i < 5; i++ {
		if _, err := st.AddWorkoutLog("Running", 30); err != nil {
			t.Fatalf("AddWorkoutLog: %v", err)
		}
	}

	goal, _ := st.Goal(wellness.GoalWorkout)
	if goal.Current != goal.Target {
		t.Errorf("workout goal current = %d, want clamp at target %d", goal.Current, goal.Target)
	}
	if len(st.WorkoutLogs()) != 5 {
		t.Errorf("got %d workout logs, want 5", len(st.WorkoutLogs()))
	}
}

func TestAddSleepEntry_UpsertsToday(t *testing.T) {
	st, _ := newTestStore()

	first, err := st.AddSleepEntry(6.5, wellness.SleepFair)
	if err != nil {
		t.Fatalf("AddSleepEntry: %v", err)
	}
	updated, err := st.AddSleepEntry(8, wellness.SleepGood)
	if err != nil {
		t.Fatalf("AddSleepEntry: %v", err)
	}

	if updated.ID != first.ID {
		t.Errorf("same-day upsert must keep the original entry id")
	}
	entries := st.SleepEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d sleep entries, want 1", len(entries))
	}
	if entries[0].Duration != 8 || entries[0].Quality != wellness.SleepGood {
		t.Errorf("entry = %+v, want updated duration and quality", entries[0])
	}
}

func TestAddSleepEntry_Validation(t *testing.T) {
	st, _ := newTestStore()

	if _, err := st.AddSleepEntry(0, wellness.SleepGood); err == nil {
		t.Error("zero duration must be rejected")
	}
	if _, err := st.AddSleepEntry(25, wellness.SleepGood); err == nil {
		t.Error("duration above 24h must be rejected")
	}
	if _, err := st.AddSleepEntry(8, wellness.SleepQuality("amazing")); err == nil {
		t.Error("unknown quality must be rejected")
	}
}

func TestAddMetricEntry_RequiresMetric(t *testing.T) {
	st, _ := newTestStore()

	_, err := st.AddMetricEntry("nope", 70, "")
	var rerr *ReferentialError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want ReferentialError", err)
	}

	metric, err := st.AddMetric("Weight", "kg")
	if err != nil {
		t.Fatalf("AddMetric: %v", err)
	}
	if _, err := st.AddMetricEntry(metric.ID, 70.5, "morning"); err != nil {
		t.Fatalf("AddMetricEntry: %v", err)
	}
	if got := st.MetricEntriesFor(metric.ID); len(got) != 1 {
		t.Errorf("got %d entries for metric, want 1", len(got))
	}
}

func TestAddBPEntry_Validation(t *testing.T) {
	st, _ := newTestStore()

	if _, err := st.AddBPEntry(80, 120, 70, ""); err == nil {
		t.Error("systolic below diastolic must be rejected")
	}
	if _, err := st.AddBPEntry(120, 80, 70, "resting"); err != nil {
		t.Errorf("valid reading rejected: %v", err)
	}
}

func TestAddAppointment_SortedAscending(t *testing.T) {
	st, _ := newTestStore()

	base := time.Now()
	for _, offset := range []int{14, 3, 7} {
		date := base.AddDate(0, 0, offset).Format(wellness.DateLayout)
		if _, err := st.AddAppointment("Dr. Reed", "Cardiology", date, "10:00 AM", "checkup"); err != nil {
			t.Fatalf("AddAppointment: %v", err)
		}
	}

	appts := st.Appointments()
	for i := 1; i < len(appts); i++ {
		if appts[i-1].Date > appts[i].Date {
			t.Fatalf("appointments not sorted ascending: %s before %s", appts[i-1].Date, appts[i].Date)
		}
	}

	if _, err := st.AddAppointment("Dr. Reed", "Cardiology", "tomorrow", "10:00 AM", "checkup"); err == nil {
		t.Error("malformed date must be rejected")
	}
}

func TestStore_IDsAreUnique(t *testing.T) {
	st, _ := newTestStore()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		meal, err := st.AddMeal(fmt.Sprintf("meal %d", i), wellness.Meal{Calories: 100})
		if err != nil {
			t.Fatalf("AddMeal: %v", err)
		}
		if seen[meal.ID] {
			t.Fatalf("duplicate id %q", meal.ID)
		}
		seen[meal.ID] = true
	}
}

func TestSeed_LoadsMockHistory(t *testing.T) {
	st, _ := newTestStore()
	st.Seed()

	if len(st.BPEntries()) == 0 {
		t.Error("seed must load blood pressure history")
	}
	if len(st.GlucoseEntries()) == 0 {
		t.Error("seed must load glucose history")
	}
	goal, _ := st.Goal(wellness.GoalSteps)
	if goal.Current != 6210 {
		t.Errorf("seeded steps goal current = %d, want 6210", goal.Current)
	}
}
