package store

import (
	"time"

	"vitalog/internal/wellness"
)

// Readers return copies so callers can diff snapshots by value without
// observing later mutations.

func (s *Store) Meals() []wellness.Meal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.Meal(nil), s.meals...)
}

func (s *Store) SleepEntries() []wellness.SleepEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.SleepEntry(nil), s.sleepEntries...)
}

func (s *Store) Medications() []wellness.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.Medication(nil), s.medications...)
}

func (s *Store) Goals() []wellness.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.Goal(nil), s.goals...)
}

// Goal returns one goal by id.
func (s *Store) Goal(id string) (wellness.Goal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g, true
		}
	}
	return wellness.Goal{}, false
}

func (s *Store) WorkoutLogs() []wellness.WorkoutLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.WorkoutLog(nil), s.workoutLogs...)
}

func (s *Store) Metrics() []wellness.HealthMetric {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.HealthMetric(nil), s.metrics...)
}

func (s *Store) MetricEntries() []wellness.MetricEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.MetricEntry(nil), s.metricEntries...)
}

// MetricEntriesFor returns the entries belonging to one metric, for
// charting.
func (s *Store) MetricEntriesFor(metricID string) []wellness.MetricEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]wellness.MetricEntry, 0, 8)
	for _, e := range s.metricEntries {
		if e.MetricID == metricID {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) Appointments() []wellness.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.Appointment(nil), s.appointments...)
}

func (s *Store) BPEntries() []wellness.BloodPressureEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.BloodPressureEntry(nil), s.bpEntries...)
}

func (s *Store) GlucoseEntries() []wellness.GlucoseEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.GlucoseEntry(nil), s.glucoseEntries...)
}

func (s *Store) StepEntries() []wellness.StepEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]wellness.StepEntry(nil), s.stepEntries...)
}

func (s *Store) MedicalRecord() wellness.MedicalRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

// Counts returns the collection sizes the achievement engine evaluates.
func (s *Store) Counts() (meals, workouts int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.meals), len(s.workoutLogs)
}

// Seed loads sample readings for a fresh install: a few days of blood
// pressure, glucose and step history plus today's step count mirrored
// into the steps goal. cmd/api calls this once; tests start from an
// empty store.
func (s *Store) Seed() {
	now := s.now()
	day := func(n int) time.Time { return now.AddDate(0, 0, -n) }
	date := func(n int) string { return day(n).Format(wellness.DateLayout) }

	s.mu.Lock()
	s.bpEntries = append(s.bpEntries,
		wellness.BloodPressureEntry{ID: s.newID(), Date: day(3), Systolic: 125, Diastolic: 82, Pulse: 75},
		wellness.BloodPressureEntry{ID: s.newID(), Date: day(2), Systolic: 122, Diastolic: 80, Pulse: 72},
		wellness.BloodPressureEntry{ID: s.newID(), Date: day(1), Systolic: 128, Diastolic: 85, Pulse: 78, Note: "Feeling a bit stressed"},
	)
	s.glucoseEntries = append(s.glucoseEntries,
		wellness.GlucoseEntry{ID: s.newID(), Date: day(2), Level: 95, Context: wellness.GlucoseFasting},
		wellness.GlucoseEntry{ID: s.newID(), Date: day(1), Level: 135, Context: wellness.GlucosePostMeal, Note: "After pasta"},
		wellness.GlucoseEntry{ID: s.newID(), Date: now, Level: 98, Context: wellness.GlucoseFasting},
	)
	const todaySteps = 6210
	s.stepEntries = append(s.stepEntries,
		wellness.StepEntry{ID: s.newID(), Date: date(4), Count: 8123},
		wellness.StepEntry{ID: s.newID(), Date: date(3), Count: 10234},
		wellness.StepEntry{ID: s.newID(), Date: date(2), Count: 7890},
		wellness.StepEntry{ID: s.newID(), Date: date(1), Count: 9540},
		wellness.StepEntry{ID: s.newID(), Date: date(0), Count: todaySteps},
	)
	for i := range s.goals {
		switch s.goals[i].ID {
		case wellness.GoalSteps:
			s.goals[i].Current = todaySteps
		case wellness.GoalWater:
			s.goals[i].Current = 4
		case wellness.GoalWorkout:
			s.goals[i].Current = 1
		}
	}
	s.mu.Unlock()
}
