package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"vitalog/internal/wellness"
)

// Notifier receives the short confirmation message emitted after every
// successful mutation. It is fire-and-forget and not part of the data
// contract.
type Notifier func(message string)

// Confirmation messages, one per mutator. The notifier receives these and
// the HTTP layer echoes them back in mutation responses.
const (
	MsgMealLogged        = "Meal logged successfully!"
	MsgSleepLogged       = "Sleep logged successfully!"
	MsgMedicationAdded   = "Medication added!"
	MsgStepsUpdated      = "Steps updated!"
	MsgGoalUpdated       = "Goal progress updated!"
	MsgWorkoutLogged     = "Workout session logged!"
	MsgMetricAdded       = "New metric added!"
	MsgMetricEntryLogged = "New entry logged!"
	MsgAppointmentBooked = "Appointment successfully booked!"
	MsgBPSaved           = "Blood pressure reading saved!"
	MsgGlucoseSaved      = "Glucose reading saved!"
)

// Store owns the authoritative copies of every entity collection for the
// lifetime of the session. All mutators go through it; readers get snapshot
// copies, never the internal slices.
type Store struct {
	mu sync.RWMutex

	meals          []wellness.Meal
	sleepEntries   []wellness.SleepEntry
	medications    []wellness.Medication
	goals          []wellness.Goal
	workoutLogs    []wellness.WorkoutLog
	metrics        []wellness.HealthMetric
	metricEntries  []wellness.MetricEntry
	appointments   []wellness.Appointment
	bpEntries      []wellness.BloodPressureEntry
	glucoseEntries []wellness.GlucoseEntry
	stepEntries    []wellness.StepEntry
	record         wellness.MedicalRecord

	notify Notifier
	now    func() time.Time
	newID  func() string
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithNotifier registers the confirmation-message sink.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notify = n }
}

// WithClock overrides the wall clock, used by tests to pin the calendar day.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides the id allocator.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

func New(opts ...Option) *Store {
	s := &Store{
		goals:  wellness.DefaultGoals(),
		record: wellness.ReferenceRecord(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) emit(message string) {
	if s.notify != nil {
		s.notify(message)
	}
}

func (s *Store) today() string {
	return s.now().Format(wellness.DateLayout)
}

// AddMeal validates and prepends a meal (most recent first).
func (s *Store) AddMeal(description string, facts wellness.Meal) (wellness.Meal, error) {
	if strings.TrimSpace(description) == "" {
		return wellness.Meal{}, invalid("description", "must not be empty")
	}
	if facts.Calories < 0 || facts.Protein < 0 || facts.Carbs < 0 || facts.Fat < 0 {
		return wellness.Meal{}, invalid("macros", "must not be negative")
	}
	meal := wellness.Meal{
		ID:          s.newID(),
		Description: description,
		Calories:    facts.Calories,
		Protein:     facts.Protein,
		Carbs:       facts.Carbs,
		Fat:         facts.Fat,
		CreatedAt:   s.now(),
	}
	s.mu.Lock()
	s.meals = append([]wellness.Meal{meal}, s.meals...)
	s.mu.Unlock()
	s.emit(MsgMealLogged)
	return meal, nil
}

// AddSleepEntry upserts today's sleep entry and keeps the list sorted
// descending by date. One entry per calendar day.
func (s *Store) AddSleepEntry(duration float64, quality wellness.SleepQuality) (wellness.SleepEntry, error) {
	if duration <= 0 || duration > 24 {
		return wellness.SleepEntry{}, invalid("duration", "must be in (0, 24] hours")
	}
	if !quality.Valid() {
		return wellness.SleepEntry{}, invalid("quality", "must be poor, fair, good or excellent")
	}
	entry := wellness.SleepEntry{
		ID:       s.newID(),
		Date:     s.today(),
		Duration: duration,
		Quality:  quality,
	}
	s.mu.Lock()
	replaced := false
	for i := range s.sleepEntries {
		if s.sleepEntries[i].Date == entry.Date {
			entry.ID = s.sleepEntries[i].ID
			s.sleepEntries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		s.sleepEntries = append([]wellness.SleepEntry{entry}, s.sleepEntries...)
	}
	sort.Slice(s.sleepEntries, func(i, j int) bool {
		return s.sleepEntries[i].Date > s.sleepEntries[j].Date
	})
	s.mu.Unlock()
	s.emit(MsgSleepLogged)
	return entry, nil
}

func (s *Store) AddMedication(name, dosage string, freq wellness.MedicationFrequency, description string) (wellness.Medication, error) {
	if strings.TrimSpace(name) == "" {
		return wellness.Medication{}, invalid("name", "must not be empty")
	}
	if !freq.Valid() {
		return wellness.Medication{}, invalid("frequency", "must be daily, weekly or as_needed")
	}
	med := wellness.Medication{
		ID:          s.newID(),
		Name:        name,
		Dosage:      dosage,
		Frequency:   freq,
		Description: description,
	}
	s.mu.Lock()
	s.medications = append([]wellness.Medication{med}, s.medications...)
	s.mu.Unlock()
	s.emit(MsgMedicationAdded)
	return med, nil
}

// LogSteps upserts today's step entry by date and mirrors the count into
// the steps goal. Negative counts are clamped to zero rather than
// rejected.
func (s *Store) LogSteps(count int) (wellness.StepEntry, error) {
	if count < 0 {
		count = 0
	}
	today := s.today()
	entry := wellness.StepEntry{ID: s.newID(), Date: today, Count: count}
	s.mu.Lock()
	replaced := false
	for i := range s.stepEntries {
		if s.stepEntries[i].Date == today {
			s.stepEntries[i].Count = count
			entry = s.stepEntries[i]
			replaced = true
			break
		}
	}
	if !replaced {
		s.stepEntries = append(s.stepEntries, entry)
	}
	for i := range s.goals {
		if s.goals[i].ID == wellness.GoalSteps {
			// The steps goal tracks the raw count and may exceed target.
			s.goals[i].Current = count
		}
	}
	s.mu.Unlock()
	s.emit(MsgStepsUpdated)
	return entry, nil
}

// UpdateGoalProgress adds amount to a goal's progress. The steps goal is
// redirected through LogSteps so the step entry and the goal stay in sync;
// all other goals are clamped to [0, target].
func (s *Store) UpdateGoalProgress(goalID string, amount int) (wellness.Goal, error) {
	if goalID == wellness.GoalSteps {
		s.mu.RLock()
		current := 0
		for _, g := range s.goals {
			if g.ID == wellness.GoalSteps {
				current = g.Current
			}
		}
		s.mu.RUnlock()
		next := current + amount
		if next < 0 {
			next = 0
		}
		if _, err := s.LogSteps(next); err != nil {
			return wellness.Goal{}, err
		}
		goal, _ := s.Goal(wellness.GoalSteps)
		return goal, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.goals {
		if s.goals[i].ID != goalID {
			continue
		}
		next := s.goals[i].Current + amount
		if next < 0 {
			next = 0
		}
		if next > s.goals[i].Target {
			next = s.goals[i].Target
		}
		s.goals[i].Current = next
		return s.goals[i], nil
	}
	return wellness.Goal{}, &ReferentialError{Entity: "goal", ID: goalID}
}

// AddWorkoutLog prepends a workout log and bumps the workout goal by one.
func (s *Store) AddWorkoutLog(workoutType string, duration int) (wellness.WorkoutLog, error) {
	if strings.TrimSpace(workoutType) == "" {
		return wellness.WorkoutLog{}, invalid("type", "must not be empty")
	}
	if duration <= 0 {
		return wellness.WorkoutLog{}, invalid("duration", "must be positive minutes")
	}
	logEntry := wellness.WorkoutLog{
		ID:       s.newID(),
		Date:     s.today(),
		Type:     workoutType,
		Duration: duration,
	}
	s.mu.Lock()
	s.workoutLogs = append([]wellness.WorkoutLog{logEntry}, s.workoutLogs...)
	s.mu.Unlock()
	if _, err := s.UpdateGoalProgress(wellness.GoalWorkout, 1); err != nil {
		return wellness.WorkoutLog{}, err
	}
	s.emit(MsgWorkoutLogged)
	return logEntry, nil
}

func (s *Store) AddMetric(name, unit string) (wellness.HealthMetric, error) {
	if strings.TrimSpace(name) == "" {
		return wellness.HealthMetric{}, invalid("name", "must not be empty")
	}
	metric := wellness.HealthMetric{ID: s.newID(), Name: name, Unit: unit}
	s.mu.Lock()
	s.metrics = append(s.metrics, metric)
	s.mu.Unlock()
	s.emit(MsgMetricAdded)
	return metric, nil
}

// AddMetricEntry prepends an entry for an existing metric. A dangling
// metric id fails with ReferentialError instead of orphaning the entry.
func (s *Store) AddMetricEntry(metricID string, value float64, note string) (wellness.MetricEntry, error) {
	entry := wellness.MetricEntry{
		ID:       s.newID(),
		MetricID: metricID,
		Value:    value,
		Date:     s.today(),
		Note:     note,
	}
	s.mu.Lock()
	known := false
	for _, m := range s.metrics {
		if m.ID == metricID {
			known = true
			break
		}
	}
	if !known {
		s.mu.Unlock()
		return wellness.MetricEntry{}, &ReferentialError{Entity: "metric", ID: metricID}
	}
	s.metricEntries = append([]wellness.MetricEntry{entry}, s.metricEntries...)
	s.mu.Unlock()
	s.emit(MsgMetricEntryLogged)
	return entry, nil
}

func (s *Store) AddAppointment(doctor, specialty, date, timeOfDay, reason string) (wellness.Appointment, error) {
	if strings.TrimSpace(doctor) == "" {
		return wellness.Appointment{}, invalid("doctor", "must not be empty")
	}
	if _, err := time.Parse(wellness.DateLayout, date); err != nil {
		return wellness.Appointment{}, invalid("date", "must be YYYY-MM-DD")
	}
	appt := wellness.Appointment{
		ID:        s.newID(),
		Doctor:    doctor,
		Specialty: specialty,
		Date:      date,
		Time:      timeOfDay,
		Reason:    reason,
		Status:    wellness.AppointmentUpcoming,
	}
	s.mu.Lock()
	s.appointments = append(s.appointments, appt)
	sort.Slice(s.appointments, func(i, j int) bool {
		return s.appointments[i].Date < s.appointments[j].Date
	})
	s.mu.Unlock()
	s.emit(MsgAppointmentBooked)
	return appt, nil
}

func (s *Store) AddBPEntry(systolic, diastolic, pulse int, note string) (wellness.BloodPressureEntry, error) {
	if systolic <= 0 || diastolic <= 0 {
		return wellness.BloodPressureEntry{}, invalid("reading", "systolic and diastolic must be positive")
	}
	if systolic <= diastolic {
		return wellness.BloodPressureEntry{}, invalid("reading", "systolic must exceed diastolic")
	}
	if pulse < 0 {
		return wellness.BloodPressureEntry{}, invalid("pulse", "must not be negative")
	}
	entry := wellness.BloodPressureEntry{
		ID:        s.newID(),
		Date:      s.now(),
		Systolic:  systolic,
		Diastolic: diastolic,
		Pulse:     pulse,
		Note:      note,
	}
	s.mu.Lock()
	s.bpEntries = append(s.bpEntries, entry)
	s.mu.Unlock()
	s.emit(MsgBPSaved)
	return entry, nil
}

func (s *Store) AddGlucoseEntry(level float64, context wellness.GlucoseContext, note string) (wellness.GlucoseEntry, error) {
	if level <= 0 {
		return wellness.GlucoseEntry{}, invalid("level", "must be positive")
	}
	if !context.Valid() {
		return wellness.GlucoseEntry{}, invalid("context", "must be fasting, post_meal or random")
	}
	entry := wellness.GlucoseEntry{
		ID:      s.newID(),
		Date:    s.now(),
		Level:   level,
		Context: context,
		Note:    note,
	}
	s.mu.Lock()
	s.glucoseEntries = append(s.glucoseEntries, entry)
	s.mu.Unlock()
	s.emit(MsgGlucoseSaved)
	return entry, nil
}
