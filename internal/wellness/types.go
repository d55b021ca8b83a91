package wellness

import "time"

// DateLayout is the calendar-day key used wherever an entity is tracked
// per day (sleep, steps, workout logs, metric entries).
const DateLayout = "2006-01-02"

// Meal is a single logged meal with its estimated macros.
type Meal struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	CreatedAt   time.Time `json:"created_at"`
}

type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

func (q SleepQuality) Valid() bool {
	switch q {
	case SleepPoor, SleepFair, SleepGood, SleepExcellent:
		return true
	}
	return false
}

// SleepEntry holds one night of sleep. At most one entry exists per
// calendar date.
type SleepEntry struct {
	ID       string       `json:"id"`
	Date     string       `json:"date"`
	Duration float64      `json:"duration"` // hours
	Quality  SleepQuality `json:"quality"`
}

type MedicationFrequency string

const (
	FrequencyDaily    MedicationFrequency = "daily"
	FrequencyWeekly   MedicationFrequency = "weekly"
	FrequencyAsNeeded MedicationFrequency = "as_needed"
)

func (f MedicationFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyAsNeeded:
		return true
	}
	return false
}

type Medication struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Dosage      string              `json:"dosage"`
	Frequency   MedicationFrequency `json:"frequency"`
	Description string              `json:"description,omitempty"`
}

// Goal ids come from a fixed catalog; target is fixed per id.
type Goal struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Current int    `json:"current"`
	Target  int    `json:"target"`
	Unit    string `json:"unit"`
}

type WorkoutLog struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Duration int    `json:"duration"` // minutes
}

// HealthMetric is a user-defined series (e.g. "Weight", kg).
type HealthMetric struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

type MetricEntry struct {
	ID       string  `json:"id"`
	MetricID string  `json:"metric_id"`
	Value    float64 `json:"value"`
	Date     string  `json:"date"`
	Note     string  `json:"note,omitempty"`
}

// Achievement is a one-way milestone flag: once unlocked it never locks
// again.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

type AppointmentStatus string

const (
	AppointmentUpcoming  AppointmentStatus = "upcoming"
	AppointmentCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID        string            `json:"id"`
	Doctor    string            `json:"doctor"`
	Specialty string            `json:"specialty"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Reason    string            `json:"reason"`
	Status    AppointmentStatus `json:"status"`
}

type LabResult struct {
	Test   string `json:"test"`
	Result string `json:"result"`
	Date   string `json:"date"`
}

type Immunization struct {
	Vaccine string `json:"vaccine"`
	Date    string `json:"date"`
}

// MedicalRecord is read-only reference data with a single instance and no
// lifecycle.
type MedicalRecord struct {
	Allergies     []string       `json:"allergies"`
	Conditions    []string       `json:"conditions"`
	LabResults    []LabResult    `json:"lab_results"`
	Immunizations []Immunization `json:"immunizations"`
}

type BloodPressureEntry struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Pulse     int       `json:"pulse,omitempty"`
	Note      string    `json:"note,omitempty"`
}

type GlucoseContext string

const (
	GlucoseFasting  GlucoseContext = "fasting"
	GlucosePostMeal GlucoseContext = "post_meal"
	GlucoseRandom   GlucoseContext = "random"
)

func (c GlucoseContext) Valid() bool {
	switch c {
	case GlucoseFasting, GlucosePostMeal, GlucoseRandom:
		return true
	}
	return false
}

type GlucoseEntry struct {
	ID      string         `json:"id"`
	Date    time.Time      `json:"date"`
	Level   float64        `json:"level"`
	Context GlucoseContext `json:"context"`
	Note    string         `json:"note,omitempty"`
}

// StepEntry holds one day of steps; upserted by date.
type StepEntry struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Exercise, WorkoutDay and Recipe are transient gateway results the caller
// may choose to persist or display.
type Exercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
}

type WorkoutDay struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

type Recipe struct {
	Name         string   `json:"recipeName"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
