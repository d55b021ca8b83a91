package server

import (
	"net/http"

	"vitalog/internal/store"
	"vitalog/internal/wellness"
)

func (s *Service) handleAddMeal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string  `json:"description"`
		Calories    float64 `json:"calories"`
		Protein     float64 `json:"protein"`
		Carbs       float64 `json:"carbs"`
		Fat         float64 `json:"fat"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	meal, err := s.store.AddMeal(req.Description, wellness.Meal{
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, meal, store.MsgMealLogged)
}

func (s *Service) handleListMeals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Meals())
}

func (s *Service) handleAddSleep(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DurationHours float64               `json:"duration_hours"`
		Quality       wellness.SleepQuality `json:"quality"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	entry, err := s.store.AddSleepEntry(req.DurationHours, req.Quality)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, entry, store.MsgSleepLogged)
}

func (s *Service) handleListSleep(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.SleepEntries())
}

func (s *Service) handleAddMedication(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string                       `json:"name"`
		Dosage      string                       `json:"dosage"`
		Frequency   wellness.MedicationFrequency `json:"frequency"`
		Description string                       `json:"description"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	med, err := s.store.AddMedication(req.Name, req.Dosage, req.Frequency, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, med, store.MsgMedicationAdded)
}

func (s *Service) handleListMedications(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Medications())
}

func (s *Service) handleLogSteps(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Count int `json:"count"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	entry, err := s.store.LogSteps(req.Count)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, entry, store.MsgStepsUpdated)
}

func (s *Service) handleListSteps(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.StepEntries())
}

func (s *Service) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GoalID string `json:"goal_id"`
		Amount int    `json:"amount"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	goal, err := s.store.UpdateGoalProgress(req.GoalID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, goal, store.MsgGoalUpdated)
}

func (s *Service) handleListGoals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Goals())
}

func (s *Service) handleAddWorkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type            string `json:"type"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	entry, err := s.store.AddWorkoutLog(req.Type, req.DurationMinutes)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, entry, store.MsgWorkoutLogged)
}

func (s *Service) handleListWorkouts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.WorkoutLogs())
}

func (s *Service) handleAddMetric(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Unit string `json:"unit"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	metric, err := s.store.AddMetric(req.Name, req.Unit)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, metric, store.MsgMetricAdded)
}

func (s *Service) handleListMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Metrics())
}

func (s *Service) handleAddMetricEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MetricID string  `json:"metric_id"`
		Value    float64 `json:"value"`
		Note     string  `json:"note"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	entry, err := s.store.AddMetricEntry(req.MetricID, req.Value, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, entry, store.MsgMetricEntryLogged)
}

func (s *Service) handleListMetricEntries(w http.ResponseWriter, r *http.Request) {
	if metricID := r.URL.Query().Get("metric_id"); metricID != "" {
		writeJSON(w, http.StatusOK, s.store.MetricEntriesFor(metricID))
		return
	}
	writeJSON(w, http.StatusOK, s.store.MetricEntries())
}

func (s *Service) handleAddAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Doctor    string `json:"doctor"`
		Specialty string `json:"specialty"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Reason    string `json:"reason"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	appt, err := s.store.AddAppointment(req.Doctor, req.Specialty, req.Date, req.Time, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, appt, store.MsgAppointmentBooked)
}

func (s *Service) handleListAppointments(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Appointments())
}

func (s *Service) handleAddBP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Systolic  int    `json:"systolic"`
		Diastolic int    `json:"diastolic"`
		Pulse     int    `json:"pulse"`
		Note      string `json:"note"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	entry, err := s.store.AddBPEntry(req.Systolic, req.Diastolic, req.Pulse, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, entry, store.MsgBPSaved)
}

func (s *Service) handleListBP(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.BPEntries())
}

func (s *Service) handleAddGlucose(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Level   float64                 `json:"level"`
		Context wellness.GlucoseContext `json:"context"`
		Note    string                  `json:"note"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	entry, err := s.store.AddGlucoseEntry(req.Level, req.Context, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutated(w, entry, store.MsgGlucoseSaved)
}

func (s *Service) handleListGlucose(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.GlucoseEntries())
}

func (s *Service) handleMedicalRecord(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.MedicalRecord())
}

func (s *Service) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.DaySummary())
}

func (s *Service) handleAchievements(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Achievements())
}

func (s *Service) handleVisit(w http.ResponseWriter, _ *http.Request) {
	streak, err := s.engine.EvaluateVisit()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"streak":   streak,
		"unlocked": s.engine.Evaluate(),
	})
}
