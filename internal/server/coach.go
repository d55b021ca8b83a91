package server

import (
	"encoding/base64"
	"net/http"
	"strings"

	"vitalog/internal/llm"
)

// mediaPayload is an inline image attached to a coach request. Data is
// base64-encoded on the wire.
type mediaPayload struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

func (m mediaPayload) blob() (llm.Blob, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Data)
	if err != nil {
		return llm.Blob{}, err
	}
	return llm.Blob{MIMEType: m.MIMEType, Data: raw}, nil
}

func (s *Service) handleCoachNutrition(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		badRequest(w, "description is required")
		return
	}
	facts, err := s.coach.AnalyzeMeal(r.Context(), req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, facts)
}

func (s *Service) handleCoachWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Goal string `json:"goal"`
		Days int    `json:"days"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	plan, err := s.coach.WorkoutPlan(r.Context(), req.Goal, req.Days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Service) handleCoachRecipes(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Ingredients string `json:"ingredients"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	recipes, err := s.coach.Recipes(r.Context(), req.Ingredients)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// handleCoachGroceryList builds a shopping list from the meals already
// in the journal, so it takes no request body.
func (s *Service) handleCoachGroceryList(w http.ResponseWriter, r *http.Request) {
	items, err := s.coach.GroceryList(r.Context(), s.store.Meals())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"items": items})
}

func (s *Service) handleCoachMusic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Focus string `json:"focus"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	tracks, err := s.coach.SuggestMusic(r.Context(), req.Focus)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": tracks})
}

func (s *Service) handleCoachExerciseForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Exercise string       `json:"exercise"`
		Media    mediaPayload `json:"media"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	blob, err := req.Media.blob()
	if err != nil {
		badRequest(w, "media data must be base64-encoded")
		return
	}
	feedback, err := s.coach.ExerciseForm(r.Context(), blob, req.Exercise)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"feedback": feedback})
}

func (s *Service) handleCoachMindfulness(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood string `json:"mood"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	script, err := s.coach.MindfulnessScript(r.Context(), req.Mood)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"script": script})
}

func (s *Service) handleCoachAffirmation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mood string `json:"mood"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	text, err := s.coach.Affirmation(r.Context(), req.Mood)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"affirmation": text})
}

func (s *Service) handleCoachMedicationInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		badRequest(w, "name is required")
		return
	}
	info, err := s.coach.MedicationInfo(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"content": info})
}

func (s *Service) handleCoachHealthTopic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic string `json:"topic"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		badRequest(w, "topic is required")
		return
	}
	info, err := s.coach.HealthTopic(r.Context(), req.Topic)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Service) handleCoachPrescription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Media mediaPayload `json:"media"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	blob, err := req.Media.blob()
	if err != nil {
		badRequest(w, "media data must be base64-encoded")
		return
	}
	rx, err := s.coach.ParsePrescription(r.Context(), blob)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rx)
}

// handleCoachRecordSummary narrates the stored medical record in plain
// language.
func (s *Service) handleCoachRecordSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.coach.SummarizeRecords(r.Context(), s.store.MedicalRecord())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Service) handleCoachAppointmentSlots(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason        string `json:"reason"`
		PreferredDate string `json:"preferred_date"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	slots, err := s.coach.AppointmentSlots(r.Context(), req.Reason, req.PreferredDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

// handleCoachWeeklyReport summarizes the last seven days of journal
// activity.
func (s *Service) handleCoachWeeklyReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.coach.WeeklyReport(r.Context(), s.engine.WeekOf())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"report": report})
}
