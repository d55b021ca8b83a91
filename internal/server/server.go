package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"vitalog/internal/coach"
	"vitalog/internal/engage"
	"vitalog/internal/settings"
	"vitalog/internal/store"
	"vitalog/internal/wellness"
)

// Service implements all HTTP endpoints. It holds the state container,
// the engagement engine, the coach gateway and the settings store as
// its dependencies.
type Service struct {
	store  *store.Store
	engine *engage.Engine
	coach  *coach.Service
	prefs  *settings.Store
}

// NewService creates an HTTP service backed by the given components.
func NewService(st *store.Store, eng *engage.Engine, c *coach.Service, prefs *settings.Store) *Service {
	return &Service{store: st, engine: eng, coach: c, prefs: prefs}
}

// mutationResponse wraps a created entity with whatever the engagement
// engine observed as a result of the write: achievements unlocked for
// the first time and goals that just crossed their target.
type mutationResponse struct {
	Entity         any                    `json:"entity"`
	Message        string                 `json:"message"`
	Unlocked       []wellness.Achievement `json:"unlocked,omitempty"`
	CompletedGoals []wellness.Goal        `json:"completed_goals,omitempty"`
}

func (s *Service) mutated(w http.ResponseWriter, entity any, message string) {
	writeJSON(w, http.StatusCreated, mutationResponse{
		Entity:         entity,
		Message:        message,
		Unlocked:       s.engine.Evaluate(),
		CompletedGoals: s.engine.CompletedNow(),
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encode response failed: %v", err)
	}
}

// writeError maps domain errors onto HTTP statuses: validation errors
// are the caller's fault, referential errors point at a missing entity,
// and gateway failures get the user-facing fallback message so clients
// can show it verbatim.
func writeError(w http.ResponseWriter, err error) {
	var verr *store.ValidationError
	var rerr *store.ReferentialError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error()})
	case errors.As(err, &rerr):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: rerr.Error()})
	case coach.IsGatewayError(err):
		log.Printf("server: coach request failed: %v", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: coach.UnavailableMessage})
	default:
		log.Printf("server: internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
