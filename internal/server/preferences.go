package server

import (
	"net/http"

	"vitalog/internal/settings"
)

type themeResponse struct {
	Theme string `json:"theme"`
}

func (s *Service) handleGetTheme(w http.ResponseWriter, _ *http.Request) {
	theme, err := s.prefs.Get(settings.KeyTheme)
	if err != nil {
		writeError(w, err)
		return
	}
	if theme == "" {
		theme = "light"
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
}

func (s *Service) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	var req themeResponse
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Theme != "light" && req.Theme != "dark" {
		badRequest(w, "theme must be light or dark")
		return
	}
	if err := s.prefs.Set(settings.KeyTheme, req.Theme); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
