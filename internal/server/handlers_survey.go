package server

import (
	"encoding/json"
	"net/http"

	"github.com/sproutapp/carbon-coach/internal/server/middleware"
	"github.com/sproutapp/carbon-coach/internal/types"
)

// handleSaveSurvey stores or replaces the user's onboarding survey.
func (s *Server) handleSaveSurvey(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var survey types.SurveyResponse
	if err := json.NewDecoder(r.Body).Decode(&survey); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.db.UpsertSurvey(r.Context(), userID, &survey); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save survey")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Survey saved",
	})
}

// handleGetSurvey returns the user's stored survey.
func (s *Server) handleGetSurvey(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	survey, err := s.db.GetSurvey(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load survey")
		return
	}
	if survey == nil {
		s.errorResponse(w, http.StatusNotFound, "no survey found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"survey": survey})
}
