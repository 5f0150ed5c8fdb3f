package server

import (
	"log"
	"net/http"

	"github.com/sproutapp/carbon-coach/internal/pipeline"
	"github.com/sproutapp/carbon-coach/internal/progress"
	"github.com/sproutapp/carbon-coach/internal/server/middleware"
)

// handleGenerateMissions runs the full generation pipeline for the user and
// replaces their mission set with the result.
func (s *Server) handleGenerateMissions(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	ctx := r.Context()

	survey, err := s.db.GetSurvey(ctx, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load survey")
		return
	}
	if survey == nil {
		s.errorResponse(w, http.StatusNotFound, "no survey found; complete onboarding first")
		return
	}

	state, err := pipeline.Run(ctx, survey, pipeline.RunOptions{
		EstimationClient: s.estimator,
		LLMClient:        s.llmClient,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "mission generation failed")
		return
	}
	if state.Error != "" {
		log.Printf("[missions] pipeline degraded for user %s: %s", userID, state.Error)
	}

	if err := s.db.UpsertPipelineResult(ctx, userID, state); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	missions, err := s.db.ReplaceMissions(ctx, userID, state.Missions)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save missions")
		return
	}

	profile, err := s.db.GetProfile(ctx, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":      true,
		"user_profile": profile,
		"missions":     missions,
	})
}

// handleListMissions returns the user's current mission set.
func (s *Server) handleListMissions(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	missions, err := s.db.ListMissions(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load missions")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"missions": missions})
}

// handleGetProfile returns the user's profile with game stats.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "no profile found; generate missions first")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profile":          profile,
		"plant_stage_name": progress.PlantStageName(profile.PlantStage),
	})
}
