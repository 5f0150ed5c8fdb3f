package server

import (
	"net/http"
	"time"

	"github.com/sproutapp/carbon-coach/internal/impact"
	"github.com/sproutapp/carbon-coach/internal/progress"
	"github.com/sproutapp/carbon-coach/internal/server/middleware"
)

// handleImpactProjections returns the user's savings projections, lifetime
// breakdown by category, and their biggest actions.
func (s *Server) handleImpactProjections(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	ctx := r.Context()
	now := time.Now()

	recentCO2, err := s.db.SumCO2Since(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to compute savings pace")
		return
	}
	pace := impact.MonthlyPace(recentCO2)

	openSavings, err := s.db.SumAvailableMissionSavings(ctx, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load open missions")
		return
	}

	activities, err := s.db.ListAllActivities(ctx, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load activities")
		return
	}

	records := make([]impact.ActivityRecord, 0, len(activities))
	for _, a := range activities {
		records = append(records, impact.ActivityRecord{
			Category:   a.Category,
			CO2SavedKg: a.CO2SavedKg,
			Summary:    a.Summary,
		})
	}
	breakdown, topActions := impact.Breakdown(records)

	profile, err := s.db.GetProfile(ctx, userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	lifetime := map[string]any{"breakdown": breakdown}
	plant := map[string]any{
		"stage": 1,
		"name":  progress.PlantStageName(1),
	}
	if profile != nil {
		lifetime["total_co2_saved_kg"] = profile.TotalCO2SavedKg
		lifetime["total_money_saved"] = profile.TotalMoneySaved
		lifetime["total_missions_completed"] = profile.TotalMissionsCompleted
		plant["stage"] = profile.PlantStage
		plant["name"] = progress.PlantStageName(profile.PlantStage)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"monthly_pace_kg": pace,
		"projections": map[string]any{
			"current_pace": impact.Project(pace),
			"best_case":    impact.Project(impact.BestCasePace(pace, openSavings)),
		},
		"lifetime":    lifetime,
		"top_actions": topActions,
		"plant":       plant,
	})
}
