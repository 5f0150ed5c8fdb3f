package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sproutapp/carbon-coach/internal/activity"
	"github.com/sproutapp/carbon-coach/internal/db"
	"github.com/sproutapp/carbon-coach/internal/progress"
	"github.com/sproutapp/carbon-coach/internal/server/middleware"
	"github.com/sproutapp/carbon-coach/internal/types"
)

const (
	freeformMinLen      = 10
	freeformMaxLen      = 200
	freeformDailyLimit  = 20
	duplicateWindow     = 4 * time.Hour
	defaultFeedPageSize = 20
)

type freeformRequest struct {
	Text string `json:"text"`
}

type completeMissionRequest struct {
	MissionID uuid.UUID `json:"mission_id"`
}

// handleFreeformActivity logs a freeform sustainability action. The text is
// parsed by the LLM, credited with CO2 and XP, and applied to the profile.
func (s *Server) handleFreeformActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	ctx := r.Context()
	now := time.Now()

	var req freeformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if n := utf8.RuneCountInString(text); n < freeformMinLen || n > freeformMaxLen {
		s.errorResponse(w, http.StatusBadRequest, "activity text must be between 10 and 200 characters")
		return
	}

	count, err := s.db.CountFreeformSince(ctx, userID, now.Add(-24*time.Hour))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to check activity limit")
		return
	}
	if count >= freeformDailyLimit {
		s.errorResponse(w, http.StatusTooManyRequests, "daily activity limit reached")
		return
	}

	duplicate, err := s.db.HasRecentDuplicate(ctx, userID, text, now.Add(-duplicateWindow))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to check duplicates")
		return
	}
	if duplicate {
		s.errorResponse(w, http.StatusBadRequest, "you already logged this activity recently")
		return
	}

	parsed := s.parser.Parse(ctx, text)
	if !parsed.Recognized() {
		s.errorResponse(w, http.StatusBadRequest, "could not recognize this as a sustainability action")
		return
	}

	co2 := activity.EstimateCO2(parsed.Estimate)
	if co2 > activity.MaxCO2PerActivity {
		co2 = activity.MaxCO2PerActivity
	}
	xp := progress.CalculateXP(co2, types.Category(parsed.Category))
	money := activity.EstimateMoneySaved(types.Category(parsed.Category), co2)

	emoji := parsed.Emoji
	if emoji == "" {
		emoji = activity.CategoryEmoji(types.Category(parsed.Category))
	}

	var moneyPtr *float64
	if money > 0 {
		moneyPtr = &money
	}
	saved, err := s.db.InsertActivity(ctx, &db.ActivityRow{
		UserID:       userID,
		ActivityType: db.ActivityTypeFreeform,
		UserInput:    &text,
		Summary:      parsed.Summary,
		Category:     types.Category(parsed.Category),
		XPEarned:     xp,
		CO2SavedKg:   co2,
		MoneySaved:   moneyPtr,
		Emoji:        emoji,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save activity")
		return
	}

	profile, err := s.db.ApplyActivity(ctx, userID, xp, co2, 0, money, now)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":      true,
		"activity":     saved,
		"user_profile": profile,
	})
}

// handleCompleteMission marks a mission completed and credits its rewards.
func (s *Server) handleCompleteMission(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	ctx := r.Context()
	now := time.Now()

	var req completeMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MissionID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mission, err := s.db.GetMission(ctx, userID, req.MissionID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load mission")
		return
	}
	if mission == nil {
		s.errorResponse(w, http.StatusNotFound, "mission not found")
		return
	}
	if mission.Status == db.MissionStatusCompleted {
		s.errorResponse(w, http.StatusBadRequest, "mission already completed")
		return
	}

	// The guarded update loses the race gracefully: a second caller gets
	// "already completed" rather than double rewards.
	completed, err := s.db.CompleteMission(ctx, userID, req.MissionID, now)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to complete mission")
		return
	}
	if !completed {
		s.errorResponse(w, http.StatusBadRequest, "mission already completed")
		return
	}

	var moneyPtr *float64
	if mission.MoneySaved > 0 {
		moneyPtr = &mission.MoneySaved
	}
	missionID := req.MissionID
	saved, err := s.db.InsertActivity(ctx, &db.ActivityRow{
		UserID:       userID,
		ActivityType: db.ActivityTypeMission,
		MissionID:    &missionID,
		Summary:      mission.Title,
		Category:     mission.Category,
		XPEarned:     mission.XPReward,
		CO2SavedKg:   mission.CO2SavedKg,
		MoneySaved:   moneyPtr,
		Emoji:        activity.CategoryEmoji(mission.Category),
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save activity")
		return
	}

	profile, err := s.db.ApplyActivity(ctx, userID, mission.XPReward, mission.CO2SavedKg, 1, mission.MoneySaved, now)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":      true,
		"activity":     saved,
		"user_profile": profile,
	})
}

// feedItem is an activity row decorated with a relative timestamp.
type feedItem struct {
	db.ActivityRow
	TimeAgo string `json:"time_ago"`
}

// handleActivityFeed returns the user's activity feed, newest first.
func (s *Server) handleActivityFeed(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := queryInt(r, "limit", defaultFeedPageSize)
	if limit < 1 || limit > 100 {
		limit = defaultFeedPageSize
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	activities, err := s.db.ListActivities(r.Context(), userID, limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load activities")
		return
	}

	now := time.Now()
	items := make([]feedItem, 0, len(activities))
	for _, a := range activities {
		items = append(items, feedItem{
			ActivityRow: a,
			TimeAgo:     activity.TimeAgo(a.CreatedAt, now),
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"activities": items,
		"limit":      limit,
		"offset":     offset,
	})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
