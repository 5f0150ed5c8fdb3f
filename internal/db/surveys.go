package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sproutapp/carbon-coach/internal/types"
)

// UpsertSurvey stores the user's onboarding answers, replacing any previous
// submission.
func (db *DB) UpsertSurvey(ctx context.Context, userID uuid.UUID, survey *types.SurveyResponse) error {
	responses, err := json.Marshal(survey)
	if err != nil {
		return fmt.Errorf("failed to marshal survey: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO user_surveys (user_id, responses)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET responses = $2, updated_at = NOW()`,
		userID, responses,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert survey: %w", err)
	}
	return nil
}

// GetSurvey retrieves the user's survey, or nil if none was submitted.
func (db *DB) GetSurvey(ctx context.Context, userID uuid.UUID) (*types.SurveyResponse, error) {
	var responses []byte
	err := db.pool.QueryRow(ctx,
		`SELECT responses FROM user_surveys WHERE user_id = $1`,
		userID,
	).Scan(&responses)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}

	var survey types.SurveyResponse
	if err := json.Unmarshal(responses, &survey); err != nil {
		return nil, fmt.Errorf("failed to unmarshal survey: %w", err)
	}
	return &survey, nil
}
