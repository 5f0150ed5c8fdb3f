package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const activityColumns = `id, user_id, activity_type, mission_id, user_input,
	ai_summary, detected_category, xp_earned, co2_saved_kg, money_saved, emoji, created_at`

// InsertActivity stores one feed entry and returns the saved row.
func (db *DB) InsertActivity(ctx context.Context, a *ActivityRow) (*ActivityRow, error) {
	var saved ActivityRow
	err := db.pool.QueryRow(ctx,
		`INSERT INTO user_activities
		   (user_id, activity_type, mission_id, user_input, ai_summary, detected_category,
		    xp_earned, co2_saved_kg, money_saved, emoji)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+activityColumns,
		a.UserID, a.ActivityType, a.MissionID, a.UserInput, a.Summary, a.Category,
		a.XPEarned, a.CO2SavedKg, a.MoneySaved, a.Emoji,
	).Scan(
		&saved.ID, &saved.UserID, &saved.ActivityType, &saved.MissionID, &saved.UserInput,
		&saved.Summary, &saved.Category, &saved.XPEarned, &saved.CO2SavedKg, &saved.MoneySaved,
		&saved.Emoji, &saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert activity: %w", err)
	}
	return &saved, nil
}

// ListActivities returns the user's feed, newest first.
func (db *DB) ListActivities(ctx context.Context, userID uuid.UUID, limit, offset int) ([]ActivityRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+activityColumns+` FROM user_activities
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []ActivityRow
	for rows.Next() {
		var a ActivityRow
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.ActivityType, &a.MissionID, &a.UserInput,
			&a.Summary, &a.Category, &a.XPEarned, &a.CO2SavedKg, &a.MoneySaved,
			&a.Emoji, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// ListAllActivities returns every activity for impact aggregation.
func (db *DB) ListAllActivities(ctx context.Context, userID uuid.UUID) ([]ActivityRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+activityColumns+` FROM user_activities WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []ActivityRow
	for rows.Next() {
		var a ActivityRow
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.ActivityType, &a.MissionID, &a.UserInput,
			&a.Summary, &a.Category, &a.XPEarned, &a.CO2SavedKg, &a.MoneySaved,
			&a.Emoji, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// CountFreeformSince counts freeform logs after a cutoff, for the daily
// rate limit.
func (db *DB) CountFreeformSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM user_activities
		 WHERE user_id = $1 AND activity_type = $2 AND created_at >= $3`,
		userID, ActivityTypeFreeform, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

// HasRecentDuplicate reports whether the user logged the same text (case
// insensitive) after the cutoff.
func (db *DB) HasRecentDuplicate(ctx context.Context, userID uuid.UUID, text string, since time.Time) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM user_activities
		   WHERE user_id = $1 AND activity_type = $2 AND created_at >= $3
		     AND LOWER(user_input) = $4
		 )`,
		userID, ActivityTypeFreeform, since, strings.ToLower(text),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicates: %w", err)
	}
	return exists, nil
}

// SumCO2Since totals savings logged after a cutoff, for the pace projection.
func (db *DB) SumCO2Since(ctx context.Context, userID uuid.UUID, since time.Time) (float64, error) {
	var total float64
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(co2_saved_kg), 0) FROM user_activities
		 WHERE user_id = $1 AND created_at >= $2`,
		userID, since,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum savings: %w", err)
	}
	return total, nil
}
