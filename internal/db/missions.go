package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sproutapp/carbon-coach/internal/types"
)

const missionColumns = `id, user_id, title, description, category, co2_saved_kg,
	money_saved, xp_reward, tips, mission_type, status, created_at, completed_at`

func scanMission(row pgx.Row) (*MissionRow, error) {
	var m MissionRow
	var moneySaved *float64
	var tips []byte
	err := row.Scan(
		&m.ID, &m.UserID, &m.Title, &m.Description, &m.Category, &m.CO2SavedKg,
		&moneySaved, &m.XPReward, &tips, &m.MissionType, &m.Status, &m.CreatedAt, &m.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	if moneySaved != nil {
		m.MoneySaved = *moneySaved
	}
	if err := json.Unmarshal(tips, &m.Tips); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tips: %w", err)
	}
	return &m, nil
}

// ReplaceMissions transactionally swaps the user's mission set for a freshly
// generated one. Rerunning the pipeline fully overwrites the previous set.
func (db *DB) ReplaceMissions(ctx context.Context, userID uuid.UUID, missions []types.Mission) ([]MissionRow, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM user_missions WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("failed to clear missions: %w", err)
	}

	rows := make([]MissionRow, 0, len(missions))
	for _, mission := range missions {
		tips, err := json.Marshal(mission.Tips)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tips: %w", err)
		}
		var moneySaved *float64
		if mission.MoneySaved > 0 {
			moneySaved = &mission.MoneySaved
		}

		row, err := scanMission(tx.QueryRow(ctx,
			`INSERT INTO user_missions
			   (user_id, title, description, category, co2_saved_kg, money_saved, xp_reward, tips, mission_type, status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING `+missionColumns,
			userID, mission.Title, mission.Description, mission.Category, mission.CO2SavedKg,
			moneySaved, mission.XPReward, tips, mission.MissionType, MissionStatusAvailable,
		))
		if err != nil {
			return nil, fmt.Errorf("failed to insert mission: %w", err)
		}
		rows = append(rows, *row)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit mission replacement: %w", err)
	}
	return rows, nil
}

// ListMissions returns the user's missions, available first, newest within
// each group.
func (db *DB) ListMissions(ctx context.Context, userID uuid.UUID) ([]MissionRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+missionColumns+` FROM user_missions
		 WHERE user_id = $1
		 ORDER BY status ASC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	var missions []MissionRow
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, *m)
	}
	return missions, rows.Err()
}

// GetMission retrieves one of the user's missions, or nil if absent.
func (db *DB) GetMission(ctx context.Context, userID, missionID uuid.UUID) (*MissionRow, error) {
	m, err := scanMission(db.pool.QueryRow(ctx,
		`SELECT `+missionColumns+` FROM user_missions WHERE id = $1 AND user_id = $2`,
		missionID, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return m, nil
}

// CompleteMission marks an available mission completed. Returns false if the
// mission was already completed (or vanished underneath us).
func (db *DB) CompleteMission(ctx context.Context, userID, missionID uuid.UUID, completedAt time.Time) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE user_missions SET status = $3, completed_at = $4
		 WHERE id = $1 AND user_id = $2 AND status = $5`,
		missionID, userID, MissionStatusCompleted, completedAt, MissionStatusAvailable,
	)
	if err != nil {
		return false, fmt.Errorf("failed to complete mission: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SumAvailableMissionSavings totals the CO2 potential of the user's open
// missions, used for the best-case impact projection.
func (db *DB) SumAvailableMissionSavings(ctx context.Context, userID uuid.UUID) (float64, error) {
	var total float64
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(co2_saved_kg), 0) FROM user_missions
		 WHERE user_id = $1 AND status = $2`,
		userID, MissionStatusAvailable,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum mission savings: %w", err)
	}
	return total, nil
}

// TopAvailableMissions returns the open missions with the highest savings.
func (db *DB) TopAvailableMissions(ctx context.Context, userID uuid.UUID, limit int) ([]MissionRow, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+missionColumns+` FROM user_missions
		 WHERE user_id = $1 AND status = $2
		 ORDER BY co2_saved_kg DESC
		 LIMIT $3`,
		userID, MissionStatusAvailable, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list top missions: %w", err)
	}
	defer rows.Close()

	var missions []MissionRow
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		missions = append(missions, *m)
	}
	return missions, rows.Err()
}
