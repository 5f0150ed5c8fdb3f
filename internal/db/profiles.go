package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sproutapp/carbon-coach/internal/progress"
	"github.com/sproutapp/carbon-coach/internal/types"
)

const profileColumns = `user_id, profile_type, baseline_co2_kg, opportunity_areas,
	total_xp, current_level, xp_current_level, xp_to_next_level, plant_stage,
	total_co2_saved, total_missions_completed, total_money_saved,
	current_streak_days, longest_streak_days, last_activity_date,
	created_at, updated_at`

func scanProfile(row pgx.Row) (*ProfileRow, error) {
	var p ProfileRow
	var areas []byte
	err := row.Scan(
		&p.UserID, &p.ProfileType, &p.BaselineCO2Kg, &areas,
		&p.TotalXP, &p.CurrentLevel, &p.XPCurrentLevel, &p.XPToNextLevel, &p.PlantStage,
		&p.TotalCO2SavedKg, &p.TotalMissionsCompleted, &p.TotalMoneySaved,
		&p.CurrentStreakDays, &p.LongestStreakDays, &p.LastActivityDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(areas, &p.OpportunityAreas); err != nil {
		return nil, fmt.Errorf("failed to unmarshal opportunity areas: %w", err)
	}
	return &p, nil
}

// UpsertPipelineResult stores a pipeline run's classification onto the
// user's profile, creating the profile on first run. Game stats are
// untouched.
func (db *DB) UpsertPipelineResult(ctx context.Context, userID uuid.UUID, state *types.PipelineState) error {
	areas, err := json.Marshal(state.OpportunityAreas)
	if err != nil {
		return fmt.Errorf("failed to marshal opportunity areas: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, profile_type, baseline_co2_kg, opportunity_areas)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET
		   profile_type = $2, baseline_co2_kg = $3, opportunity_areas = $4, updated_at = NOW()`,
		userID, state.ProfileType, state.BaselineCO2Kg, areas,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user's profile, or nil if the pipeline has never
// run for them.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileRow, error) {
	profile, err := scanProfile(db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`,
		userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// ApplyActivity credits one activity's rewards to the profile inside a
// transaction: XP, level, plant stage and streak are recomputed from the new
// totals. Returns the updated profile.
func (db *DB) ApplyActivity(ctx context.Context, userID uuid.UUID, xp int, co2Kg float64, missionsCompleted int, moneySaved float64, now time.Time) (*ProfileRow, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// A user can log activities before their first pipeline run, so make
	// sure a default profile row exists to credit against.
	_, err = tx.Exec(ctx,
		`INSERT INTO user_profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}

	profile, err := scanProfile(tx.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1 FOR UPDATE`,
		userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no profile for user %s", userID)
		}
		return nil, fmt.Errorf("failed to lock profile: %w", err)
	}

	profile.TotalXP += xp
	profile.CurrentLevel = progress.CalculateLevel(profile.TotalXP)
	profile.XPCurrentLevel, profile.XPToNextLevel = progress.XPWithinLevel(profile.TotalXP)
	profile.PlantStage = progress.PlantStage(profile.CurrentLevel)
	profile.TotalCO2SavedKg += co2Kg
	profile.TotalMissionsCompleted += missionsCompleted
	profile.TotalMoneySaved += moneySaved

	streak := progress.Streak{
		Current: profile.CurrentStreakDays,
		Longest: profile.LongestStreakDays,
	}
	if profile.LastActivityDate != nil {
		streak.LastActivity = *profile.LastActivityDate
	}
	streak = streak.Advance(now)
	profile.CurrentStreakDays = streak.Current
	profile.LongestStreakDays = streak.Longest
	profile.LastActivityDate = &streak.LastActivity

	_, err = tx.Exec(ctx,
		`UPDATE user_profiles SET
		   total_xp = $2, current_level = $3, xp_current_level = $4, xp_to_next_level = $5,
		   plant_stage = $6, total_co2_saved = $7, total_missions_completed = $8,
		   total_money_saved = $9, current_streak_days = $10, longest_streak_days = $11,
		   last_activity_date = $12, updated_at = NOW()
		 WHERE user_id = $1`,
		userID, profile.TotalXP, profile.CurrentLevel, profile.XPCurrentLevel, profile.XPToNextLevel,
		profile.PlantStage, profile.TotalCO2SavedKg, profile.TotalMissionsCompleted,
		profile.TotalMoneySaved, profile.CurrentStreakDays, profile.LongestStreakDays,
		profile.LastActivityDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile stats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit profile update: %w", err)
	}
	return profile, nil
}
