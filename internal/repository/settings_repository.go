package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/pkg/entity"
)

const settingsColumns = `user_id, workout_split, rest_time_default, water_goal, ai_context, biometric_enabled, updated_at`

type SettingsRepository struct {
	conn PgConnection
}

func NewSettingsRepo(conn PgConnection) *SettingsRepository {
	return &SettingsRepository{
		conn: conn,
	}
}

func scanSettings(row pgx.Row) (*entity.UserSettings, error) {
	var s entity.UserSettings
	err := row.Scan(&s.UserID, &s.WorkoutSplit, &s.RestTimeDefault, &s.WaterGoal, &s.AIContext, &s.BiometricEnabled, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (sr *SettingsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	s, err := scanSettings(sr.conn.QueryRow(ctx, `SELECT `+settingsColumns+` FROM user_settings WHERE user_id = $1;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSettingsNotFound
		}
		return nil, errors.New("getting settings error: " + err.Error())
	}
	return s, nil
}

func (sr *SettingsRepository) CreateDefault(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	s, err := scanSettings(sr.conn.QueryRow(ctx,
		`INSERT INTO user_settings (user_id) VALUES ($1) ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id RETURNING `+settingsColumns+`;`,
		uid,
	))
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("creating default settings error: " + err.Error())
	}
	return s, nil
}

func (sr *SettingsRepository) UpdateSplit(ctx context.Context, uid uuid.UUID, split string) error {
	return sr.upsertColumn(ctx, uid, "workout_split", split)
}

func (sr *SettingsRepository) UpdateRestTime(ctx context.Context, uid uuid.UUID, seconds int) error {
	return sr.upsertColumn(ctx, uid, "rest_time_default", seconds)
}

func (sr *SettingsRepository) UpdateWaterGoal(ctx context.Context, uid uuid.UUID, ml int) error {
	return sr.upsertColumn(ctx, uid, "water_goal", ml)
}

func (sr *SettingsRepository) UpdateAIContext(ctx context.Context, uid uuid.UUID, aiContext string) error {
	return sr.upsertColumn(ctx, uid, "ai_context", aiContext)
}

func (sr *SettingsRepository) UpdateBiometric(ctx context.Context, uid uuid.UUID, enabled bool) error {
	return sr.upsertColumn(ctx, uid, "biometric_enabled", enabled)
}

// column is never user input
func (sr *SettingsRepository) upsertColumn(ctx context.Context, uid uuid.UUID, column string, value any) error {
	query := fmt.Sprintf(
		`INSERT INTO user_settings (user_id, %[1]s) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET %[1]s = EXCLUDED.%[1]s, updated_at = now();`,
		column,
	)
	_, err := sr.conn.Exec(ctx, query, uid, value)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return fmt.Errorf("updating %s error: %w", column, err)
	}
	return nil
}
