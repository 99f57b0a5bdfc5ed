package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsRowColumns = []string{"user_id", "workout_split", "rest_time_default", "water_goal", "ai_context", "biometric_enabled", "updated_at"}

func TestGetSettings(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewSettingsRepo(conn)
	uid := uuid.New()
	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT user_id, workout_split, rest_time_default, water_goal, ai_context, biometric_enabled, updated_at FROM user_settings WHERE user_id = $1;`)

	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(settingsRowColumns).AddRow(uid, "ABCD", 90, 2500, "hipertrofia", true, updated))
		s, err := repo.Get(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "ABCD", s.WorkoutSplit)
		assert.Equal(t, 90, s.RestTimeDefault)
		assert.Equal(t, 2500, s.WaterGoal)
		assert.True(t, s.BiometricEnabled)
	})
	t.Run("missing row", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrSettingsNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestCreateDefaultSettings(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewSettingsRepo(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO user_settings (user_id) VALUES ($1) ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id RETURNING`)

	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(settingsRowColumns).AddRow(uid, "ABC", 60, 3000, "", false, time.Now()))
		s, err := repo.CreateDefault(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "ABC", s.WorkoutSplit)
		assert.Equal(t, 3000, s.WaterGoal)
	})
	t.Run("user missing", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.CreateDefault(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpdateSettingsColumns(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewSettingsRepo(conn)
	uid := uuid.New()
	upsert := func(column string) string {
		return regexp.QuoteMeta(`INSERT INTO user_settings (user_id, ` + column + `) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET ` +
			column + ` = EXCLUDED.` + column + `, updated_at = now();`)
	}
	testCases := []struct {
		Desc   string
		Column string
		Value  any
		Call   func() error
	}{
		{Desc: "split", Column: "workout_split", Value: "AB", Call: func() error { return repo.UpdateSplit(ctx, uid, "AB") }},
		{Desc: "rest time", Column: "rest_time_default", Value: 45, Call: func() error { return repo.UpdateRestTime(ctx, uid, 45) }},
		{Desc: "water goal", Column: "water_goal", Value: 3500, Call: func() error { return repo.UpdateWaterGoal(ctx, uid, 3500) }},
		{Desc: "ai context", Column: "ai_context", Value: "cutting", Call: func() error { return repo.UpdateAIContext(ctx, uid, "cutting") }},
		{Desc: "biometric", Column: "biometric_enabled", Value: true, Call: func() error { return repo.UpdateBiometric(ctx, uid, true) }},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			conn.ExpectExec(upsert(tc.Column)).WithArgs(uid, tc.Value).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			assert.NoError(t, tc.Call())
		})
	}
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(upsert("water_goal")).WithArgs(uid, 1000).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.UpdateWaterGoal(ctx, uid, 1000))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
