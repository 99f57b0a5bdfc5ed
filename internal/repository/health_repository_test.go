package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthStatsQueries(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewHealthStatsRepo(conn)
	uid := uuid.New()
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "type", "value", "recorded_at"}

	t.Run("create keeps given instant", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`INSERT INTO health_stats (user_id, type, value, recorded_at) VALUES ($1, $2, $3, $4) RETURNING id;`)).
			WithArgs(uid, entity.StatWater, "250", at).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		id, err := repo.Create(ctx, &entity.HealthStat{UserID: uid, Type: entity.StatWater, Value: "250", RecordedAt: at})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})
	t.Run("list between", func(t *testing.T) {
		from, to := at.Add(-time.Hour), at.Add(time.Hour)
		conn.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND type = ANY($2) AND recorded_at >= $3 AND recorded_at < $4 ORDER BY recorded_at DESC;`)).
			WithArgs(uid, []string{entity.StatWater}, from, to).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), uid, entity.StatWater, "250", at))
		stats, err := repo.ListBetween(ctx, uid, []string{entity.StatWater}, from, to)
		require.NoError(t, err)
		assert.Len(t, stats, 1)
	})
	t.Run("latest per type", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT ON (type)`)).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(3), uid, entity.StatSteps, "8000", at).
				AddRow(int64(2), uid, entity.StatWeight, "81.4", at))
		stats, err := repo.Latest(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, stats, 2)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpsertInRange(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewHealthStatsRepo(conn)
	uid := uuid.New()
	from := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	stat := entity.HealthStat{UserID: uid, Type: entity.StatSteps, Value: "9500", RecordedAt: from.Add(10 * time.Hour)}
	update := regexp.QuoteMeta(`UPDATE health_stats SET value = $1 WHERE id = (`)
	insert := regexp.QuoteMeta(`INSERT INTO health_stats (user_id, type, value, recorded_at) VALUES ($1, $2, $3, $4);`)

	t.Run("existing row updated", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(update).WithArgs(stat.Value, uid, stat.Type, from, to).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		assert.NoError(t, repo.UpsertInRange(ctx, &stat, from, to))
	})
	t.Run("missing row inserted", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(update).WithArgs(stat.Value, uid, stat.Type, from, to).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		conn.ExpectExec(insert).WithArgs(uid, stat.Type, stat.Value, stat.RecordedAt).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		assert.NoError(t, repo.UpsertInRange(ctx, &stat, from, to))
	})
	t.Run("update failed", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(update).WithArgs(stat.Value, uid, stat.Type, from, to).WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		assert.Error(t, repo.UpsertInRange(ctx, &stat, from, to))
	})
}

func TestBodyComposition(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewBodyCompositionRepo(conn)
	uid := uuid.New()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	bc := entity.BodyComposition{UserID: uid, WeightKg: 80.2, BodyFatPct: 18.5, MuscleMassKg: 37.1, VisceralFat: 7, BasalMetabolic: 1780, BodyWaterPct: 55.3, RecordedAt: at}

	conn.ExpectQuery(regexp.QuoteMeta(`INSERT INTO body_composition`)).
		WithArgs(uid, bc.WeightKg, bc.BodyFatPct, bc.MuscleMassKg, bc.VisceralFat, bc.BasalMetabolic, bc.BodyWaterPct, at).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	id, err := repo.Create(ctx, &bc)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	conn.ExpectQuery(regexp.QuoteMeta(`FROM body_composition WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2;`)).
		WithArgs(uid, 10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "weight_kg", "body_fat_pct", "muscle_mass_kg", "visceral_fat",
			"basal_metabolic_rate", "body_water_pct", "recorded_at"}).
			AddRow(int64(1), uid, bc.WeightKg, bc.BodyFatPct, bc.MuscleMassKg, bc.VisceralFat, bc.BasalMetabolic, bc.BodyWaterPct, at))
	list, err := repo.List(ctx, uid, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	bc.ID = 1
	assert.Equal(t, bc, list[0])
	assert.NoError(t, conn.ExpectationsWereMet())
}
