package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/pkg/entity"
)

type HealthStatsRepository struct {
	conn PgConnection
}

func NewHealthStatsRepo(conn PgConnection) *HealthStatsRepository {
	return &HealthStatsRepository{
		conn: conn,
	}
}

func collectStats(rows pgx.Rows) ([]entity.HealthStat, error) {
	defer rows.Close()
	stats := make([]entity.HealthStat, 0)
	for rows.Next() {
		var s entity.HealthStat
		if err := rows.Scan(&s.ID, &s.UserID, &s.Type, &s.Value, &s.RecordedAt); err != nil {
			return nil, errors.New("scanning health stat error: " + err.Error())
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("listing health stats error: " + err.Error())
	}
	return stats, nil
}

func (hr *HealthStatsRepository) Create(ctx context.Context, stat *entity.HealthStat) (int64, error) {
	recordedAt := stat.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	var id int64
	err := hr.conn.QueryRow(ctx, `INSERT INTO health_stats (user_id, type, value, recorded_at) VALUES ($1, $2, $3, $4) RETURNING id;`,
		stat.UserID, stat.Type, stat.Value, recordedAt,
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("creating health stat error: " + err.Error())
	}
	return id, nil
}

func (hr *HealthStatsRepository) ListBetween(ctx context.Context, uid uuid.UUID, types []string, from, to time.Time) ([]entity.HealthStat, error) {
	rows, err := hr.conn.Query(ctx, `SELECT id, user_id, type, value, recorded_at FROM health_stats
WHERE user_id = $1 AND type = ANY($2) AND recorded_at >= $3 AND recorded_at < $4 ORDER BY recorded_at DESC;`, uid, types, from, to)
	if err != nil {
		return nil, errors.New("listing health stats error: " + err.Error())
	}
	return collectStats(rows)
}

func (hr *HealthStatsRepository) Latest(ctx context.Context, uid uuid.UUID) ([]entity.HealthStat, error) {
	rows, err := hr.conn.Query(ctx, `SELECT DISTINCT ON (type) id, user_id, type, value, recorded_at FROM health_stats
WHERE user_id = $1 ORDER BY type, recorded_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing latest health stats error: " + err.Error())
	}
	return collectStats(rows)
}

func (hr *HealthStatsRepository) UpsertInRange(ctx context.Context, stat *entity.HealthStat, from, to time.Time) error {
	tx, err := hr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	ct, err := tx.Exec(ctx, `UPDATE health_stats SET value = $1 WHERE id = (
	SELECT id FROM health_stats WHERE user_id = $2 AND type = $3 AND recorded_at >= $4 AND recorded_at < $5
	ORDER BY recorded_at DESC LIMIT 1
);`, stat.Value, stat.UserID, stat.Type, from, to)
	if err != nil {
		return errors.New("updating health stat error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		_, err = tx.Exec(ctx, `INSERT INTO health_stats (user_id, type, value, recorded_at) VALUES ($1, $2, $3, $4);`,
			stat.UserID, stat.Type, stat.Value, stat.RecordedAt,
		)
		if err != nil {
			if pgErrCode(err) == foreignKeyViolation {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("inserting health stat error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing health stat error: " + err.Error())
	}
	return nil
}

type BodyCompositionRepository struct {
	conn PgConnection
}

func NewBodyCompositionRepo(conn PgConnection) *BodyCompositionRepository {
	return &BodyCompositionRepository{
		conn: conn,
	}
}

func (br *BodyCompositionRepository) Create(ctx context.Context, bc *entity.BodyComposition) (int64, error) {
	recordedAt := bc.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}
	var id int64
	err := br.conn.QueryRow(ctx, `INSERT INTO body_composition (user_id, weight_kg, body_fat_pct, muscle_mass_kg, visceral_fat,
	basal_metabolic_rate, body_water_pct, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		bc.UserID, bc.WeightKg, bc.BodyFatPct, bc.MuscleMassKg, bc.VisceralFat, bc.BasalMetabolic, bc.BodyWaterPct, recordedAt,
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("creating body composition error: " + err.Error())
	}
	return id, nil
}

func (br *BodyCompositionRepository) List(ctx context.Context, uid uuid.UUID, limit int) ([]entity.BodyComposition, error) {
	rows, err := br.conn.Query(ctx, `SELECT id, user_id, weight_kg, body_fat_pct, muscle_mass_kg, visceral_fat, basal_metabolic_rate,
	body_water_pct, recorded_at
FROM body_composition WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("listing body composition error: " + err.Error())
	}
	defer rows.Close()
	list := make([]entity.BodyComposition, 0)
	for rows.Next() {
		var bc entity.BodyComposition
		err = rows.Scan(&bc.ID, &bc.UserID, &bc.WeightKg, &bc.BodyFatPct, &bc.MuscleMassKg, &bc.VisceralFat, &bc.BasalMetabolic,
			&bc.BodyWaterPct, &bc.RecordedAt)
		if err != nil {
			return nil, errors.New("scanning body composition error: " + err.Error())
		}
		list = append(list, bc)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing body composition error: " + err.Error())
	}
	return list, nil
}
