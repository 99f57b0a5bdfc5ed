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

type WorkoutLogsRepository struct {
	conn PgConnection
}

func NewWorkoutLogsRepo(conn PgConnection) *WorkoutLogsRepository {
	return &WorkoutLogsRepository{
		conn: conn,
	}
}

func (wr *WorkoutLogsRepository) Create(ctx context.Context, log *entity.WorkoutLog) (int64, error) {
	var id int64
	err := wr.conn.QueryRow(ctx, `INSERT INTO workout_logs (user_id, exercise_id, weight, reps, rest_time, notes, started_at, completed_at)
SELECT $1, e.id, $3, $4, $5, $6, $7, $8 FROM exercises e WHERE e.id = $2 AND e.user_id = $1
RETURNING id;`,
		log.UserID,
		log.ExerciseID,
		log.Weight,
		log.Reps,
		log.RestTime,
		log.Notes,
		log.StartedAt,
		log.CompletedAt,
	).Scan(&id)
	if err != nil {
		// no row selected means the exercise is missing or owned by someone else
		if errors.Is(err, pgx.ErrNoRows) || pgErrCode(err) == foreignKeyViolation {
			return 0, errorvalues.ErrExerciseNotFound
		}
		return 0, errors.New("creating workout log error: " + err.Error())
	}
	return id, nil
}

func (wr *WorkoutLogsRepository) RecentByExercise(ctx context.Context, uid uuid.UUID, exerciseID int64, limit int) ([]entity.WorkoutLog, error) {
	rows, err := wr.conn.Query(ctx, `SELECT id, user_id, exercise_id, weight, reps, rest_time, notes, started_at, completed_at, created_at
FROM workout_logs WHERE user_id = $1 AND exercise_id = $2 ORDER BY created_at DESC LIMIT $3;`, uid, exerciseID, limit)
	if err != nil {
		return nil, errors.New("listing recent logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]entity.WorkoutLog, 0, limit)
	for rows.Next() {
		var l entity.WorkoutLog
		err = rows.Scan(&l.ID, &l.UserID, &l.ExerciseID, &l.Weight, &l.Reps, &l.RestTime, &l.Notes, &l.StartedAt, &l.CompletedAt, &l.CreatedAt)
		if err != nil {
			return nil, errors.New("scanning workout log error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing recent logs error: " + err.Error())
	}
	return logs, nil
}

func (wr *WorkoutLogsRepository) LastSplit(ctx context.Context, uid uuid.UUID) (string, error) {
	var split string
	err := wr.conn.QueryRow(ctx, `SELECT e.split FROM workout_logs wl JOIN exercises e ON e.id = wl.exercise_id
WHERE wl.user_id = $1 ORDER BY wl.created_at DESC, wl.id DESC LIMIT 1;`, uid).Scan(&split)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errorvalues.ErrNoWorkoutLogs
		}
		return "", errors.New("getting last split error: " + err.Error())
	}
	return split, nil
}

func (wr *WorkoutLogsRepository) ListBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutLogView, error) {
	rows, err := wr.conn.Query(ctx, `SELECT wl.id, wl.user_id, wl.exercise_id, wl.weight, wl.reps, wl.rest_time, wl.notes, wl.started_at,
	wl.completed_at, wl.created_at, e.name, e.split
FROM workout_logs wl JOIN exercises e ON e.id = wl.exercise_id
WHERE wl.user_id = $1 AND wl.created_at >= $2 AND wl.created_at < $3 ORDER BY wl.created_at ASC;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing workout logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]entity.WorkoutLogView, 0)
	for rows.Next() {
		var l entity.WorkoutLogView
		err = rows.Scan(&l.ID, &l.UserID, &l.ExerciseID, &l.Weight, &l.Reps, &l.RestTime, &l.Notes, &l.StartedAt,
			&l.CompletedAt, &l.CreatedAt, &l.ExerciseName, &l.Split)
		if err != nil {
			return nil, errors.New("scanning workout log error: " + err.Error())
		}
		logs = append(logs, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing workout logs error: " + err.Error())
	}
	return logs, nil
}
