package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/pkg/entity"
)

const exerciseColumns = `id, user_id, name, COALESCE(muscle_group, ''), split, is_custom, COALESCE(api_id, ''), COALESCE(equipment, ''),
	COALESCE(gif_url, ''), target_sets, target_reps, target_weight, target_rest_time, sort_order, updated_at`

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(conn PgConnection) *ExercisesRepository {
	return &ExercisesRepository{
		conn: conn,
	}
}

func scanExercise(row pgx.Row) (*entity.Exercise, error) {
	var e entity.Exercise
	err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.MuscleGroup, &e.Split, &e.IsCustom, &e.APIID, &e.Equipment,
		&e.GifURL, &e.TargetSets, &e.TargetReps, &e.TargetWeight, &e.TargetRestTime, &e.Order, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (er *ExercisesRepository) Upsert(ctx context.Context, exercise *entity.Exercise) (int64, error) {
	var id int64
	err := er.conn.QueryRow(ctx, `INSERT INTO exercises (user_id, name, muscle_group, split, is_custom, api_id, equipment, gif_url,
	target_sets, target_reps, target_weight, target_rest_time)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11, $12)
ON CONFLICT (user_id, name) DO UPDATE SET split = EXCLUDED.split, target_sets = EXCLUDED.target_sets,
	target_reps = EXCLUDED.target_reps, target_weight = EXCLUDED.target_weight,
	target_rest_time = EXCLUDED.target_rest_time, updated_at = now()
RETURNING id;`,
		exercise.UserID,
		exercise.Name,
		exercise.MuscleGroup,
		exercise.Split,
		exercise.IsCustom,
		exercise.APIID,
		exercise.Equipment,
		exercise.GifURL,
		exercise.TargetSets,
		exercise.TargetReps,
		exercise.TargetWeight,
		exercise.TargetRestTime,
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("upserting exercise error: " + err.Error())
	}
	return id, nil
}

func (er *ExercisesRepository) InsertMany(ctx context.Context, exercises []entity.Exercise) (int, error) {
	tx, err := er.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	inserted := 0
	for _, e := range exercises {
		ct, err := tx.Exec(ctx, `INSERT INTO exercises (user_id, name, muscle_group, split, is_custom, target_sets, target_reps,
	target_weight, target_rest_time, sort_order)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10) ON CONFLICT (user_id, name) DO NOTHING;`,
			e.UserID, e.Name, e.MuscleGroup, e.Split, e.IsCustom, e.TargetSets, e.TargetReps, e.TargetWeight, e.TargetRestTime, e.Order,
		)
		if err != nil {
			if pgErrCode(err) == foreignKeyViolation {
				return 0, errorvalues.ErrUserNotFound
			}
			return 0, errors.New("inserting exercise error: " + err.Error())
		}
		inserted += int(ct.RowsAffected())
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, errors.New("committing exercises error: " + err.Error())
	}
	return inserted, nil
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id int64) (*entity.Exercise, error) {
	e, err := scanExercise(er.conn.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, errors.New("getting exercise by id error: " + err.Error())
	}
	return e, nil
}

func (er *ExercisesRepository) ListByUser(ctx context.Context, uid uuid.UUID, split string) ([]entity.Exercise, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if split == "" {
		rows, err = er.conn.Query(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE user_id = $1 ORDER BY id ASC;`, uid)
	} else {
		rows, err = er.conn.Query(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE user_id = $1 AND split = $2 ORDER BY id ASC;`, uid, split)
	}
	if err != nil {
		return nil, errors.New("listing exercises error: " + err.Error())
	}
	defer rows.Close()
	exercises := make([]entity.Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, errors.New("scanning exercise error: " + err.Error())
		}
		exercises = append(exercises, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing exercises error: " + err.Error())
	}
	return exercises, nil
}

func (er *ExercisesRepository) MuscleGroupsBySplit(ctx context.Context, uid uuid.UUID, split string) ([]string, error) {
	rows, err := er.conn.Query(ctx, `SELECT COALESCE(muscle_group, '') FROM exercises WHERE user_id = $1 AND split = $2 ORDER BY id ASC;`, uid, split)
	if err != nil {
		return nil, errors.New("listing muscle groups error: " + err.Error())
	}
	groups, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.New("scanning muscle groups error: " + err.Error())
	}
	return groups, nil
}

func (er *ExercisesRepository) UpdateTargetWeight(ctx context.Context, id int64, uid uuid.UUID, weight float64) error {
	ct, err := er.conn.Exec(ctx, `UPDATE exercises SET target_weight = $1, updated_at = now() WHERE id = $2 AND user_id = $3;`, weight, id, uid)
	if err != nil {
		return errors.New("updating target weight error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}

func (er *ExercisesRepository) Delete(ctx context.Context, id int64, uid uuid.UUID) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM exercises WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return errorvalues.ErrExerciseInUse
		}
		return errors.New("deleting exercise error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}
