package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/pkg/bizday"
	"github.com/limbo/myfit/pkg/entity"
)

const mealColumns = `id, user_id, date, meal_name, items, is_completed, notes`

type MealsRepository struct {
	conn PgConnection
}

func NewMealsRepo(conn PgConnection) *MealsRepository {
	return &MealsRepository{
		conn: conn,
	}
}

func encodeItems(items []entity.FoodItem) ([]byte, error) {
	if items == nil {
		items = []entity.FoodItem{}
	}
	return sonic.Marshal(items)
}

func scanMeals(rows pgx.Rows) ([]entity.MealLog, error) {
	defer rows.Close()
	meals := make([]entity.MealLog, 0)
	for rows.Next() {
		var (
			m     entity.MealLog
			date  time.Time
			items []byte
		)
		if err := rows.Scan(&m.ID, &m.UserID, &date, &m.MealName, &items, &m.IsCompleted, &m.Notes); err != nil {
			return nil, errors.New("scanning meal error: " + err.Error())
		}
		m.Date = date.Format(bizday.Layout)
		m.Items = make([]entity.FoodItem, 0)
		if len(items) > 0 {
			// items decode one by one and never fail; only a payload that is not an array reads as empty
			if err := sonic.Unmarshal(items, &m.Items); err != nil {
				m.Items = make([]entity.FoodItem, 0)
			}
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("listing meals error: " + err.Error())
	}
	return meals, nil
}

func (mr *MealsRepository) Create(ctx context.Context, meal *entity.MealLog) (int64, error) {
	date, err := bizday.Parse(meal.Date)
	if err != nil {
		return 0, errorvalues.ErrInvalidDate
	}
	items, err := encodeItems(meal.Items)
	if err != nil {
		return 0, errors.New("encoding meal items error: " + err.Error())
	}
	var id int64
	err = mr.conn.QueryRow(ctx, `INSERT INTO meal_logs (user_id, date, meal_name, items, is_completed, notes)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		meal.UserID, date, meal.MealName, items, meal.IsCompleted, meal.Notes,
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("creating meal error: " + err.Error())
	}
	return id, nil
}

func (mr *MealsRepository) Update(ctx context.Context, meal *entity.MealLog) error {
	items, err := encodeItems(meal.Items)
	if err != nil {
		return errors.New("encoding meal items error: " + err.Error())
	}
	ct, err := mr.conn.Exec(ctx, `UPDATE meal_logs SET meal_name = $1, items = $2, is_completed = $3, notes = $4 WHERE id = $5 AND user_id = $6;`,
		meal.MealName, items, meal.IsCompleted, meal.Notes, meal.ID, meal.UserID,
	)
	if err != nil {
		return errors.New("updating meal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealNotFound
	}
	return nil
}

func (mr *MealsRepository) ListByDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]entity.MealLog, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+mealColumns+` FROM meal_logs WHERE user_id = $1 AND date = $2 ORDER BY id ASC;`, uid, date)
	if err != nil {
		return nil, errors.New("listing meals by date error: " + err.Error())
	}
	return scanMeals(rows)
}

func (mr *MealsRepository) ListCompletedByDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]entity.MealLog, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+mealColumns+` FROM meal_logs WHERE user_id = $1 AND date = $2 AND is_completed ORDER BY id ASC;`, uid, date)
	if err != nil {
		return nil, errors.New("listing completed meals error: " + err.Error())
	}
	return scanMeals(rows)
}

func (mr *MealsRepository) ListBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.MealLog, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+mealColumns+` FROM meal_logs WHERE user_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date ASC, id ASC;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing meals error: " + err.Error())
	}
	return scanMeals(rows)
}

func (mr *MealsRepository) SetCompleted(ctx context.Context, id int64, uid uuid.UUID, completed bool) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE meal_logs SET is_completed = $1 WHERE id = $2 AND user_id = $3;`, completed, id, uid)
	if err != nil {
		return errors.New("updating meal completion error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealNotFound
	}
	return nil
}

func (mr *MealsRepository) Delete(ctx context.Context, id int64, uid uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM meal_logs WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting meal error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMealNotFound
	}
	return nil
}
