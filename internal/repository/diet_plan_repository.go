package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/pkg/entity"
)

type DietPlanRepository struct {
	conn PgConnection
}

func NewDietPlanRepo(conn PgConnection) *DietPlanRepository {
	return &DietPlanRepository{
		conn: conn,
	}
}

func encodePlanItem(item *entity.DietPlanItem) ([]byte, []byte, error) {
	items, err := encodeItems(item.Items)
	if err != nil {
		return nil, nil, err
	}
	subs := item.Substitutions
	if subs == nil {
		subs = []entity.Substitution{}
	}
	substitutions, err := sonic.Marshal(subs)
	if err != nil {
		return nil, nil, err
	}
	return items, substitutions, nil
}

func (dr *DietPlanRepository) List(ctx context.Context, uid uuid.UUID) ([]entity.DietPlanItem, error) {
	rows, err := dr.conn.Query(ctx, `SELECT id, user_id, meal_name, scheduled_time, target_protein, target_carbs, target_fat, target_calories,
	suggestions, items, substitutions, sort_order
FROM diet_plan WHERE user_id = $1 ORDER BY sort_order ASC, id ASC;`, uid)
	if err != nil {
		return nil, errors.New("listing diet plan error: " + err.Error())
	}
	defer rows.Close()
	plan := make([]entity.DietPlanItem, 0)
	for rows.Next() {
		var (
			p                    entity.DietPlanItem
			items, substitutions []byte
		)
		err = rows.Scan(&p.ID, &p.UserID, &p.MealName, &p.ScheduledTime, &p.TargetProtein, &p.TargetCarbs, &p.TargetFat,
			&p.TargetCalories, &p.Suggestions, &items, &substitutions, &p.Order)
		if err != nil {
			return nil, errors.New("scanning diet plan item error: " + err.Error())
		}
		p.Items = make([]entity.FoodItem, 0)
		p.Substitutions = make([]entity.Substitution, 0)
		if err = sonic.Unmarshal(items, &p.Items); err != nil {
			return nil, errors.New("decoding diet plan items error: " + err.Error())
		}
		if err = sonic.Unmarshal(substitutions, &p.Substitutions); err != nil {
			return nil, errors.New("decoding diet plan substitutions error: " + err.Error())
		}
		plan = append(plan, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("listing diet plan error: " + err.Error())
	}
	return plan, nil
}

const insertPlanItemQuery = `INSERT INTO diet_plan (user_id, meal_name, scheduled_time, target_protein, target_carbs, target_fat,
	target_calories, suggestions, items, substitutions, sort_order)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;`

func (dr *DietPlanRepository) Create(ctx context.Context, item *entity.DietPlanItem) (int64, error) {
	items, substitutions, err := encodePlanItem(item)
	if err != nil {
		return 0, errors.New("encoding diet plan item error: " + err.Error())
	}
	var id int64
	err = dr.conn.QueryRow(ctx, insertPlanItemQuery,
		item.UserID, item.MealName, item.ScheduledTime, item.TargetProtein, item.TargetCarbs, item.TargetFat,
		item.TargetCalories, item.Suggestions, items, substitutions, item.Order,
	).Scan(&id)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("creating diet plan item error: " + err.Error())
	}
	return id, nil
}

func (dr *DietPlanRepository) Update(ctx context.Context, item *entity.DietPlanItem) error {
	items, substitutions, err := encodePlanItem(item)
	if err != nil {
		return errors.New("encoding diet plan item error: " + err.Error())
	}
	ct, err := dr.conn.Exec(ctx, `UPDATE diet_plan SET meal_name = $1, scheduled_time = $2, target_protein = $3, target_carbs = $4,
	target_fat = $5, target_calories = $6, suggestions = $7, items = $8, substitutions = $9, sort_order = $10
WHERE id = $11 AND user_id = $12;`,
		item.MealName, item.ScheduledTime, item.TargetProtein, item.TargetCarbs, item.TargetFat, item.TargetCalories,
		item.Suggestions, items, substitutions, item.Order, item.ID, item.UserID,
	)
	if err != nil {
		return errors.New("updating diet plan item error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPlanItemNotFound
	}
	return nil
}

func (dr *DietPlanRepository) Delete(ctx context.Context, id int64, uid uuid.UUID) error {
	ct, err := dr.conn.Exec(ctx, `DELETE FROM diet_plan WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting diet plan item error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrPlanItemNotFound
	}
	return nil
}

func (dr *DietPlanRepository) ReplaceAll(ctx context.Context, uid uuid.UUID, plan []entity.DietPlanItem) error {
	tx, err := dr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	if _, err = tx.Exec(ctx, `DELETE FROM diet_plan WHERE user_id = $1;`, uid); err != nil {
		return errors.New("clearing diet plan error: " + err.Error())
	}
	for i := range plan {
		item := &plan[i]
		items, substitutions, err := encodePlanItem(item)
		if err != nil {
			return errors.New("encoding diet plan item error: " + err.Error())
		}
		var id int64
		err = tx.QueryRow(ctx, insertPlanItemQuery,
			uid, item.MealName, item.ScheduledTime, item.TargetProtein, item.TargetCarbs, item.TargetFat,
			item.TargetCalories, item.Suggestions, items, substitutions, item.Order,
		).Scan(&id)
		if err != nil {
			if pgErrCode(err) == foreignKeyViolation {
				return errorvalues.ErrUserNotFound
			}
			return errors.New("inserting diet plan item error: " + err.Error())
		}
		item.ID = id
		item.UserID = uid
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing diet plan error: " + err.Error())
	}
	return nil
}
