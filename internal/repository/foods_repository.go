package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/pkg/entity"
)

type FoodsRepository struct {
	conn PgConnection
}

func NewFoodsRepo(conn PgConnection) *FoodsRepository {
	return &FoodsRepository{
		conn: conn,
	}
}

// escapeLike makes query safe to embed into an ILIKE pattern.
func escapeLike(query string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
}

func (fr *FoodsRepository) Search(ctx context.Context, uid uuid.UUID, query string, limit int) ([]entity.Food, error) {
	rows, err := fr.conn.Query(ctx, `SELECT id, user_id, name, food_group, kcal, protein, carbs, fat, portion FROM foods
WHERE (user_id IS NULL OR user_id = $1) AND name ILIKE $2
ORDER BY (user_id IS NULL) ASC, name ASC LIMIT $3;`, uid, "%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, errors.New("searching foods error: " + err.Error())
	}
	defer rows.Close()
	foods := make([]entity.Food, 0)
	for rows.Next() {
		var f entity.Food
		err = rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Group, &f.Kcal, &f.Protein, &f.Carbs, &f.Fat, &f.Portion)
		if err != nil {
			return nil, errors.New("scanning food error: " + err.Error())
		}
		foods = append(foods, f)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("searching foods error: " + err.Error())
	}
	return foods, nil
}

func (fr *FoodsRepository) Create(ctx context.Context, food *entity.Food) (int64, error) {
	var id int64
	err := fr.conn.QueryRow(ctx, `INSERT INTO foods (user_id, name, food_group, kcal, protein, carbs, fat, portion)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		food.UserID, food.Name, food.Group, food.Kcal, food.Protein, food.Carbs, food.Fat, food.Portion,
	).Scan(&id)
	if err != nil {
		switch pgErrCode(err) {
		case uniqueViolation:
			return 0, errorvalues.ErrFoodExists
		case foreignKeyViolation:
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("creating food error: " + err.Error())
	}
	return id, nil
}

func (fr *FoodsRepository) SeedSystem(ctx context.Context, foods []entity.Food) (int, error) {
	tx, err := fr.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	inserted := 0
	for _, f := range foods {
		ct, err := tx.Exec(ctx, `INSERT INTO foods (user_id, name, food_group, kcal, protein, carbs, fat, portion)
VALUES (NULL, $1, $2, $3, $4, $5, $6, $7) ON CONFLICT ON CONSTRAINT foods_user_name_unique DO NOTHING;`,
			f.Name, f.Group, f.Kcal, f.Protein, f.Carbs, f.Fat, f.Portion,
		)
		if err != nil {
			return 0, errors.New("seeding food error: " + err.Error())
		}
		inserted += int(ct.RowsAffected())
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, errors.New("committing foods error: " + err.Error())
	}
	return inserted, nil
}
