package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/pkg/entity"
)

const selectUserQuery = `SELECT id, name, password_hash, created_at FROM users `

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

// Create inserts the user together with its settings row, so a fresh account
// starts with the default split, rest time and water goal. ID and CreatedAt are filled in.
func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	tx, err := ur.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id, created_at;`,
		user.Name, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pgErrCode(err) == uniqueViolation {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	if _, err = tx.Exec(ctx, `INSERT INTO user_settings (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, user.ID); err != nil {
		return errors.New("creating user settings error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing user error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return ur.findOne(ctx, selectUserQuery+`WHERE name = $1;`, name)
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, selectUserQuery+`WHERE id = $1;`, uid)
}

func (ur *UsersRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, query, arg)
	if err := row.Scan(&user.ID, &user.Name, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2;`, passwordHash, uid)
	if err != nil {
		return errors.New("updating password error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

// Delete removes the user. Settings, exercises, logs, meals, plan, custom foods
// and stats go with it through ON DELETE CASCADE.
func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
