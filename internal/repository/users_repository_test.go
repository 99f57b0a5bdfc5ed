package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	user := entity.User{
		Name:         gofakeit.Username(),
		PasswordHash: "test_password_hash",
	}
	uid := uuid.New()
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	insertUser := regexp.QuoteMeta(`INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id, created_at;`)
	insertSettings := regexp.QuoteMeta(`INSERT INTO user_settings (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertUser).WithArgs(user.Name, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uid, createdAt))
		conn.ExpectExec(insertSettings).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		u := user
		require.NoError(t, repo.Create(ctx, &u))
		assert.Equal(t, uid, u.ID)
		assert.Equal(t, createdAt, u.CreatedAt)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertUser).WithArgs(user.Name, user.PasswordHash).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		conn.ExpectRollback()
		u := user
		assert.ErrorIs(t, repo.Create(ctx, &u), errorvalues.ErrUserExists)
	})
	t.Run("settings insert fails", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectQuery(insertUser).WithArgs(user.Name, user.PasswordHash).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(uid, createdAt))
		conn.ExpectExec(insertSettings).WithArgs(uid).WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		u := user
		err := repo.Create(ctx, &u)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	user := entity.User{
		ID:           uuid.New(),
		Name:         gofakeit.Username(),
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	byName := regexp.QuoteMeta(`SELECT id, name, password_hash, created_at FROM users WHERE name = $1;`)
	byID := regexp.QuoteMeta(`SELECT id, name, password_hash, created_at FROM users WHERE id = $1;`)
	columns := []string{"id", "name", "password_hash", "created_at"}
	t.Run("found by name", func(t *testing.T) {
		conn.ExpectQuery(byName).
			WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(user.ID, user.Name, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByName(ctx, user.Name)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("found by id", func(t *testing.T) {
		conn.ExpectQuery(byID).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(user.ID, user.Name, user.PasswordHash, user.CreatedAt))
		result, err := repo.FindByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(byID).
			WithArgs(user.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(byName).
			WithArgs(user.Name).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, user.Name)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpdatePassword(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`UPDATE users SET password_hash = $1 WHERE id = $2;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("new_hash", uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdatePassword(ctx, uid, "new_hash"))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("new_hash", uid).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.UpdatePassword(ctx, uid, "new_hash"), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs("new_hash", uid).
			WillReturnError(errors.New("db error"))
		err := repo.UpdatePassword(ctx, uid, "new_hash")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, uid))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, uid), errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
