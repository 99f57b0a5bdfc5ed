package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("myfit"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	require.NoError(t, err)
	conn, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	require.NoError(t, goose.Up(conn, "../../migrations"))
	conn.Close()

	pool, err := pgxpool.New(context.Background(), connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresRoundTrip(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	users := repository.NewUsersRepo(pool)
	settings := repository.NewSettingsRepo(pool)
	exercises := repository.NewExercisesRepo(pool)
	logs := repository.NewWorkoutLogsRepo(pool)
	meals := repository.NewMealsRepo(pool)
	foods := repository.NewFoodsRepo(pool)

	created := &entity.User{Name: "marcelo", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, created))
	user, err := users.FindByName(ctx, "marcelo")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	t.Run("settings defaults", func(t *testing.T) {
		_, err := settings.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrSettingsNotFound)
		s, err := settings.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "ABC", s.WorkoutSplit)
		s, err = settings.CreateDefault(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "ABC", s.WorkoutSplit)
		assert.Equal(t, 60, s.RestTimeDefault)
		assert.Equal(t, 3000, s.WaterGoal)
		require.NoError(t, settings.UpdateSplit(ctx, user.ID, "AB"))
		s, err = settings.CreateDefault(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "AB", s.WorkoutSplit)
	})

	t.Run("last split follows latest log", func(t *testing.T) {
		_, err := logs.LastSplit(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrNoWorkoutLogs)

		chest, err := exercises.Upsert(ctx, &entity.Exercise{UserID: user.ID, Name: "Supino Reto", MuscleGroup: "Peito", Split: "A", TargetSets: 3, TargetReps: 12, TargetRestTime: 60})
		require.NoError(t, err)
		back, err := exercises.Upsert(ctx, &entity.Exercise{UserID: user.ID, Name: "Remada Baixa", Split: "B", TargetSets: 3, TargetReps: 12, TargetRestTime: 60})
		require.NoError(t, err)

		_, err = logs.Create(ctx, &entity.WorkoutLog{UserID: user.ID, ExerciseID: chest, Weight: 60, Reps: 10})
		require.NoError(t, err)
		_, err = logs.Create(ctx, &entity.WorkoutLog{UserID: user.ID, ExerciseID: back, Weight: 50, Reps: 12})
		require.NoError(t, err)

		split, err := logs.LastSplit(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "B", split)

		groups, err := exercises.MuscleGroupsBySplit(ctx, user.ID, "B")
		require.NoError(t, err)
		assert.Equal(t, []string{""}, groups)

		assert.ErrorIs(t, exercises.Delete(ctx, chest, user.ID), errorvalues.ErrExerciseInUse)
		_, err = logs.Create(ctx, &entity.WorkoutLog{UserID: uuid.New(), ExerciseID: chest, Reps: 1})
		assert.Error(t, err)
	})

	t.Run("completed meals by date", func(t *testing.T) {
		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		_, err := meals.Create(ctx, &entity.MealLog{UserID: user.ID, Date: "2026-03-10", MealName: "Café", IsCompleted: true,
			Items: []entity.FoodItem{{Name: "Ovo", Protein: 12, Fat: 10}}})
		require.NoError(t, err)
		_, err = meals.Create(ctx, &entity.MealLog{UserID: user.ID, Date: "2026-03-10", MealName: "Almoço"})
		require.NoError(t, err)

		completed, err := meals.ListCompletedByDate(ctx, user.ID, day)
		require.NoError(t, err)
		require.Len(t, completed, 1)
		assert.Equal(t, "2026-03-10", completed[0].Date)
		assert.Equal(t, entity.Grams(12), completed[0].Items[0].Protein)

		all, err := meals.ListByDate(ctx, user.ID, day)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("food catalog uniqueness", func(t *testing.T) {
		seed := []entity.Food{{Name: "Arroz branco", Kcal: 128, Carbs: 28.1, Portion: "100g"}}
		inserted, err := foods.SeedSystem(ctx, seed)
		require.NoError(t, err)
		assert.Equal(t, 1, inserted)
		inserted, err = foods.SeedSystem(ctx, seed)
		require.NoError(t, err)
		assert.Equal(t, 0, inserted)

		_, err = foods.Create(ctx, &entity.Food{UserID: &user.ID, Name: "Arroz branco", Portion: "100g"})
		require.NoError(t, err)
		_, err = foods.Create(ctx, &entity.Food{UserID: &user.ID, Name: "Arroz branco", Portion: "100g"})
		assert.ErrorIs(t, err, errorvalues.ErrFoodExists)

		found, err := foods.Search(ctx, user.ID, "arroz", 15)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.NotNil(t, found[0].UserID)
		assert.Nil(t, found[1].UserID)
	})
}
