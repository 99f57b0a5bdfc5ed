package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/myfit/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user with default settings. Fills user's ID and CreatedAt
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	UpdatePassword(ctx context.Context, uid uuid.UUID, passwordHash string) error
	// Deletes user and, by cascade, everything the user owns
	Delete(ctx context.Context, uid uuid.UUID) error
}

type SettingsRepositoryI interface {
	// Returns settings row of the user. ErrSettingsNotFound if it was never created
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	// Inserts row with column defaults. Existing row is returned untouched
	CreateDefault(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	UpdateSplit(ctx context.Context, uid uuid.UUID, split string) error
	UpdateRestTime(ctx context.Context, uid uuid.UUID, seconds int) error
	UpdateWaterGoal(ctx context.Context, uid uuid.UUID, ml int) error
	UpdateAIContext(ctx context.Context, uid uuid.UUID, aiContext string) error
	UpdateBiometric(ctx context.Context, uid uuid.UUID, enabled bool) error
}

type ExercisesRepositoryI interface {
	// Inserts exercise or updates split and targets of the one with the same name
	Upsert(ctx context.Context, exercise *entity.Exercise) (int64, error)
	// Inserts all exercises in one transaction, skipping names the user already has. Returns inserted count
	InsertMany(ctx context.Context, exercises []entity.Exercise) (int, error)
	GetByID(ctx context.Context, id int64) (*entity.Exercise, error)
	// Lists user's exercises in insertion order. Empty split means all splits
	ListByUser(ctx context.Context, uid uuid.UUID, split string) ([]entity.Exercise, error)
	// Muscle groups of exercises tagged with split, in insertion order. Nulls are returned as empty strings
	MuscleGroupsBySplit(ctx context.Context, uid uuid.UUID, split string) ([]string, error)
	UpdateTargetWeight(ctx context.Context, id int64, uid uuid.UUID, weight float64) error
	// Deletes exercise. ErrExerciseInUse when logs reference it
	Delete(ctx context.Context, id int64, uid uuid.UUID) error
}

type WorkoutLogsRepositoryI interface {
	Create(ctx context.Context, log *entity.WorkoutLog) (int64, error)
	// Latest logs of one exercise, newest first
	RecentByExercise(ctx context.Context, uid uuid.UUID, exerciseID int64, limit int) ([]entity.WorkoutLog, error)
	// Split label of the exercise of the most recently created log. ErrNoWorkoutLogs if there are none
	LastSplit(ctx context.Context, uid uuid.UUID) (string, error)
	// Logs created in [from, to) joined with their exercises, oldest first
	ListBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.WorkoutLogView, error)
}

type MealsRepositoryI interface {
	Create(ctx context.Context, meal *entity.MealLog) (int64, error)
	// Updates name, items, completion and notes of the meal owned by meal.UserID
	Update(ctx context.Context, meal *entity.MealLog) error
	ListByDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]entity.MealLog, error)
	ListCompletedByDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]entity.MealLog, error)
	// Meals with date in [from, to], ordered by date
	ListBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.MealLog, error)
	SetCompleted(ctx context.Context, id int64, uid uuid.UUID, completed bool) error
	Delete(ctx context.Context, id int64, uid uuid.UUID) error
}

type DietPlanRepositoryI interface {
	// Plan items ordered by sort order
	List(ctx context.Context, uid uuid.UUID) ([]entity.DietPlanItem, error)
	Create(ctx context.Context, item *entity.DietPlanItem) (int64, error)
	Update(ctx context.Context, item *entity.DietPlanItem) error
	Delete(ctx context.Context, id int64, uid uuid.UUID) error
	// Drops the whole plan of the user and writes items instead, in one transaction
	ReplaceAll(ctx context.Context, uid uuid.UUID, items []entity.DietPlanItem) error
}

type FoodsRepositoryI interface {
	// Case-insensitive substring search over the system catalog and the user's own foods
	Search(ctx context.Context, uid uuid.UUID, query string, limit int) ([]entity.Food, error)
	// Creates custom food. ErrFoodExists on duplicate name
	Create(ctx context.Context, food *entity.Food) (int64, error)
	// Inserts system catalog rows, skipping existing names. Returns inserted count
	SeedSystem(ctx context.Context, foods []entity.Food) (int, error)
}

type HealthStatsRepositoryI interface {
	Create(ctx context.Context, stat *entity.HealthStat) (int64, error)
	// Stats of given types recorded in [from, to), newest first
	ListBetween(ctx context.Context, uid uuid.UUID, types []string, from, to time.Time) ([]entity.HealthStat, error)
	// Most recent stat of every type
	Latest(ctx context.Context, uid uuid.UUID) ([]entity.HealthStat, error)
	// Replaces value of the stat of the same type recorded in [from, to), or inserts a new one
	UpsertInRange(ctx context.Context, stat *entity.HealthStat, from, to time.Time) error
}

type BodyCompositionRepositoryI interface {
	Create(ctx context.Context, bc *entity.BodyComposition) (int64, error)
	// Readings newest first
	List(ctx context.Context, uid uuid.UUID, limit int) ([]entity.BodyComposition, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
