package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/myfit/internal/llm"
	"github.com/limbo/myfit/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type ChangePasswordRequest struct {
	OldPassword string `validate:"required"`
	NewPassword string `validate:"required,min=8,max=72,nefield=OldPassword"`
}

type AddExerciseRequest struct {
	Name           string  `validate:"required,max=120"`
	MuscleGroup    string  `validate:"max=60"`
	Split          string  `validate:"required,split_sequence,len=1"`
	APIID          string  `validate:"max=32"`
	Equipment      string  `validate:"max=60"`
	GifURL         string  `validate:"omitempty,url"`
	TargetSets     int     `validate:"gte=0,lte=20"`
	TargetReps     int     `validate:"gte=0,lte=100"`
	TargetWeight   float64 `validate:"gte=0,lte=1000"`
	TargetRestTime int     `validate:"gte=0,lte=900"`
}

type LogSetRequest struct {
	ExerciseID  int64   `validate:"required,gt=0"`
	Weight      float64 `validate:"gte=0,lte=1000"`
	Reps        int     `validate:"gte=0,lte=1000"`
	RestTime    int     `validate:"gte=0,lte=3600"`
	Notes       string  `validate:"max=500"`
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// SaveMealRequest updates the meal when ID is set, creates it otherwise.
// Empty Date means today.
type SaveMealRequest struct {
	ID          int64
	Date        string `validate:"omitempty,datetime=2006-01-02"`
	MealName    string `validate:"required,max=80"`
	Items       []entity.FoodItem
	IsCompleted bool
	Notes       string `validate:"max=500"`
}

type PlanItemRequest struct {
	ID             int64
	MealName       string `validate:"required,max=80"`
	ScheduledTime  string `validate:"omitempty,hhmm"`
	TargetProtein  int    `validate:"gte=0"`
	TargetCarbs    int    `validate:"gte=0"`
	TargetFat      int    `validate:"gte=0"`
	TargetCalories int    `validate:"gte=0"`
	Suggestions    string `validate:"max=1000"`
	Items          []entity.FoodItem
	Substitutions  []entity.Substitution
	Order          int `validate:"gte=0"`
}

type CustomFoodRequest struct {
	Name    string  `validate:"required,min=2,max=120"`
	Group   string  `validate:"max=60"`
	Kcal    int     `validate:"gte=0,lte=2000"`
	Protein float64 `validate:"gte=0,lte=100"`
	Carbs   float64 `validate:"gte=0,lte=100"`
	Fat     float64 `validate:"gte=0,lte=100"`
	Portion string  `validate:"max=40"`
}

type SyncEntry struct {
	Type  string `validate:"required,oneof=sleep_hours steps"`
	Value string `validate:"required,numeric"`
	Date  string `validate:"required,datetime=2006-01-02"`
}

type StatRequest struct {
	Type  string `validate:"required,oneof=weight water sleep_hours steps waist_cm arm_cm photo_url"`
	Value string `validate:"required,max=2048"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	// Checks the old password before storing the new one
	ChangePassword(ctx context.Context, id uuid.UUID, req *ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type WorkoutServiceI interface {
	// Returns user's settings, creating default row on first access
	GetSettings(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error)
	UpdateSplit(ctx context.Context, uid uuid.UUID, split string) error
	UpdateRestTime(ctx context.Context, uid uuid.UUID, seconds int) error
	// Empty split lists every exercise
	ListExercises(ctx context.Context, uid uuid.UUID, split string) ([]entity.Exercise, error)
	AddExercise(ctx context.Context, uid uuid.UUID, req *AddExerciseRequest) (*entity.Exercise, error)
	UpdateTargetWeight(ctx context.Context, uid uuid.UUID, exerciseID int64, weight float64) error
	DeleteExercise(ctx context.Context, uid uuid.UUID, exerciseID int64) error
	// Copies the built-in catalog into user's exercises over the configured split. Returns inserted count
	ImportCatalog(ctx context.Context, uid uuid.UUID) (int, error)
	LogSet(ctx context.Context, uid uuid.UUID, req *LogSetRequest) (int64, error)
	RecentLogs(ctx context.Context, uid uuid.UUID, exerciseID int64) ([]entity.WorkoutLog, error)
	// Never fails: retrieval problems give the default suggestion
	NextWorkout(ctx context.Context, uid uuid.UUID) entity.NextWorkout
}

type DietServiceI interface {
	// Totals of completed meals of the day. Zero totals on failure
	DayMacros(ctx context.Context, uid uuid.UUID, day string) entity.MacroTotals
	TodayMacros(ctx context.Context, uid uuid.UUID) entity.MacroTotals
	// Empty day means today
	MealsByDate(ctx context.Context, uid uuid.UUID, day string) ([]entity.MealLog, error)
	SaveMeal(ctx context.Context, uid uuid.UUID, req *SaveMealRequest) (int64, error)
	SetMealCompleted(ctx context.Context, uid uuid.UUID, mealID int64, completed bool) error
	DeleteMeal(ctx context.Context, uid uuid.UUID, mealID int64) error
	DayHistory(ctx context.Context, uid uuid.UUID, day string) (*entity.DayHistory, error)
	ListPlan(ctx context.Context, uid uuid.UUID) ([]entity.DietPlanItem, error)
	SavePlanItem(ctx context.Context, uid uuid.UUID, req *PlanItemRequest) (int64, error)
	DeletePlanItem(ctx context.Context, uid uuid.UUID, itemID int64) error
	ReplacePlan(ctx context.Context, uid uuid.UUID, items []PlanItemRequest) error
	// Full desired set of daily reminders built from the plan
	MealReminders(ctx context.Context, uid uuid.UUID) ([]entity.Reminder, error)
	CreateCustomFood(ctx context.Context, uid uuid.UUID, req *CustomFoodRequest) entity.Result[entity.Food]
}

type HealthServiceI interface {
	AddStat(ctx context.Context, uid uuid.UUID, req *StatRequest) error
	AddWater(ctx context.Context, uid uuid.UUID, ml int) error
	TodayWater(ctx context.Context, uid uuid.UUID) (int, error)
	WaterHistory(ctx context.Context, uid uuid.UUID, days int) ([]entity.WaterDay, error)
	WaterGoal(ctx context.Context, uid uuid.UUID) int
	UpdateWaterGoal(ctx context.Context, uid uuid.UUID, ml int) error
	// Most recent value of every stat type
	LatestStats(ctx context.Context, uid uuid.UUID) (map[string]string, error)
	AIContext(ctx context.Context, uid uuid.UUID) string
	UpdateAIContext(ctx context.Context, uid uuid.UUID, aiContext string) error
	UpdateBiometric(ctx context.Context, uid uuid.UUID, enabled bool) error
	// Stores one value per type and day, replacing the previous one
	Sync(ctx context.Context, uid uuid.UUID, entries []SyncEntry) error
	SyncHistory(ctx context.Context, uid uuid.UUID, days int) ([]entity.HealthStat, error)
}

type CoachServiceI interface {
	// Always returns text to show, a fallback message when the model can't answer
	WeeklyInsight(ctx context.Context, uid uuid.UUID) string
	AnalyzeBioimpedance(ctx context.Context, uid uuid.UUID, image []byte, mime string) entity.Result[entity.BodyComposition]
	BodyCompositionHistory(ctx context.Context, uid uuid.UUID, limit int) ([]entity.BodyComposition, error)
}

type LookupServiceI interface {
	// Empty list on short query or any provider failure
	SearchFoods(ctx context.Context, uid uuid.UUID, query string) []entity.FoodMatch
	SearchExercises(ctx context.Context, query string) []entity.ExerciseMatch
	ExerciseImage(ctx context.Context, exerciseID string) ([]byte, string, error)
}

// Generator is the generative model used for coaching and lookups.
type Generator interface {
	Generate(ctx context.Context, req llm.Request) (string, error)
}

type FoodProvider interface {
	SearchFoods(ctx context.Context, query string) ([]entity.FoodMatch, error)
}

type ExerciseProvider interface {
	SearchByName(ctx context.Context, term string) ([]entity.ExerciseMatch, error)
	Image(ctx context.Context, exerciseID string) ([]byte, string, error)
}

type LookupCache interface {
	Get(key []byte, out any) bool
	Set(key []byte, value any) error
}
