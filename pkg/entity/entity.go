package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

type UserSettings struct {
	UserID           uuid.UUID `json:"uid"`
	WorkoutSplit     string    `json:"workout_split"`
	RestTimeDefault  int       `json:"rest_time_default"`
	WaterGoal        int       `json:"water_goal"`
	AIContext        string    `json:"ai_context"`
	BiometricEnabled bool      `json:"biometric_enabled"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Exercise struct {
	ID             int64     `json:"id"`
	UserID         uuid.UUID `json:"uid"`
	Name           string    `json:"name"`
	MuscleGroup    string    `json:"muscle_group,omitempty"`
	Split          string    `json:"split"`
	IsCustom       bool      `json:"is_custom"`
	APIID          string    `json:"api_id,omitempty"`
	Equipment      string    `json:"equipment,omitempty"`
	GifURL         string    `json:"gif_url,omitempty"`
	TargetSets     int       `json:"target_sets"`
	TargetReps     int       `json:"target_reps"`
	TargetWeight   float64   `json:"target_weight"`
	TargetRestTime int       `json:"target_rest_time"`
	Order          int       `json:"order"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// WorkoutLog is one completed set. Rows are append-only.
type WorkoutLog struct {
	ID          int64      `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	ExerciseID  int64      `json:"exercise_id"`
	Weight      float64    `json:"weight"`
	Reps        int        `json:"reps"`
	RestTime    int        `json:"rest_time"`
	Notes       string     `json:"notes,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// WorkoutLogView is a log joined with the exercise it belongs to.
type WorkoutLogView struct {
	WorkoutLog
	ExerciseName string `json:"exercise_name"`
	Split        string `json:"split"`
}

type MealLog struct {
	ID          int64      `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	Date        string     `json:"date"`
	MealName    string     `json:"meal_name"`
	Items       []FoodItem `json:"items"`
	IsCompleted bool       `json:"is_completed"`
	Notes       string     `json:"notes,omitempty"`
}

// Logged reports whether the meal holds real consumption. Rows without items are drafts.
func (m *MealLog) Logged() bool {
	return len(m.Items) > 0
}

type Substitution struct {
	Item       string `json:"item"`
	CanReplace string `json:"canReplace"`
	Protein    Grams  `json:"protein"`
	Carbs      Grams  `json:"carbs"`
	Fat        Grams  `json:"fat"`
}

type DietPlanItem struct {
	ID             int64          `json:"id"`
	UserID         uuid.UUID      `json:"uid"`
	MealName       string         `json:"meal_name"`
	ScheduledTime  string         `json:"scheduled_time,omitempty"`
	TargetProtein  int            `json:"target_protein"`
	TargetCarbs    int            `json:"target_carbs"`
	TargetFat      int            `json:"target_fat"`
	TargetCalories int            `json:"target_calories"`
	Suggestions    string         `json:"suggestions,omitempty"`
	Items          []FoodItem     `json:"items"`
	Substitutions  []Substitution `json:"substitutions"`
	Order          int            `json:"order"`
}

// Food is a catalog row. UserID is nil for the shared system catalog.
type Food struct {
	ID      int64      `json:"id"`
	UserID  *uuid.UUID `json:"uid,omitempty"`
	Name    string     `json:"name"`
	Group   string     `json:"group,omitempty"`
	Kcal    int        `json:"kcal"`
	Protein float64    `json:"protein"`
	Carbs   float64    `json:"carbs"`
	Fat     float64    `json:"fat"`
	Portion string     `json:"portion"`
}

type HealthStat struct {
	ID         int64     `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	Type       string    `json:"type"`
	Value      string    `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}

const (
	StatWeight     = "weight"
	StatWater      = "water"
	StatSleepHours = "sleep_hours"
	StatSteps      = "steps"
	StatWaistCm    = "waist_cm"
	StatArmCm      = "arm_cm"
	StatPhotoURL   = "photo_url"
)

type WaterDay struct {
	Date    string `json:"date"`
	TotalMl int    `json:"total_ml"`
}

type BodyComposition struct {
	ID             int64     `json:"id"`
	UserID         uuid.UUID `json:"uid"`
	WeightKg       float64   `json:"weight_kg"`
	BodyFatPct     float64   `json:"body_fat_pct"`
	MuscleMassKg   float64   `json:"muscle_mass_kg"`
	VisceralFat    float64   `json:"visceral_fat"`
	BasalMetabolic int       `json:"basal_metabolic_rate"`
	BodyWaterPct   float64   `json:"body_water_pct"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type MacroTotals struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

type NextWorkout struct {
	Label       string `json:"next_label"`
	DisplayName string `json:"display_name"`
}

type Reminder struct {
	TimeOfDay  string `json:"time_of_day"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Identifier string `json:"identifier"`
}

type DayHistory struct {
	Date          string           `json:"date"`
	Meals         []MealLog        `json:"meals"`
	MealsLogged   int              `json:"meals_logged"`
	MealsComplete int              `json:"meals_completed"`
	Macros        MacroTotals      `json:"macros"`
	Workout       []WorkoutLogView `json:"workout"`
}

// FoodMatch is a candidate returned by the nutrition lookup.
type FoodMatch struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Unit     string  `json:"unit"`
	Image    string  `json:"image,omitempty"`
}

// ExerciseMatch is a candidate returned by the exercise lookup.
type ExerciseMatch struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TargetMuscle string `json:"targetMuscle"`
	Equipment    string `json:"equipment"`
	GifURL       string `json:"gifUrl"`
}

// Result is the envelope for operations that report validation problems instead of failing.
type Result[T any] struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    *T     `json:"data,omitempty"`
}
