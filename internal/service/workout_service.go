package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/entity"
)

const (
	defaultTargetSets     = 3
	defaultTargetReps     = 12
	defaultTargetRestTime = 60
	recentLogsLimit       = 5
)

type WorkoutService struct {
	settings  repository.SettingsRepositoryI
	exercises repository.ExercisesRepositoryI
	logs      repository.WorkoutLogsRepositoryI
	logger    *slog.Logger
}

func NewWorkoutService(settings repository.SettingsRepositoryI, exercises repository.ExercisesRepositoryI,
	logs repository.WorkoutLogsRepositoryI, logger *slog.Logger) *WorkoutService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkoutService{
		settings:  settings,
		exercises: exercises,
		logs:      logs,
		logger:    logger.With(slog.String("service", "workout")),
	}
}

func (ws *WorkoutService) GetSettings(ctx context.Context, uid uuid.UUID) (*entity.UserSettings, error) {
	return loadSettings(ctx, ws.settings, uid)
}

func loadSettings(ctx context.Context, repo repository.SettingsRepositoryI, uid uuid.UUID) (*entity.UserSettings, error) {
	settings, err := repo.Get(ctx, uid)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, errorvalues.ErrSettingsNotFound) {
		return nil, errors.New("settings repository error: " + err.Error())
	}
	settings, err = repo.CreateDefault(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("settings repository error: " + err.Error())
	}
	return settings, nil
}

func (ws *WorkoutService) UpdateSplit(ctx context.Context, uid uuid.UUID, split string) error {
	split = strings.ToUpper(strings.TrimSpace(split))
	if !ValidSplit(split) {
		return errorvalues.ErrInvalidSplit
	}
	if err := ws.settings.UpdateSplit(ctx, uid, split); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("settings repository error: " + err.Error())
	}
	return nil
}

func (ws *WorkoutService) UpdateRestTime(ctx context.Context, uid uuid.UUID, seconds int) error {
	if seconds < 0 || seconds > 3600 {
		return errors.Join(errorvalues.ErrValidation, errors.New("rest time must be between 0 and 3600 seconds"))
	}
	if err := ws.settings.UpdateRestTime(ctx, uid, seconds); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("settings repository error: " + err.Error())
	}
	return nil
}

func (ws *WorkoutService) ListExercises(ctx context.Context, uid uuid.UUID, split string) ([]entity.Exercise, error) {
	split = strings.ToUpper(strings.TrimSpace(split))
	exercises, err := ws.exercises.ListByUser(ctx, uid, split)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercises, nil
}

func (ws *WorkoutService) AddExercise(ctx context.Context, uid uuid.UUID, req *AddExerciseRequest) (*entity.Exercise, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Split = strings.ToUpper(strings.TrimSpace(req.Split))
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	e := entity.Exercise{
		UserID:         uid,
		Name:           req.Name,
		MuscleGroup:    strings.TrimSpace(req.MuscleGroup),
		Split:          req.Split,
		IsCustom:       true,
		APIID:          req.APIID,
		Equipment:      req.Equipment,
		GifURL:         req.GifURL,
		TargetSets:     orDefault(req.TargetSets, defaultTargetSets),
		TargetReps:     orDefault(req.TargetReps, defaultTargetReps),
		TargetWeight:   req.TargetWeight,
		TargetRestTime: orDefault(req.TargetRestTime, defaultTargetRestTime),
	}
	id, err := ws.exercises.Upsert(ctx, &e)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	exercise, err := ws.exercises.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercise, nil
}

func (ws *WorkoutService) UpdateTargetWeight(ctx context.Context, uid uuid.UUID, exerciseID int64, weight float64) error {
	if weight < 0 {
		return errors.Join(errorvalues.ErrValidation, errors.New("weight can't be negative"))
	}
	if err := ws.exercises.UpdateTargetWeight(ctx, exerciseID, uid, weight); err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return err
		}
		return errors.New("exercises repository error: " + err.Error())
	}
	return nil
}

func (ws *WorkoutService) DeleteExercise(ctx context.Context, uid uuid.UUID, exerciseID int64) error {
	err := ws.exercises.Delete(ctx, exerciseID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) || errors.Is(err, errorvalues.ErrExerciseInUse) {
			return err
		}
		return errors.New("exercises repository error: " + err.Error())
	}
	return nil
}

func (ws *WorkoutService) ImportCatalog(ctx context.Context, uid uuid.UUID) (int, error) {
	settings, err := ws.GetSettings(ctx, uid)
	if err != nil {
		return 0, err
	}
	sequence := SplitSequence(settings.WorkoutSplit)
	if !ValidSplit(settings.WorkoutSplit) {
		sequence = SplitSequence("ABC")
	}

	batch := make([]entity.Exercise, 0, len(exerciseCatalog))
	for i, c := range exerciseCatalog {
		batch = append(batch, entity.Exercise{
			UserID:         uid,
			Name:           c.Name,
			MuscleGroup:    c.MuscleGroup,
			Split:          sequence[i%len(sequence)],
			TargetSets:     defaultTargetSets,
			TargetReps:     defaultTargetReps,
			TargetRestTime: defaultTargetRestTime,
			Order:          i,
		})
	}
	inserted, err := ws.exercises.InsertMany(ctx, batch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("exercises repository error: " + err.Error())
	}
	return inserted, nil
}

func (ws *WorkoutService) LogSet(ctx context.Context, uid uuid.UUID, req *LogSetRequest) (int64, error) {
	if err := validateStruct(*req); err != nil {
		return 0, err
	}
	id, err := ws.logs.Create(ctx, &entity.WorkoutLog{
		UserID:      uid,
		ExerciseID:  req.ExerciseID,
		Weight:      req.Weight,
		Reps:        req.Reps,
		RestTime:    req.RestTime,
		Notes:       req.Notes,
		StartedAt:   req.StartedAt,
		CompletedAt: req.CompletedAt,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return 0, err
		}
		return 0, errors.New("workout logs repository error: " + err.Error())
	}
	return id, nil
}

func (ws *WorkoutService) RecentLogs(ctx context.Context, uid uuid.UUID, exerciseID int64) ([]entity.WorkoutLog, error) {
	logs, err := ws.logs.RecentByExercise(ctx, uid, exerciseID, recentLogsLimit)
	if err != nil {
		return nil, errors.New("workout logs repository error: " + err.Error())
	}
	return logs, nil
}

func (ws *WorkoutService) NextWorkout(ctx context.Context, uid uuid.UUID) entity.NextWorkout {
	logger := ws.logger.With(slog.String("uid", uid.String()))

	settings, err := ws.GetSettings(ctx, uid)
	if err != nil {
		logger.Error("next workout: loading settings", slog.String("error", err.Error()))
		return fallbackWorkout
	}
	hasLast := true
	last, err := ws.logs.LastSplit(ctx, uid)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrNoWorkoutLogs) {
			logger.Error("next workout: loading last split", slog.String("error", err.Error()))
			return fallbackWorkout
		}
		hasLast = false
	}

	label := NextSplit(SplitSequence(settings.WorkoutSplit), last, hasLast)
	groups, err := ws.exercises.MuscleGroupsBySplit(ctx, uid, label)
	if err != nil {
		logger.Error("next workout: loading muscle groups", slog.String("error", err.Error()))
		return fallbackWorkout
	}
	return entity.NextWorkout{
		Label:       label,
		DisplayName: SplitDisplayName(label, groups),
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
