package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/service"
	"github.com/limbo/myfit/pkg/httputil"
)

type UpdateSplitRequest struct {
	Split string `json:"split"`
}

type UpdateRestTimeRequest struct {
	Seconds int `json:"seconds"`
}

type AddExerciseRequest struct {
	Name           string  `json:"name"`
	MuscleGroup    string  `json:"muscle_group"`
	Split          string  `json:"split"`
	APIID          string  `json:"api_id"`
	Equipment      string  `json:"equipment"`
	GifURL         string  `json:"gif_url"`
	TargetSets     int     `json:"target_sets"`
	TargetReps     int     `json:"target_reps"`
	TargetWeight   float64 `json:"target_weight"`
	TargetRestTime int     `json:"target_rest_time"`
}

type UpdateTargetWeightRequest struct {
	Weight float64 `json:"weight"`
}

type LogSetRequest struct {
	ExerciseID  int64      `json:"exercise_id"`
	Weight      float64    `json:"weight"`
	Reps        int        `json:"reps"`
	RestTime    int        `json:"rest_time"`
	Notes       string     `json:"notes"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get settings error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	settings, err := s.workoutService.GetSettings(ctx, uid)
	if err != nil {
		logger.Error("get settings error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

func (s *Server) UpdateSplit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update split error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateSplitRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update split error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.workoutService.UpdateSplit(ctx, uid, req.Split)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidSplit):
			logger.Error("update split error: invalid split", slog.String("split", req.Split))
			httputil.WriteValidationError(w, "Divisão inválida. Use de 1 a 4 letras distintas entre A e D.")
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("update split error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating split", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("split updated")
}

func (s *Server) UpdateRestTime(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update rest time error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateRestTimeRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update rest time error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.workoutService.UpdateRestTime(ctx, uid, req.Seconds)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("update rest time error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating rest time", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list exercises error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	exercises, err := s.workoutService.ListExercises(ctx, uid, r.URL.Query().Get("split"))
	if err != nil {
		logger.Error("list exercises error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing exercises", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercises)
}

func (s *Server) AddExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddExerciseRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("add exercise error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	exercise, err := s.workoutService.AddExercise(ctx, uid, &service.AddExerciseRequest{
		Name:           req.Name,
		MuscleGroup:    req.MuscleGroup,
		Split:          req.Split,
		APIID:          req.APIID,
		Equipment:      req.Equipment,
		GifURL:         req.GifURL,
		TargetSets:     req.TargetSets,
		TargetReps:     req.TargetReps,
		TargetWeight:   req.TargetWeight,
		TargetRestTime: req.TargetRestTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("add exercise error: invalid exercise")
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("add exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, exercise)
	logger.Info("exercise saved", slog.Int64("exercise_id", exercise.ID))
}

func (s *Server) ImportCatalog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("import catalog error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	inserted, err := s.workoutService.ImportCatalog(ctx, uid)
	if err != nil {
		logger.Error("import catalog error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while importing exercises", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"inserted": inserted})
	logger.Info("catalog imported", slog.Int("inserted", inserted))
}

func (s *Server) UpdateTargetWeight(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update target weight error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	var req UpdateTargetWeightRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.workoutService.UpdateTargetWeight(ctx, uid, id, req.Weight)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		default:
			logger.Error("update target weight error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("exercise deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("exercise deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.workoutService.DeleteExercise(ctx, uid, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			logger.Error("exercise deletion error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrExerciseInUse):
			logger.Error("exercise deletion error: exercise has logs")
			httputil.WriteErrorResponse(w, http.StatusConflict, "exercise has logged sets", nil)
		default:
			logger.Error("exercise deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting exercise", nil)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("exercise deleted", slog.Int64("exercise_id", id))
}

func (s *Server) RecentLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("recent logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	logs, err := s.workoutService.RecentLogs(ctx, uid, id)
	if err != nil {
		logger.Error("recent logs error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting logs", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, logs)
}

func (s *Server) LogSet(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log set error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogSetRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("log set error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	id, err := s.workoutService.LogSet(ctx, uid, &service.LogSetRequest{
		ExerciseID:  req.ExerciseID,
		Weight:      req.Weight,
		Reps:        req.Reps,
		RestTime:    req.RestTime,
		Notes:       req.Notes,
		StartedAt:   req.StartedAt,
		CompletedAt: req.CompletedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			logger.Error("log set error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		default:
			logger.Error("log set error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging set", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"log_id": id})
	logger.Info("set logged", slog.Int64("exercise_id", req.ExerciseID))
}

func (s *Server) NextWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("next workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, s.workoutService.NextWorkout(ctx, uid))
}
