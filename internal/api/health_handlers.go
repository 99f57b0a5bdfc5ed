package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/service"
	"github.com/limbo/myfit/pkg/httputil"
)

type StatRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type WaterRequest struct {
	Ml int `json:"ml"`
}

type WaterGoalRequest struct {
	Ml int `json:"ml"`
}

type AIContextRequest struct {
	Context string `json:"ai_context"`
}

type BiometricRequest struct {
	Enabled bool `json:"enabled"`
}

type SyncEntry struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Date  string `json:"date"`
}

type SyncRequest struct {
	Entries []SyncEntry `json:"entries"`
}

func (s *Server) AddStat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add stat error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StatRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.healthService.AddStat(ctx, uid, &service.StatRequest{Type: req.Type, Value: req.Value})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("add stat error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving stat", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"success": true})
	logger.Info("stat saved", slog.String("type", req.Type))
}

func (s *Server) LatestStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("latest stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.healthService.LatestStats(ctx, uid)
	if err != nil {
		logger.Error("latest stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) AddWater(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add water error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req WaterRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.healthService.AddWater(ctx, uid, req.Ml)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("add water error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving water", nil)
		}
		return
	}
	total, err := s.healthService.TodayWater(ctx, uid)
	if err != nil {
		logger.Error("add water error: reading total", slog.String("error", err.Error()))
		httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"success": true})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"success": true, "total_ml": total})
}

func (s *Server) TodayWater(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("today water error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	total, err := s.healthService.TodayWater(ctx, uid)
	if err != nil {
		logger.Error("today water error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting water", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"total_ml": total,
		"goal_ml":  s.healthService.WaterGoal(ctx, uid),
	})
}

func (s *Server) WaterHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("water history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	history, err := s.healthService.WaterHistory(ctx, uid, queryInt(r, "days", 7))
	if err != nil {
		logger.Error("water history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting water history", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
}

func (s *Server) UpdateWaterGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("water goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req WaterGoalRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.healthService.UpdateWaterGoal(ctx, uid, req.Ml)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("water goal error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating water goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) GetAIContext(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("ai context error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"ai_context": s.healthService.AIContext(ctx, uid)})
}

func (s *Server) UpdateAIContext(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("ai context update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AIContextRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.healthService.UpdateAIContext(ctx, uid, req.Context)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("ai context update error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating ai context", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) UpdateBiometric(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("biometric update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req BiometricRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err = s.healthService.UpdateBiometric(ctx, uid, req.Enabled); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("biometric update error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) Sync(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("health sync error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SyncRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	entries := make([]service.SyncEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, service.SyncEntry{Type: e.Type, Value: e.Value, Date: e.Date})
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.healthService.Sync(ctx, uid, entries)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrInvalidDate):
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("health sync error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while syncing", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"synced": len(entries)})
	logger.Info("health data synced", slog.Int("entries", len(entries)))
}

func (s *Server) SyncHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("sync history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	stats, err := s.healthService.SyncHistory(ctx, uid, queryInt(r, "days", 7))
	if err != nil {
		logger.Error("sync history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting sync history", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}
