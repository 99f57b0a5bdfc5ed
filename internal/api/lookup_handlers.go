package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/provider/exercisedb"
	"github.com/limbo/myfit/pkg/httputil"
)

const imageCacheControl = "public, max-age=43200"

func (s *Server) SearchFoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("food search error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, s.lookupService.SearchFoods(ctx, uid, r.URL.Query().Get("q")))
}

func (s *Server) SearchExercises(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, s.lookupService.SearchExercises(ctx, r.URL.Query().Get("q")))
}

// ExerciseImage proxies the exercise gif so the api key stays on the server.
func (s *Server) ExerciseImage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	data, contentType, err := s.lookupService.ExerciseImage(ctx, r.PathValue("id"))
	if err != nil {
		var statusErr *exercisedb.StatusError
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id", nil)
		case errors.Is(err, errorvalues.ErrProviderUnavailable):
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "exercise images are not configured", nil)
		case errors.As(err, &statusErr):
			logger.Warn("exercise image: upstream status", slog.Int("status", statusErr.Code))
			httputil.WriteErrorResponse(w, statusErr.Code, "couldn't load exercise image", nil)
		default:
			logger.Error("exercise image: upstream error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadGateway, "couldn't load exercise image", nil)
		}
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", imageCacheControl)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
