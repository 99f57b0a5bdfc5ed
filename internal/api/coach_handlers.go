package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/limbo/myfit/pkg/httputil"
)

const maxExamUpload = 8 << 20

func (s *Server) WeeklyInsight(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("weekly insight error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"insight": s.coachService.WeeklyInsight(ctx, uid),
	})
	logger.Info("weekly insight provided")
}

// AnalyzeBioimpedance reads the exam photo from the "image" multipart field.
func (s *Server) AnalyzeBioimpedance(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("bioimpedance error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxExamUpload+1<<20)
	if err = r.ParseMultipartForm(maxExamUpload); err != nil {
		logger.Error("bioimpedance error: invalid form", slog.String("error", err.Error()))
		httputil.WriteValidationError(w, "Envie uma imagem de até 8 MB.")
		return
	}
	defer r.MultipartForm.RemoveAll()
	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.WriteValidationError(w, "Envie uma imagem de até 8 MB.")
		return
	}
	defer file.Close()
	image, err := io.ReadAll(io.LimitReader(file, maxExamUpload+1))
	if err != nil {
		logger.Error("bioimpedance error: reading upload", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't read upload", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()
	res := s.coachService.AnalyzeBioimpedance(ctx, uid, image, header.Header.Get("Content-Type"))
	if !res.Success {
		logger.Warn("bioimpedance rejected", slog.String("reason", res.Error))
		httputil.WriteJSONResponse(w, http.StatusUnprocessableEntity, res)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, res)
	logger.Info("body composition saved")
}

func (s *Server) BodyCompositionHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("body composition error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	history, err := s.coachService.BodyCompositionHistory(ctx, uid, queryInt(r, "limit", 20))
	if err != nil {
		logger.Error("body composition error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting body composition", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
}
