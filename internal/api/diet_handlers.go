package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/service"
	"github.com/limbo/myfit/pkg/entity"
	"github.com/limbo/myfit/pkg/httputil"
)

type SaveMealRequest struct {
	Date        string            `json:"date"`
	MealName    string            `json:"meal_name"`
	Items       []entity.FoodItem `json:"items"`
	IsCompleted bool              `json:"is_completed"`
	Notes       string            `json:"notes"`
}

type SetCompletedRequest struct {
	Completed bool `json:"completed"`
}

type PlanItemRequest struct {
	MealName       string                `json:"meal_name"`
	ScheduledTime  string                `json:"scheduled_time"`
	TargetProtein  int                   `json:"target_protein"`
	TargetCarbs    int                   `json:"target_carbs"`
	TargetFat      int                   `json:"target_fat"`
	TargetCalories int                   `json:"target_calories"`
	Suggestions    string                `json:"suggestions"`
	Items          []entity.FoodItem     `json:"items"`
	Substitutions  []entity.Substitution `json:"substitutions"`
	Order          int                   `json:"order"`
}

func (p PlanItemRequest) toService(id int64) service.PlanItemRequest {
	return service.PlanItemRequest{
		ID:             id,
		MealName:       p.MealName,
		ScheduledTime:  p.ScheduledTime,
		TargetProtein:  p.TargetProtein,
		TargetCarbs:    p.TargetCarbs,
		TargetFat:      p.TargetFat,
		TargetCalories: p.TargetCalories,
		Suggestions:    p.Suggestions,
		Items:          p.Items,
		Substitutions:  p.Substitutions,
		Order:          p.Order,
	}
}

type CustomFoodRequest struct {
	Name    string  `json:"name"`
	Group   string  `json:"group"`
	Kcal    int     `json:"kcal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Portion string  `json:"portion"`
}

// DayMacros answers totals of the completed meals of ?date, today when it is missing.
func (s *Server) DayMacros(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("day macros error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	var totals entity.MacroTotals
	if day := r.URL.Query().Get("date"); day != "" {
		totals = s.dietService.DayMacros(ctx, uid, day)
	} else {
		totals = s.dietService.TodayMacros(ctx, uid)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, totals)
}

func (s *Server) MealsByDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("meals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	meals, err := s.dietService.MealsByDate(ctx, uid, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
			return
		}
		logger.Error("meals error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting meals", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, meals)
}

// SaveMeal creates a meal on POST and updates the one in the path on PUT.
func (s *Server) SaveMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save meal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var id int64
	if r.PathValue("id") != "" {
		if id, err = pathID(r); err != nil {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
			return
		}
	}
	var req SaveMealRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("save meal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	mealID, err := s.dietService.SaveMeal(ctx, uid, &service.SaveMealRequest{
		ID:          id,
		Date:        req.Date,
		MealName:    req.MealName,
		Items:       req.Items,
		IsCompleted: req.IsCompleted,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrMealNotFound):
			logger.Error("save meal error: unexist meal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "meal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrInvalidDate):
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
		default:
			logger.Error("save meal error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving meal", nil)
		}
		return
	}
	code := http.StatusCreated
	if id > 0 {
		code = http.StatusOK
	}
	httputil.WriteJSONResponse(w, code, map[string]any{"meal_id": mealID})
	logger.Info("meal saved", slog.Int64("meal_id", mealID))
}

func (s *Server) SetMealCompleted(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("meal completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	var req SetCompletedRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.dietService.SetMealCompleted(ctx, uid, id, req.Completed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "meal doesn't exist", nil)
			return
		}
		logger.Error("meal completion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating meal", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("meal deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		logger.Error("meal deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid meal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.dietService.DeleteMeal(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			logger.Error("meal deletion error: unexist meal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "meal doesn't exist", nil)
			return
		}
		logger.Error("meal deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting meal", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("meal deleted", slog.Int64("meal_id", id))
}

func (s *Server) DayHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("day history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	history, err := s.dietService.DayHistory(ctx, uid, r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD", nil)
			return
		}
		logger.Error("day history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting history", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
}

func (s *Server) ListPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("diet plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	plan, err := s.dietService.ListPlan(ctx, uid)
	if err != nil {
		logger.Error("diet plan error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting diet plan", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

// SavePlanItem creates an item on POST and updates the one in the path on PUT.
func (s *Server) SavePlanItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save plan item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var id int64
	if r.PathValue("id") != "" {
		if id, err = pathID(r); err != nil {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid plan item id in path value", nil)
			return
		}
	}
	var req PlanItemRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("save plan item error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	item := req.toService(id)
	itemID, err := s.dietService.SavePlanItem(ctx, uid, &item)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrPlanItemNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "diet plan item doesn't exist", nil)
		default:
			logger.Error("save plan item error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving plan item", nil)
		}
		return
	}
	code := http.StatusCreated
	if id > 0 {
		code = http.StatusOK
	}
	httputil.WriteJSONResponse(w, code, map[string]any{"item_id": itemID})
}

func (s *Server) ReplacePlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("replace plan error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req []PlanItemRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("replace plan error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	items := make([]service.PlanItemRequest, 0, len(req))
	for _, p := range req {
		items = append(items, p.toService(0))
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.dietService.ReplacePlan(ctx, uid, items)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			httputil.WriteValidationError(w, validationMessage(err))
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("replace plan error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while replacing diet plan", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"items": len(items)})
	logger.Info("diet plan replaced", slog.Int("items", len(items)))
}

func (s *Server) DeletePlanItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("plan item deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := pathID(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid plan item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	err = s.dietService.DeletePlanItem(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPlanItemNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "diet plan item doesn't exist", nil)
			return
		}
		logger.Error("plan item deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting plan item", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) MealReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("meal reminders error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	reminders, err := s.dietService.MealReminders(ctx, uid)
	if err != nil {
		logger.Error("meal reminders error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building reminders", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reminders)
}

func (s *Server) CreateCustomFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("custom food error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CustomFoodRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteValidationError(w, "Dados do alimento inválidos.")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res := s.dietService.CreateCustomFood(ctx, uid, &service.CustomFoodRequest{
		Name:    req.Name,
		Group:   req.Group,
		Kcal:    req.Kcal,
		Protein: req.Protein,
		Carbs:   req.Carbs,
		Fat:     req.Fat,
		Portion: req.Portion,
	})
	if !res.Success {
		logger.Warn("custom food rejected", slog.String("reason", res.Error))
		httputil.WriteJSONResponse(w, http.StatusUnprocessableEntity, res)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, res)
	logger.Info("custom food created")
}
