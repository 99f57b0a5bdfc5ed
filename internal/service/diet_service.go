package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/bizday"
	"github.com/limbo/myfit/pkg/entity"
)

const (
	reminderBaseID        = 200
	maxReminders          = 10
	defaultReminderBody   = "Consulte seu plano e registre o que comer."
	duplicateFoodMessage  = "Você já cadastrou um alimento com esse nome."
	customFoodSaveMessage = "Não foi possível salvar o alimento. Tente novamente."
)

type DietService struct {
	meals  repository.MealsRepositoryI
	plan   repository.DietPlanRepositoryI
	foods  repository.FoodsRepositoryI
	logs   repository.WorkoutLogsRepositoryI
	logger *slog.Logger
	now    func() time.Time
}

func NewDietService(meals repository.MealsRepositoryI, plan repository.DietPlanRepositoryI, foods repository.FoodsRepositoryI,
	logs repository.WorkoutLogsRepositoryI, logger *slog.Logger) *DietService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DietService{
		meals:  meals,
		plan:   plan,
		foods:  foods,
		logs:   logs,
		logger: logger.With(slog.String("service", "diet")),
		now:    time.Now,
	}
}

func (ds *DietService) today() string {
	return bizday.Today(ds.now())
}

func (ds *DietService) DayMacros(ctx context.Context, uid uuid.UUID, day string) entity.MacroTotals {
	logger := ds.logger.With(slog.String("uid", uid.String()), slog.String("day", day))
	date, err := bizday.Parse(day)
	if err != nil {
		logger.Warn("day macros: invalid day")
		return entity.MacroTotals{}
	}
	meals, err := ds.meals.ListCompletedByDate(ctx, uid, date)
	if err != nil {
		logger.Error("day macros: loading meals", slog.String("error", err.Error()))
		return entity.MacroTotals{}
	}
	return AggregateMacros(meals)
}

func (ds *DietService) TodayMacros(ctx context.Context, uid uuid.UUID) entity.MacroTotals {
	return ds.DayMacros(ctx, uid, ds.today())
}

func (ds *DietService) MealsByDate(ctx context.Context, uid uuid.UUID, day string) ([]entity.MealLog, error) {
	if day == "" {
		day = ds.today()
	}
	date, err := bizday.Parse(day)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	meals, err := ds.meals.ListByDate(ctx, uid, date)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	return meals, nil
}

func (ds *DietService) SaveMeal(ctx context.Context, uid uuid.UUID, req *SaveMealRequest) (int64, error) {
	req.MealName = strings.TrimSpace(req.MealName)
	if req.Date == "" {
		req.Date = ds.today()
	}
	if err := validateStruct(*req); err != nil {
		return 0, err
	}
	items := req.Items
	if items == nil {
		items = []entity.FoodItem{}
	}
	meal := entity.MealLog{
		ID:          req.ID,
		UserID:      uid,
		Date:        req.Date,
		MealName:    req.MealName,
		Items:       items,
		IsCompleted: req.IsCompleted,
		Notes:       req.Notes,
	}

	if req.ID > 0 {
		if err := ds.meals.Update(ctx, &meal); err != nil {
			if errors.Is(err, errorvalues.ErrMealNotFound) {
				return 0, err
			}
			return 0, errors.New("meals repository error: " + err.Error())
		}
		return req.ID, nil
	}
	id, err := ds.meals.Create(ctx, &meal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("meals repository error: " + err.Error())
	}
	return id, nil
}

func (ds *DietService) SetMealCompleted(ctx context.Context, uid uuid.UUID, mealID int64, completed bool) error {
	if err := ds.meals.SetCompleted(ctx, mealID, uid, completed); err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return err
		}
		return errors.New("meals repository error: " + err.Error())
	}
	return nil
}

func (ds *DietService) DeleteMeal(ctx context.Context, uid uuid.UUID, mealID int64) error {
	if err := ds.meals.Delete(ctx, mealID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrMealNotFound) {
			return err
		}
		return errors.New("meals repository error: " + err.Error())
	}
	return nil
}

// DayHistory reports only meals that hold items. Drafts are neither listed nor counted.
func (ds *DietService) DayHistory(ctx context.Context, uid uuid.UUID, day string) (*entity.DayHistory, error) {
	if day == "" {
		day = ds.today()
	}
	date, err := bizday.Parse(day)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	from, to, _ := bizday.Bounds(day)

	meals, err := ds.meals.ListByDate(ctx, uid, date)
	if err != nil {
		return nil, errors.New("meals repository error: " + err.Error())
	}
	workout, err := ds.logs.ListBetween(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("workout logs repository error: " + err.Error())
	}

	logged := LoggedMeals(meals)
	completed := make([]entity.MealLog, 0, len(logged))
	for _, m := range logged {
		if m.IsCompleted {
			completed = append(completed, m)
		}
	}
	if workout == nil {
		workout = []entity.WorkoutLogView{}
	}
	return &entity.DayHistory{
		Date:          day,
		Meals:         logged,
		MealsLogged:   len(logged),
		MealsComplete: len(completed),
		Macros:        AggregateMacros(completed),
		Workout:       workout,
	}, nil
}

func (ds *DietService) ListPlan(ctx context.Context, uid uuid.UUID) ([]entity.DietPlanItem, error) {
	plan, err := ds.plan.List(ctx, uid)
	if err != nil {
		return nil, errors.New("diet plan repository error: " + err.Error())
	}
	return plan, nil
}

func planItemFromRequest(uid uuid.UUID, req *PlanItemRequest) entity.DietPlanItem {
	item := entity.DietPlanItem{
		ID:             req.ID,
		UserID:         uid,
		MealName:       strings.TrimSpace(req.MealName),
		ScheduledTime:  req.ScheduledTime,
		TargetProtein:  req.TargetProtein,
		TargetCarbs:    req.TargetCarbs,
		TargetFat:      req.TargetFat,
		TargetCalories: req.TargetCalories,
		Suggestions:    req.Suggestions,
		Items:          req.Items,
		Substitutions:  req.Substitutions,
		Order:          req.Order,
	}
	if item.TargetCalories == 0 {
		item.TargetCalories = int(entity.MacroCalories(float64(req.TargetProtein), float64(req.TargetCarbs), float64(req.TargetFat)))
	}
	if item.Items == nil {
		item.Items = []entity.FoodItem{}
	}
	if item.Substitutions == nil {
		item.Substitutions = []entity.Substitution{}
	}
	return item
}

func (ds *DietService) SavePlanItem(ctx context.Context, uid uuid.UUID, req *PlanItemRequest) (int64, error) {
	if err := validateStruct(*req); err != nil {
		return 0, err
	}
	item := planItemFromRequest(uid, req)
	if item.ID > 0 {
		if err := ds.plan.Update(ctx, &item); err != nil {
			if errors.Is(err, errorvalues.ErrPlanItemNotFound) {
				return 0, err
			}
			return 0, errors.New("diet plan repository error: " + err.Error())
		}
		return item.ID, nil
	}
	id, err := ds.plan.Create(ctx, &item)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("diet plan repository error: " + err.Error())
	}
	return id, nil
}

func (ds *DietService) DeletePlanItem(ctx context.Context, uid uuid.UUID, itemID int64) error {
	if err := ds.plan.Delete(ctx, itemID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrPlanItemNotFound) {
			return err
		}
		return errors.New("diet plan repository error: " + err.Error())
	}
	return nil
}

func (ds *DietService) ReplacePlan(ctx context.Context, uid uuid.UUID, reqs []PlanItemRequest) error {
	items := make([]entity.DietPlanItem, 0, len(reqs))
	for i := range reqs {
		if err := validateStruct(reqs[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		item := planItemFromRequest(uid, &reqs[i])
		if item.Order == 0 {
			item.Order = i
		}
		items = append(items, item)
	}
	if err := ds.plan.ReplaceAll(ctx, uid, items); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("diet plan repository error: " + err.Error())
	}
	return nil
}

func (ds *DietService) MealReminders(ctx context.Context, uid uuid.UUID) ([]entity.Reminder, error) {
	plan, err := ds.ListPlan(ctx, uid)
	if err != nil {
		return nil, err
	}
	reminders := make([]entity.Reminder, 0, len(plan))
	for _, item := range plan {
		if item.ScheduledTime == "" {
			continue
		}
		if _, _, ok := parseHHMM(item.ScheduledTime); !ok {
			ds.logger.Warn("meal reminders: skipping bad schedule",
				slog.Int64("plan_item", item.ID), slog.String("time", item.ScheduledTime))
			continue
		}
		if len(reminders) == maxReminders {
			break
		}
		body := strings.TrimSpace(item.Suggestions)
		if body == "" {
			body = defaultReminderBody
		}
		reminders = append(reminders, entity.Reminder{
			TimeOfDay:  item.ScheduledTime,
			Title:      "🍽️ Hora da Refeição: " + item.MealName,
			Body:       body,
			Identifier: fmt.Sprintf("meal-%d", reminderBaseID+len(reminders)),
		})
	}
	return reminders, nil
}

func (ds *DietService) CreateCustomFood(ctx context.Context, uid uuid.UUID, req *CustomFoodRequest) entity.Result[entity.Food] {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(*req); err != nil {
		return entity.Result[entity.Food]{Error: foodValidationMessage(err)}
	}
	food := entity.Food{
		UserID:  &uid,
		Name:    req.Name,
		Group:   req.Group,
		Kcal:    req.Kcal,
		Protein: req.Protein,
		Carbs:   req.Carbs,
		Fat:     req.Fat,
		Portion: req.Portion,
	}
	if food.Portion == "" {
		food.Portion = "100g"
	}
	if food.Kcal == 0 {
		food.Kcal = int(entity.MacroCalories(food.Protein, food.Carbs, food.Fat) + 0.5)
	}
	id, err := ds.foods.Create(ctx, &food)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFoodExists) {
			return entity.Result[entity.Food]{Error: duplicateFoodMessage}
		}
		ds.logger.Error("custom food: saving", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return entity.Result[entity.Food]{Error: customFoodSaveMessage}
	}
	food.ID = id
	return entity.Result[entity.Food]{Success: true, Data: &food}
}

func foodValidationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Dados do alimento inválidos."
	}
	names := map[string]string{
		"Name":    "nome",
		"Group":   "grupo",
		"Kcal":    "calorias",
		"Protein": "proteína",
		"Carbs":   "carboidratos",
		"Fat":     "gordura",
		"Portion": "porção",
	}
	return "Valor inválido para " + names[fieldErrs[0].Field()] + "."
}
