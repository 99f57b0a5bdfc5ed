package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/repository/mocks"
	"github.com/limbo/myfit/internal/service"
	"github.com/limbo/myfit/pkg/entity"
)

type dietFixture struct {
	meals *mocks.MockMealsRepositoryI
	plan  *mocks.MockDietPlanRepositoryI
	foods *mocks.MockFoodsRepositoryI
	logs  *mocks.MockWorkoutLogsRepositoryI
	serv  *service.DietService
}

func newDietFixture(t *testing.T) *dietFixture {
	ctrl := gomock.NewController(t)
	f := &dietFixture{
		meals: mocks.NewMockMealsRepositoryI(ctrl),
		plan:  mocks.NewMockDietPlanRepositoryI(ctrl),
		foods: mocks.NewMockFoodsRepositoryI(ctrl),
		logs:  mocks.NewMockWorkoutLogsRepositoryI(ctrl),
	}
	f.serv = service.NewDietService(f.meals, f.plan, f.foods, f.logs, nil)
	f.serv.SetNow(func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) })
	return f
}

func TestDayHistoryExcludesDrafts(t *testing.T) {
	f := newDietFixture(t)
	uid := uuid.New()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	from := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)

	f.meals.EXPECT().ListByDate(gomock.Any(), uid, day).Return([]entity.MealLog{
		{ID: 1, MealName: "Café da manhã", IsCompleted: true, Items: []entity.FoodItem{{Name: "ovo", Protein: 12, Fat: 10}}},
		{ID: 2, MealName: "Almoço", IsCompleted: true, Items: []entity.FoodItem{}},
		{ID: 3, MealName: "Jantar", IsCompleted: false, Items: []entity.FoodItem{{Name: "arroz", Carbs: 28}}},
	}, nil)
	f.logs.EXPECT().ListBetween(gomock.Any(), uid, from, from.Add(24*time.Hour)).Return([]entity.WorkoutLogView{
		{WorkoutLog: entity.WorkoutLog{ID: 9, Weight: 40, Reps: 10}, ExerciseName: "Supino Reto (Barra)", Split: "A"},
	}, nil)

	h, err := f.serv.DayHistory(context.Background(), uid, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2, h.MealsLogged)
	assert.Equal(t, 1, h.MealsComplete)
	assert.Len(t, h.Meals, 2)
	for _, m := range h.Meals {
		assert.NotEqual(t, int64(2), m.ID)
	}
	assert.Equal(t, entity.MacroTotals{Protein: 12, Fat: 10, Calories: 138}, h.Macros)
	assert.Len(t, h.Workout, 1)
}

func TestDayHistoryErrors(t *testing.T) {
	f := newDietFixture(t)
	uid := uuid.New()

	_, err := f.serv.DayHistory(context.Background(), uid, "2026-13-40")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)

	f.meals.EXPECT().ListByDate(gomock.Any(), uid, gomock.Any()).Return(nil, errors.New("db down"))
	_, err = f.serv.DayHistory(context.Background(), uid, "")
	assert.Error(t, err)
}

func TestSaveMeal(t *testing.T) {
	f := newDietFixture(t)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Req          service.SaveMealRequest
		Error        error
		ExpectedID   int64
		MockPrepFunc func()
	}{
		{
			Desc:       "creates with today by default",
			Req:        service.SaveMealRequest{MealName: " Almoço ", Items: []entity.FoodItem{{Name: "feijão", Protein: 5}}},
			ExpectedID: 7,
			MockPrepFunc: func() {
				f.meals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *entity.MealLog) (int64, error) {
					assert.Equal(t, "2026-03-10", m.Date)
					assert.Equal(t, "Almoço", m.MealName)
					assert.Equal(t, uid, m.UserID)
					return 7, nil
				})
			},
		},
		{
			Desc:       "updates when id is set",
			Req:        service.SaveMealRequest{ID: 3, Date: "2026-03-09", MealName: "Jantar", IsCompleted: true},
			ExpectedID: 3,
			MockPrepFunc: func() {
				f.meals.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *entity.MealLog) error {
					assert.Equal(t, int64(3), m.ID)
					assert.True(t, m.IsCompleted)
					assert.NotNil(t, m.Items)
					return nil
				})
			},
		},
		{
			Desc:  "update of foreign meal",
			Req:   service.SaveMealRequest{ID: 4, MealName: "Jantar"},
			Error: errorvalues.ErrMealNotFound,
			MockPrepFunc: func() {
				f.meals.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errorvalues.ErrMealNotFound)
			},
		},
		{
			Desc:         "missing name",
			Req:          service.SaveMealRequest{MealName: "  "},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "bad date",
			Req:          service.SaveMealRequest{MealName: "Lanche", Date: "ontem"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := f.serv.SaveMeal(context.Background(), uid, &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedID, id)
		})
	}
}

func TestMealReminders(t *testing.T) {
	f := newDietFixture(t)
	uid := uuid.New()
	f.plan.EXPECT().List(gomock.Any(), uid).Return([]entity.DietPlanItem{
		{ID: 1, MealName: "Café da manhã", ScheduledTime: "07:30", Suggestions: "Ovos e aveia"},
		{ID: 2, MealName: "Lanche livre"},
		{ID: 3, MealName: "Almoço", ScheduledTime: "12:00"},
		{ID: 4, MealName: "Ceia", ScheduledTime: "25:00"},
	}, nil)

	got, err := f.serv.MealReminders(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []entity.Reminder{
		{TimeOfDay: "07:30", Title: "🍽️ Hora da Refeição: Café da manhã", Body: "Ovos e aveia", Identifier: "meal-200"},
		{TimeOfDay: "12:00", Title: "🍽️ Hora da Refeição: Almoço", Body: "Consulte seu plano e registre o que comer.", Identifier: "meal-201"},
	}, got)
}

func TestCreateCustomFood(t *testing.T) {
	f := newDietFixture(t)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Req          service.CustomFoodRequest
		Success      bool
		Message      string
		MockPrepFunc func()
	}{
		{
			Desc:    "created",
			Req:     service.CustomFoodRequest{Name: "Pão de queijo caseiro", Protein: 5, Carbs: 34, Fat: 12},
			Success: true,
			MockPrepFunc: func() {
				f.foods.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, food *entity.Food) (int64, error) {
					assert.Equal(t, "100g", food.Portion)
					assert.Equal(t, 264, food.Kcal)
					require.NotNil(t, food.UserID)
					assert.Equal(t, uid, *food.UserID)
					return 11, nil
				})
			},
		},
		{
			Desc:    "duplicate name",
			Req:     service.CustomFoodRequest{Name: "Tapioca", Kcal: 240},
			Message: "Você já cadastrou um alimento com esse nome.",
			MockPrepFunc: func() {
				f.foods.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errorvalues.ErrFoodExists)
			},
		},
		{
			Desc:         "negative macro",
			Req:          service.CustomFoodRequest{Name: "Tapioca", Fat: -1},
			Message:      "Valor inválido para gordura.",
			MockPrepFunc: func() {},
		},
		{
			Desc:    "storage failure",
			Req:     service.CustomFoodRequest{Name: "Cuscuz"},
			Message: "Não foi possível salvar o alimento. Tente novamente.",
			MockPrepFunc: func() {
				f.foods.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res := f.serv.CreateCustomFood(context.Background(), uid, &tc.Req)
			assert.Equal(t, tc.Success, res.Success)
			assert.Equal(t, tc.Message, res.Error)
			if tc.Success {
				require.NotNil(t, res.Data)
				assert.Equal(t, int64(11), res.Data.ID)
			}
		})
	}
}

func TestReplacePlan(t *testing.T) {
	f := newDietFixture(t)
	uid := uuid.New()

	err := f.serv.ReplacePlan(context.Background(), uid, []service.PlanItemRequest{{MealName: "Almoço", ScheduledTime: "12h"}})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	f.plan.EXPECT().ReplaceAll(gomock.Any(), uid, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, items []entity.DietPlanItem) error {
		require.Len(t, items, 2)
		assert.Equal(t, 0, items[0].Order)
		assert.Equal(t, 1, items[1].Order)
		assert.Equal(t, 30*4+40*4+10*9, items[1].TargetCalories)
		assert.NotNil(t, items[0].Substitutions)
		return nil
	})
	err = f.serv.ReplacePlan(context.Background(), uid, []service.PlanItemRequest{
		{MealName: "Café", ScheduledTime: "07:00"},
		{MealName: "Almoço", ScheduledTime: "12:30", TargetProtein: 30, TargetCarbs: 40, TargetFat: 10},
	})
	assert.NoError(t, err)
}
