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

type healthFixture struct {
	stats    *mocks.MockHealthStatsRepositoryI
	settings *mocks.MockSettingsRepositoryI
	serv     *service.HealthService
}

func newHealthFixture(t *testing.T) *healthFixture {
	ctrl := gomock.NewController(t)
	f := &healthFixture{
		stats:    mocks.NewMockHealthStatsRepositoryI(ctrl),
		settings: mocks.NewMockSettingsRepositoryI(ctrl),
	}
	f.serv = service.NewHealthService(f.stats, f.settings, nil)
	f.serv.SetNow(func() time.Time { return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC) })
	return f
}

func TestWaterHistoryGroupsByBusinessDay(t *testing.T) {
	f := newHealthFixture(t)
	uid := uuid.New()
	from := time.Date(2026, 3, 8, 3, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 11, 3, 0, 0, 0, time.UTC)

	f.stats.EXPECT().ListBetween(gomock.Any(), uid, []string{entity.StatWater}, from, to).Return([]entity.HealthStat{
		{Type: entity.StatWater, Value: "500", RecordedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)},
		{Type: entity.StatWater, Value: "250", RecordedAt: time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC)},
		// before 03:00 UTC still belongs to the previous day
		{Type: entity.StatWater, Value: "300", RecordedAt: time.Date(2026, 3, 9, 2, 0, 0, 0, time.UTC)},
		{Type: entity.StatWater, Value: "oops", RecordedAt: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)},
	}, nil)

	history, err := f.serv.WaterHistory(context.Background(), uid, 3)
	require.NoError(t, err)
	assert.Equal(t, []entity.WaterDay{
		{Date: "2026-03-08", TotalMl: 300},
		{Date: "2026-03-09", TotalMl: 0},
		{Date: "2026-03-10", TotalMl: 750},
	}, history)
}

func TestWaterHistoryWindowIsCapped(t *testing.T) {
	f := newHealthFixture(t)
	uid := uuid.New()
	from := time.Date(2025, 12, 11, 3, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 11, 3, 0, 0, 0, time.UTC)

	f.stats.EXPECT().ListBetween(gomock.Any(), uid, gomock.Any(), from, to).Return(nil, nil)
	history, err := f.serv.WaterHistory(context.Background(), uid, 365)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAddWater(t *testing.T) {
	f := newHealthFixture(t)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Ml           int
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "logged",
			Ml:   250,
			MockPrepFunc: func() {
				f.stats.EXPECT().Create(gomock.Any(), &entity.HealthStat{UserID: uid, Type: entity.StatWater, Value: "250"}).Return(int64(1), nil)
			},
		},
		{Desc: "zero", Ml: 0, Error: errorvalues.ErrValidation, MockPrepFunc: func() {}},
		{Desc: "too much", Ml: 6000, Error: errorvalues.ErrValidation, MockPrepFunc: func() {}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := f.serv.AddWater(context.Background(), uid, tc.Ml)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestAddStatRejectsNonNumeric(t *testing.T) {
	f := newHealthFixture(t)
	uid := uuid.New()

	err := f.serv.AddStat(context.Background(), uid, &service.StatRequest{Type: entity.StatWeight, Value: "heavy"})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	err = f.serv.AddStat(context.Background(), uid, &service.StatRequest{Type: "mood", Value: "1"})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)

	f.stats.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	err = f.serv.AddStat(context.Background(), uid, &service.StatRequest{Type: entity.StatPhotoURL, Value: "https://cdn.example.com/p.jpg"})
	assert.NoError(t, err)
}

func TestSyncUpsertsPerDay(t *testing.T) {
	f := newHealthFixture(t)
	uid := uuid.New()
	dayStart := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)

	f.stats.EXPECT().UpsertInRange(gomock.Any(), &entity.HealthStat{
		UserID: uid, Type: entity.StatSleepHours, Value: "7", RecordedAt: dayStart,
	}, dayStart, dayStart.Add(24*time.Hour)).Return(nil)
	f.stats.EXPECT().UpsertInRange(gomock.Any(), gomock.Any(), dayStart, dayStart.Add(24*time.Hour)).Return(nil)

	err := f.serv.Sync(context.Background(), uid, []service.SyncEntry{
		{Type: entity.StatSleepHours, Value: "7", Date: "2026-03-09"},
		{Type: entity.StatSteps, Value: "8500", Date: "2026-03-09"},
	})
	require.NoError(t, err)

	// nothing is written when any entry is invalid
	err = f.serv.Sync(context.Background(), uid, []service.SyncEntry{
		{Type: entity.StatSteps, Value: "100", Date: "2026-03-09"},
		{Type: entity.StatWeight, Value: "80", Date: "2026-03-09"},
	})
	assert.ErrorIs(t, err, errorvalues.ErrValidation)
}

func TestLatestStatsKeepsNewest(t *testing.T) {
	f := newHealthFixture(t)
	uid := uuid.New()

	f.stats.EXPECT().Latest(gomock.Any(), uid).Return([]entity.HealthStat{
		{Type: entity.StatWeight, Value: "81.5"},
		{Type: entity.StatWeight, Value: "83"},
		{Type: entity.StatSteps, Value: "9000"},
	}, nil)
	latest, err := f.serv.LatestStats(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{entity.StatWeight: "81.5", entity.StatSteps: "9000"}, latest)
}

func TestWaterGoal(t *testing.T) {
	f := newHealthFixture(t)
	uid := uuid.New()

	f.settings.EXPECT().Get(gomock.Any(), uid).Return(&entity.UserSettings{WaterGoal: 2500}, nil)
	assert.Equal(t, 2500, f.serv.WaterGoal(context.Background(), uid))

	f.settings.EXPECT().Get(gomock.Any(), uid).Return(nil, errors.New("db down"))
	assert.Equal(t, 3000, f.serv.WaterGoal(context.Background(), uid))

	assert.ErrorIs(t, f.serv.UpdateWaterGoal(context.Background(), uid, 100), errorvalues.ErrValidation)
}
