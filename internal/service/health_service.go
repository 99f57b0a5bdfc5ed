package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/pkg/bizday"
	"github.com/limbo/myfit/pkg/entity"
)

const (
	defaultWaterGoal = 3000
	maxWaterPerLog   = 5000
	maxHistoryDays   = 90
	maxAIContextLen  = 4000
)

var syncTypes = []string{entity.StatSleepHours, entity.StatSteps}

type HealthService struct {
	stats    repository.HealthStatsRepositoryI
	settings repository.SettingsRepositoryI
	logger   *slog.Logger
	now      func() time.Time
}

func NewHealthService(stats repository.HealthStatsRepositoryI, settings repository.SettingsRepositoryI, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		stats:    stats,
		settings: settings,
		logger:   logger.With(slog.String("service", "health")),
		now:      time.Now,
	}
}

func (hs *HealthService) AddStat(ctx context.Context, uid uuid.UUID, req *StatRequest) error {
	req.Value = strings.TrimSpace(req.Value)
	if err := validateStruct(*req); err != nil {
		return err
	}
	if req.Type != entity.StatPhotoURL {
		if _, err := strconv.ParseFloat(req.Value, 64); err != nil {
			return errors.Join(errorvalues.ErrValidation, errors.New("value must be numeric"))
		}
	}
	_, err := hs.stats.Create(ctx, &entity.HealthStat{
		UserID: uid,
		Type:   req.Type,
		Value:  req.Value,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("health stats repository error: " + err.Error())
	}
	return nil
}

func (hs *HealthService) AddWater(ctx context.Context, uid uuid.UUID, ml int) error {
	if ml <= 0 || ml > maxWaterPerLog {
		return errors.Join(errorvalues.ErrValidation, errors.New("water amount must be between 1 and 5000 ml"))
	}
	return hs.AddStat(ctx, uid, &StatRequest{Type: entity.StatWater, Value: strconv.Itoa(ml)})
}

func (hs *HealthService) TodayWater(ctx context.Context, uid uuid.UUID) (int, error) {
	from, to, _ := bizday.Bounds(bizday.Today(hs.now()))
	stats, err := hs.stats.ListBetween(ctx, uid, []string{entity.StatWater}, from, to)
	if err != nil {
		return 0, errors.New("health stats repository error: " + err.Error())
	}
	total := 0
	for _, s := range stats {
		total += waterMl(s.Value)
	}
	return total, nil
}

// WaterHistory sums water per business day over the last days, oldest first. Days without logs are omitted.
func (hs *HealthService) WaterHistory(ctx context.Context, uid uuid.UUID, days int) ([]entity.WaterDay, error) {
	from, to := hs.window(days)
	stats, err := hs.stats.ListBetween(ctx, uid, []string{entity.StatWater}, from, to)
	if err != nil {
		return nil, errors.New("health stats repository error: " + err.Error())
	}
	totals := make(map[string]int)
	for _, s := range stats {
		totals[bizday.Of(s.RecordedAt)] += waterMl(s.Value)
	}
	history := make([]entity.WaterDay, 0, len(totals))
	for day, ml := range totals {
		history = append(history, entity.WaterDay{Date: day, TotalMl: ml})
	}
	sort.Slice(history, func(i, j int) bool { return history[i].Date < history[j].Date })
	return history, nil
}

func (hs *HealthService) WaterGoal(ctx context.Context, uid uuid.UUID) int {
	settings, err := loadSettings(ctx, hs.settings, uid)
	if err != nil {
		hs.logger.Error("water goal: loading settings", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return defaultWaterGoal
	}
	if settings.WaterGoal <= 0 {
		return defaultWaterGoal
	}
	return settings.WaterGoal
}

func (hs *HealthService) UpdateWaterGoal(ctx context.Context, uid uuid.UUID, ml int) error {
	if ml < 500 || ml > 10000 {
		return errors.Join(errorvalues.ErrValidation, errors.New("water goal must be between 500 and 10000 ml"))
	}
	return wrapSettingsErr(hs.settings.UpdateWaterGoal(ctx, uid, ml))
}

func (hs *HealthService) LatestStats(ctx context.Context, uid uuid.UUID) (map[string]string, error) {
	stats, err := hs.stats.Latest(ctx, uid)
	if err != nil {
		return nil, errors.New("health stats repository error: " + err.Error())
	}
	latest := make(map[string]string, len(stats))
	for _, s := range stats {
		if _, ok := latest[s.Type]; !ok {
			latest[s.Type] = s.Value
		}
	}
	return latest, nil
}

func (hs *HealthService) AIContext(ctx context.Context, uid uuid.UUID) string {
	settings, err := loadSettings(ctx, hs.settings, uid)
	if err != nil {
		hs.logger.Error("ai context: loading settings", slog.String("uid", uid.String()), slog.String("error", err.Error()))
		return ""
	}
	return settings.AIContext
}

func (hs *HealthService) UpdateAIContext(ctx context.Context, uid uuid.UUID, aiContext string) error {
	aiContext = strings.TrimSpace(aiContext)
	if len(aiContext) > maxAIContextLen {
		return errors.Join(errorvalues.ErrValidation, errors.New("ai context is too long"))
	}
	return wrapSettingsErr(hs.settings.UpdateAIContext(ctx, uid, aiContext))
}

func (hs *HealthService) UpdateBiometric(ctx context.Context, uid uuid.UUID, enabled bool) error {
	return wrapSettingsErr(hs.settings.UpdateBiometric(ctx, uid, enabled))
}

func (hs *HealthService) Sync(ctx context.Context, uid uuid.UUID, entries []SyncEntry) error {
	for i := range entries {
		if err := validateStruct(entries[i]); err != nil {
			return err
		}
	}
	for _, e := range entries {
		from, to, err := bizday.Bounds(e.Date)
		if err != nil {
			return errorvalues.ErrInvalidDate
		}
		err = hs.stats.UpsertInRange(ctx, &entity.HealthStat{
			UserID:     uid,
			Type:       e.Type,
			Value:      e.Value,
			RecordedAt: from,
		}, from, to)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				return err
			}
			return errors.New("health stats repository error: " + err.Error())
		}
	}
	return nil
}

func (hs *HealthService) SyncHistory(ctx context.Context, uid uuid.UUID, days int) ([]entity.HealthStat, error) {
	from, to := hs.window(days)
	stats, err := hs.stats.ListBetween(ctx, uid, syncTypes, from, to)
	if err != nil {
		return nil, errors.New("health stats repository error: " + err.Error())
	}
	return stats, nil
}

// window covers the last days business days including today.
func (hs *HealthService) window(days int) (time.Time, time.Time) {
	if days <= 0 {
		days = 7
	}
	if days > maxHistoryDays {
		days = maxHistoryDays
	}
	now := hs.now()
	from, _, _ := bizday.Bounds(bizday.DaysAgo(now, days-1))
	_, to, _ := bizday.Bounds(bizday.Today(now))
	return from, to
}

func waterMl(value string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return int(v)
}

func wrapSettingsErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, errorvalues.ErrUserNotFound) {
		return err
	}
	return errors.New("settings repository error: " + err.Error())
}
