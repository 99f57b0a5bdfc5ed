// @title MyFit API
// @description API for fitness and nutrition tracker "MyFit"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/limbo/myfit/internal/api"
	"github.com/limbo/myfit/internal/cache"
	"github.com/limbo/myfit/internal/llm"
	"github.com/limbo/myfit/internal/metrics"
	"github.com/limbo/myfit/internal/provider/edamam"
	"github.com/limbo/myfit/internal/provider/exercisedb"
	"github.com/limbo/myfit/internal/repository"
	"github.com/limbo/myfit/internal/service"
	"github.com/limbo/myfit/pkg/cleanup"
	"github.com/limbo/myfit/pkg/config"
	jwtservice "github.com/limbo/myfit/pkg/jwt_service"
)

const (
	lookupCacheTTL  = 12 * time.Hour
	shutdownTimeout = 15 * time.Second
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	setUpLogger(cfg.GetStringOr("LOG_LEVEL", "info"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)

	promRegistry := metrics.NewRegistry(pgxpoolprometheus.NewCollector(pool, map[string]string{"db_name": dbCfg.DB}))
	metricsManager := metrics.NewManager("myfit", "api", promRegistry)

	usersRepo := repository.NewUsersRepo(pool)
	settingsRepo := repository.NewSettingsRepo(pool)
	exercisesRepo := repository.NewExercisesRepo(pool)
	logsRepo := repository.NewWorkoutLogsRepo(pool)
	mealsRepo := repository.NewMealsRepo(pool)
	planRepo := repository.NewDietPlanRepo(pool)
	foodsRepo := repository.NewFoodsRepo(pool)
	statsRepo := repository.NewHealthStatsRepo(pool)
	bodyRepo := repository.NewBodyCompositionRepo(pool)

	aiClient, err := llm.NewClient(ctx, llm.Config{
		APIKey: cfg.GetString("GOOGLE_GEMINI_API_KEY"),
		Model:  cfg.GetStringOr("GEMINI_MODEL", llm.DefaultModel),
	}, metricsManager)
	if err != nil {
		log.Fatal("creating gemini client error: " + err.Error())
	}
	if !aiClient.Enabled() {
		slog.Warn("GOOGLE_GEMINI_API_KEY is not set, coaching and lookups run without the model")
	}

	providerHTTP := &http.Client{Timeout: 15 * time.Second}
	nutrition := &edamam.Client{
		AppID:      cfg.GetString("EDAMAM_APP_ID"),
		AppKey:     cfg.GetString("EDAMAM_APP_KEY"),
		HTTPClient: providerHTTP,
	}
	exercises := &exercisedb.Client{
		APIKey:     cfg.GetString("X_RAPIDAPI_KEY"),
		HTTPClient: providerHTTP,
	}

	servicesList := &api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		WorkoutService: service.NewWorkoutService(settingsRepo, exercisesRepo, logsRepo, slog.Default()),
		DietService:    service.NewDietService(mealsRepo, planRepo, foodsRepo, logsRepo, slog.Default()),
		HealthService:  service.NewHealthService(statsRepo, settingsRepo, slog.Default()),
		CoachService:   service.NewCoachService(settingsRepo, logsRepo, mealsRepo, bodyRepo, aiClient, slog.Default()),
		LookupService: service.NewLookupService(service.LookupDeps{
			Foods:     foodsRepo,
			AI:        aiClient,
			Nutrition: nutrition,
			Exercises: exercises,
			Cache:     cache.NewLookup(cfg.GetInt("LOOKUP_CACHE_MB", 32), lookupCacheTTL),
			Metrics:   metricsManager,
			Logger:    slog.Default(),
		}),
		JwtService:       jwtservice.NewWithTTL(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
		Metrics:          metricsManager,
		MetricsHandler:   promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
		LookupRatePerMin: cfg.GetInt("LOOKUP_RATE_LIMIT_PER_MIN", 30),
		DB:               pool,
	}
	if limiter := setUpRateLimiter(ctx, cfg); limiter != nil {
		servicesList.RateLimiter = limiter
	}
	serv := api.New(servicesList)

	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return serv.Shutdown(shutdownCtx)
		},
	})

	addr := cfg.GetStringOr("API_ADDRESS", ":8080")
	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(addr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err = <-errCh:
		if err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
		}
	}
	cleanup.CleanUp()
}

func setUpLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

// setUpRateLimiter returns nil when redis is not configured, lookups are then unlimited.
func setUpRateLimiter(ctx context.Context, cfg *config.Config) *redis_rate.Limiter {
	addr := cfg.GetString("REDIS_ADDRESS")
	if addr == "" {
		slog.Warn("REDIS_ADDRESS is not set, lookup rate limiting disabled")
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.GetString("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("failed to ping redis", slog.String("error", err.Error()))
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    rdb.Close,
	})
	return redis_rate.NewLimiter(rdb)
}
