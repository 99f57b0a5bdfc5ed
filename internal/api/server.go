package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/limbo/myfit/internal/metrics"
	"github.com/limbo/myfit/internal/service"
)

const defaultLookupPerMin = 30

type Server struct {
	mx             *chi.Mux
	mu             sync.Mutex
	httpServer     *http.Server
	userService    service.UserServiceI
	workoutService service.WorkoutServiceI
	dietService    service.DietServiceI
	healthService  service.HealthServiceI
	coachService   service.CoachServiceI
	lookupService  service.LookupServiceI
	jwtService     JWTServiceI
	metrics        *metrics.Manager
	metricsHandler http.Handler
	rateLimiter    RequestRateLimiter
	lookupPerMin   int
	db             Pinger
}

type ServicesList struct {
	UserService    service.UserServiceI
	WorkoutService service.WorkoutServiceI
	DietService    service.DietServiceI
	HealthService  service.HealthServiceI
	CoachService   service.CoachServiceI
	LookupService  service.LookupServiceI
	JwtService     JWTServiceI
	Metrics        *metrics.Manager
	// Served on /metrics when set
	MetricsHandler http.Handler
	// Lookup routes are not limited when nil
	RateLimiter      RequestRateLimiter
	LookupRatePerMin int
	DB               Pinger
}

func New(servicesOptions *ServicesList) *Server {
	perMin := servicesOptions.LookupRatePerMin
	if perMin <= 0 {
		perMin = defaultLookupPerMin
	}
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		workoutService: servicesOptions.WorkoutService,
		dietService:    servicesOptions.DietService,
		healthService:  servicesOptions.HealthService,
		coachService:   servicesOptions.CoachService,
		lookupService:  servicesOptions.LookupService,
		jwtService:     servicesOptions.JwtService,
		metrics:        servicesOptions.Metrics,
		metricsHandler: servicesOptions.MetricsHandler,
		rateLimiter:    servicesOptions.RateLimiter,
		lookupPerMin:   perMin,
		db:             servicesOptions.DB,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, RequestMetrics(s.metrics), PanicRecovery(s.metrics))

	s.mx.Get("/healthz", s.Healthz)
	if s.metricsHandler != nil {
		s.mx.Handle("/metrics", s.metricsHandler)
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		// loaded by <img> tags, which can't send the bearer token
		r.Get("/lookup/exercises/{id}/image", s.ExerciseImage)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Get("/me", s.Me)
			r.Delete("/me", s.DeleteAccount)
			r.Put("/me/password", s.ChangePassword)

			r.Get("/settings", s.GetSettings)
			r.Put("/settings/split", s.UpdateSplit)
			r.Put("/settings/rest-time", s.UpdateRestTime)
			r.Put("/settings/water-goal", s.UpdateWaterGoal)
			r.Get("/settings/ai-context", s.GetAIContext)
			r.Put("/settings/ai-context", s.UpdateAIContext)
			r.Put("/settings/biometric", s.UpdateBiometric)

			r.Get("/exercises", s.ListExercises)
			r.Post("/exercises", s.AddExercise)
			r.Post("/exercises/import", s.ImportCatalog)
			r.Put("/exercises/{id}/target-weight", s.UpdateTargetWeight)
			r.Delete("/exercises/{id}", s.DeleteExercise)
			r.Get("/exercises/{id}/logs", s.RecentLogs)
			r.Post("/workout/logs", s.LogSet)
			r.Get("/workout/next", s.NextWorkout)

			r.Get("/diet/macros", s.DayMacros)
			r.Get("/diet/meals", s.MealsByDate)
			r.Post("/diet/meals", s.SaveMeal)
			r.Put("/diet/meals/{id}", s.SaveMeal)
			r.Put("/diet/meals/{id}/completed", s.SetMealCompleted)
			r.Delete("/diet/meals/{id}", s.DeleteMeal)
			r.Get("/diet/history", s.DayHistory)
			r.Get("/diet/plan", s.ListPlan)
			r.Post("/diet/plan", s.SavePlanItem)
			r.Put("/diet/plan", s.ReplacePlan)
			r.Put("/diet/plan/{id}", s.SavePlanItem)
			r.Delete("/diet/plan/{id}", s.DeletePlanItem)
			r.Get("/diet/reminders", s.MealReminders)
			r.Post("/foods", s.CreateCustomFood)

			r.Get("/health/stats", s.LatestStats)
			r.Post("/health/stats", s.AddStat)
			r.Post("/health/water", s.AddWater)
			r.Get("/health/water/today", s.TodayWater)
			r.Get("/health/water/history", s.WaterHistory)
			r.Post("/health/sync", s.Sync)
			r.Get("/health/sync", s.SyncHistory)

			r.Get("/coach/insight", s.WeeklyInsight)
			r.Post("/coach/bioimpedance", s.AnalyzeBioimpedance)
			r.Get("/coach/body-composition", s.BodyCompositionHistory)

			r.Group(func(r chi.Router) {
				if s.rateLimiter != nil {
					r.Use(RateLimit(s.rateLimiter, "lookup", s.lookupPerMin, s.metrics))
				}
				r.Get("/lookup/foods", s.SearchFoods)
				r.Get("/lookup/exercises", s.SearchExercises)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run blocks until the server is shut down. http.ErrServerClosed is not reported.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	slog.Info("api server started", slog.String("address", addr))
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			GetLoggerFromCtx(r.Context()).Error("health check: database ping", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("database unavailable"))
			return
		}
	}
	w.Write([]byte("ok"))
}
