package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v9"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/myfit/internal/api"
	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/metrics"
	"github.com/limbo/myfit/internal/service/mocks"
	"github.com/limbo/myfit/pkg/entity"
	jwtservice "github.com/limbo/myfit/pkg/jwt_service"
)

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwtServ := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtServ,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtServ.GenerateToken(&entity.User{ID: userID, Name: username})
	require.NoError(t, err)
	foreignToken, err := jwtservice.New("other secret").GenerateToken(&entity.User{ID: userID, Name: username})
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		Header       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "successful auth",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.User{ID: userID}, nil)
			},
		},
		{Desc: "no header", ExpectedCode: http.StatusUnauthorized, MockPrepFunc: func() {}},
		{Desc: "not bearer", Header: "Basic " + token, ExpectedCode: http.StatusUnauthorized, MockPrepFunc: func() {}},
		{Desc: "signed with another secret", Header: "Bearer " + foreignToken, ExpectedCode: http.StatusUnauthorized, MockPrepFunc: func() {}},
		{
			Desc:         "deleted user",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:         "user lookup failure",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
			if tc.Header != "" {
				req.Header.Set("Authorization", tc.Header)
			}
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

type fakeLimiter struct {
	allowed int
	err     error
	keys    []string
}

func (l *fakeLimiter) Allow(_ context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	l.keys = append(l.keys, key)
	if l.err != nil {
		return nil, l.err
	}
	return &redis_rate.Result{Limit: limit, Allowed: l.allowed, RetryAfter: 1500 * time.Millisecond}, nil
}

func TestRateLimitedLookupRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	lService := mocks.NewMockLookupServiceI(ctrl)
	jwtServ := jwtservice.New("secret")
	limiter := &fakeLimiter{}
	mgr := metrics.NewTestManager()
	serv := api.New(&api.ServicesList{
		UserService:   uService,
		LookupService: lService,
		JwtService:    jwtServ,
		Metrics:       mgr,
		RateLimiter:   limiter,
	})
	token, err := jwtServ.GenerateToken(&entity.User{ID: userID, Name: username})
	require.NoError(t, err)
	uService.EXPECT().GetByID(gomock.Any(), userID).Return(&entity.User{ID: userID}, nil).AnyTimes()

	newReq := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup/foods?q=aveia", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		return req
	}

	t.Run("over the limit", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, newReq())
		assert.Equal(t, http.StatusTooManyRequests, rr.Result().StatusCode)
		assert.Equal(t, "2", rr.Header().Get("Retry-After"))
		assert.Equal(t, []string{"lookup:" + userID.String()}, limiter.keys)
		assert.Equal(t, float64(1), testutil.ToFloat64(mgr.CounterRateLimited))
	})
	t.Run("allowed", func(t *testing.T) {
		limiter.allowed = 1
		lService.EXPECT().SearchFoods(gomock.Any(), userID, "aveia").Return([]entity.FoodMatch{{Name: "Aveia em flocos"}})
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, newReq())
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("limiter down lets request through", func(t *testing.T) {
		limiter.err = errors.New("redis: connection refused")
		lService.EXPECT().SearchFoods(gomock.Any(), userID, "aveia").Return([]entity.FoodMatch{})
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, newReq())
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("other routes are not limited", func(t *testing.T) {
		limiter.err = nil
		limiter.allowed = 0
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

type panicRecTestHandler struct {
	panic  bool
	called bool
}

func (p *panicRecTestHandler) ServeHTTP(http.ResponseWriter, *http.Request) {
	p.called = true
	if p.panic {
		panic("YOLO")
	}
}

func TestPanicRecovery(t *testing.T) {
	mgr := metrics.NewTestManager()

	next := &panicRecTestHandler{}
	rr := httptest.NewRecorder()
	api.PanicRecovery(mgr)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, next.called)
	assert.Equal(t, float64(0), testutil.ToFloat64(mgr.CounterHandleRequestPanic))

	next = &panicRecTestHandler{panic: true}
	rr = httptest.NewRecorder()
	api.PanicRecovery(mgr)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, next.called)
	assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	assert.Equal(t, float64(1), testutil.ToFloat64(mgr.CounterHandleRequestPanic))
}

func TestRequestMetricsAndMetricsRoute(t *testing.T) {
	reg := metrics.NewRegistry()
	mgr := metrics.NewManager("myfit", "test", reg)
	serv := api.New(&api.ServicesList{
		Metrics:        mgr,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/workout/next", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)

	assert.Equal(t, float64(1), testutil.ToFloat64(mgr.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(mgr.CounterRequests.WithLabelValues("GET", "401")))

	rr = httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.Contains(t, rr.Body.String(), "myfit_test_request")
}

func TestRecoveredPanicIsCountedAsServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	lService := mocks.NewMockLookupServiceI(ctrl)
	mgr := metrics.NewTestManager()
	serv := api.New(&api.ServicesList{LookupService: lService, Metrics: mgr})

	lService.EXPECT().ExerciseImage(gomock.Any(), "0001").DoAndReturn(
		func(context.Context, string) ([]byte, string, error) {
			panic("image cache corrupted")
		})
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/lookup/exercises/0001/image", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	assert.Equal(t, float64(1), testutil.ToFloat64(mgr.CounterHandleRequestPanic))
	assert.Equal(t, float64(1), testutil.ToFloat64(mgr.CounterRequests.WithLabelValues("GET", "500")))
}
