package llm_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/myfit/internal/error_values"
	"github.com/limbo/myfit/internal/llm"
	"github.com/limbo/myfit/internal/metrics"
)

func fakeGemini(t *testing.T, answer string, gotBody *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "gemini-test:generateContent") {
			http.NotFound(w, r)
			return
		}
		body, _ := io.ReadAll(r.Body)
		if gotBody != nil {
			*gotBody = string(body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":`+answer+`}]}}]}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerate(t *testing.T) {
	var body string
	srv := fakeGemini(t, `"supino reto"`, &body)
	mgr := metrics.NewTestManager()

	c, err := llm.NewClient(context.Background(), llm.Config{APIKey: "k", Model: "gemini-test", BaseURL: srv.URL + "/"}, mgr)
	require.NoError(t, err)
	require.True(t, c.Enabled())

	out, err := c.Generate(context.Background(), llm.Request{Prompt: "traduza", Schema: llm.FoodListSchema})
	require.NoError(t, err)
	assert.Equal(t, "supino reto", out)
	assert.Contains(t, body, "traduza")
	assert.Contains(t, body, "application/json")
	assert.Equal(t, float64(1), testutil.ToFloat64(mgr.CounterAIRequests.WithLabelValues("ok")))
}

func TestGenerateWithoutKey(t *testing.T) {
	mgr := metrics.NewTestManager()
	c, err := llm.NewClient(context.Background(), llm.Config{}, mgr)
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	_, err = c.Generate(context.Background(), llm.Request{Prompt: "oi"})
	assert.ErrorIs(t, err, errorvalues.ErrAIUnavailable)
	assert.Equal(t, float64(1), testutil.ToFloat64(mgr.CounterAIRequests.WithLabelValues("unavailable")))
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`)
	}))
	defer srv.Close()

	c, err := llm.NewClient(context.Background(), llm.Config{APIKey: "k", Model: "gemini-test", BaseURL: srv.URL + "/"}, nil)
	require.NoError(t, err)
	_, err = c.Generate(context.Background(), llm.Request{Prompt: "oi"})
	assert.Error(t, err)
}
