package exercisedb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/myfit/internal/error_values"
)

func TestSearchByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, rapidHost, r.Header.Get("X-RapidAPI-Host"))
		assert.Equal(t, "/exercises/name/bench press", r.URL.Path)
		assert.Equal(t, "8", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"id":"0025","name":"barbell bench press","target":"pectorals","equipment":"barbell","gifUrl":"https://x/0025.gif"}]`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "k"}
	got, err := c.SearchByName(context.Background(), " Bench Press ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "0025", got[0].ID)
	assert.Equal(t, "pectorals", got[0].TargetMuscle)
	assert.Equal(t, "https://x/0025.gif", got[0].GifURL)
}

func TestImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("exerciseId") != "0025" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		assert.Equal(t, "360", r.URL.Query().Get("resolution"))
		w.Header().Set("Content-Type", "image/gif")
		_, _ = w.Write([]byte("GIF89a"))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "k"}
	data, ct, err := c.Image(context.Background(), "0025")
	require.NoError(t, err)
	assert.Equal(t, "image/gif", ct)
	assert.Equal(t, []byte("GIF89a"), data)

	_, _, err = c.Image(context.Background(), "9999")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)

	_, _, err = (&Client{}).Image(context.Background(), "0025")
	assert.ErrorIs(t, err, errorvalues.ErrProviderUnavailable)
}
