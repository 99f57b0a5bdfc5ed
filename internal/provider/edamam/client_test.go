package edamam

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/myfit/internal/error_values"
)

func TestSearchFoods(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/food-database/v2/parser", r.URL.Path)
		assert.Equal(t, "grilled chicken", r.URL.Query().Get("ingr"))
		assert.Equal(t, "id", r.URL.Query().Get("app_id"))
		hints := make([]string, 0, 10)
		for i := 0; i < 10; i++ {
			hints = append(hints, fmt.Sprintf(`{"food":{"label":"Chicken %d","image":"http://img/%d","nutrients":{"ENERC_KCAL":165.4,"PROCNT":31.02,"CHOCDF":0,"FAT":3.6}}}`, i, i))
		}
		_, _ = w.Write([]byte(`{"hints":[` + strings.Join(hints, ",") + `]}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, AppID: "id", AppKey: "key"}
	got, err := c.SearchFoods(context.Background(), "grilled chicken")
	require.NoError(t, err)
	require.Len(t, got, maxResults)
	assert.Equal(t, "Chicken 0", got[0].Name)
	assert.Equal(t, float64(165), got[0].Calories)
	assert.Equal(t, float64(31), got[0].Protein)
	assert.Equal(t, float64(4), got[0].Fat)
	assert.Equal(t, "100g", got[0].Unit)
}

func TestSearchFoodsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, AppID: "id", AppKey: "key"}
	_, err := c.SearchFoods(context.Background(), "rice")
	assert.ErrorContains(t, err, "status 401")

	_, err = (&Client{}).SearchFoods(context.Background(), "rice")
	assert.ErrorIs(t, err, errorvalues.ErrProviderUnavailable)
}
