package cache_test

import (
	"testing"
	"time"

	"github.com/limbo/myfit/internal/cache"
	"github.com/limbo/myfit/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyNormalization(t *testing.T) {
	assert.Equal(t, cache.Key("food", "frango grelhado"), cache.Key("food", "  Frango   GRELHADO "))
	assert.NotEqual(t, cache.Key("food", "supino"), cache.Key("exercise", "supino"))
}

func TestLookupRoundTrip(t *testing.T) {
	c := cache.NewLookup(1, time.Hour)
	key := cache.Key("food", "banana")

	var miss []entity.FoodMatch
	assert.False(t, c.Get(key, &miss))

	matches := []entity.FoodMatch{{Name: "Banana prata", Calories: 98, Protein: 1.3, Carbs: 26, Fat: 0.1, Unit: "100g"}}
	require.NoError(t, c.Set(key, matches))

	var hit []entity.FoodMatch
	assert.True(t, c.Get(key, &hit))
	assert.Equal(t, matches, hit)
	assert.Equal(t, int64(1), c.Len())
}

func TestLookupDropsUndecodable(t *testing.T) {
	c := cache.NewLookup(1, time.Hour)
	key := cache.Key("food", "ovo")
	require.NoError(t, c.Set(key, "not a list"))

	var out []entity.FoodMatch
	assert.False(t, c.Get(key, &out))
	assert.Equal(t, int64(0), c.Len())
}
