package config_test

import (
	"testing"
	"time"

	"github.com/limbo/myfit/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("MYFIT_ENV_FILE", "./does-not-exist.env")
	t.Setenv("TEST_STR", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_DURATION", "1500ms")
	t.Setenv("TEST_BOOL", "true")

	cfg := config.New()
	assert.Equal(t, "value", cfg.GetString("TEST_STR"))
	assert.Equal(t, "fallback", cfg.GetStringOr("TEST_MISSING", "fallback"))
	assert.Equal(t, 42, cfg.GetInt("TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("TEST_BAD_INT", 1))
	assert.Equal(t, 1500*time.Millisecond, cfg.GetDuration("TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("TEST_MISSING", time.Second))
	assert.True(t, cfg.GetBool("TEST_BOOL", false))
	assert.Same(t, cfg, config.New())
}
