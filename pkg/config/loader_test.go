package config_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/pkg/config"
	"github.com/dmitrymomot/salesdesk/pkg/environment"
)

type appConfig struct {
	Env      environment.Environment `env:"TEST_APP_ENV" envDefault:"development"`
	Name     string                  `env:"TEST_APP_NAME" envDefault:"salesdesk"`
	TTL      time.Duration           `env:"TEST_STATE_TTL" envDefault:"24h"`
	Capacity int                     `env:"TEST_STATE_CAPACITY" envDefault:"10000"`
}

type requiredConfig struct {
	URL string `env:"TEST_REQUIRED_URL,required"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
}

func TestParse(t *testing.T) {
	t.Setenv("TEST_APP_ENV", "prod")
	t.Setenv("TEST_STATE_TTL", "90m")

	var cfg appConfig
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, environment.Production, cfg.Env)
	assert.Equal(t, "salesdesk", cfg.Name)
	assert.Equal(t, 90*time.Minute, cfg.TTL)
	assert.Equal(t, 10000, cfg.Capacity)
}

func TestParse_Errors(t *testing.T) {
	var cfg requiredConfig
	assert.ErrorIs(t, config.Parse(&cfg), config.ErrParsingConfig)

	var nilCfg *appConfig
	assert.ErrorIs(t, config.Parse(nilCfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CACHED_VALUE", "second")

	var wg sync.WaitGroup
	results := make([]cachedConfig, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, config.Load(&results[i]))
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "first", got.Value)
	}
}

func TestLoad_RetriesAfterFailure(t *testing.T) {
	var cfg requiredConfig
	require.Error(t, config.Load(&cfg))

	t.Setenv("TEST_REQUIRED_URL", "redis://localhost:6379/0")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "redis://localhost:6379/0", cfg.URL)
}
