package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/salesdesk/pkg/environment"
)

// configCache holds one parsed value per config type.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once

	parseOptions = env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(environment.Environment("")): func(v string) (any, error) {
				return environment.Parse(v), nil
			},
		},
	}
)

// Parse fills v from the environment without caching. A .env file in the
// working directory is loaded once first, if present.
func Parse[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, parseOptions); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// Load is Parse with a per-type cache: the first successful call for a type
// wins and later calls get a copy of that value.
//
//	type StateConfig struct {
//		Store    string        `env:"STATE_STORE" envDefault:"memory"`
//		TTL      time.Duration `env:"STATE_TTL" envDefault:"24h"`
//		Capacity int           `env:"STATE_CAPACITY" envDefault:"10000"`
//	}
//
//	var cfg StateConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		if err = Parse(v); err != nil {
			return
		}
		globalCache.mu.Lock()
		globalCache.values[typeName] = *v
		globalCache.mu.Unlock()
	})
	if err != nil {
		// Allow a later call to retry after the environment is fixed.
		globalCache.mu.Lock()
		delete(globalCache.onces, typeName)
		globalCache.mu.Unlock()
		return err
	}

	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
