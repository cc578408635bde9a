package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/salesdesk/pkg/cookie"
	"github.com/dmitrymomot/salesdesk/pkg/environment"
)

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

type appConfig struct {
	Env  environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name string                  `env:"APP_NAME" envDefault:"salesdesk"`
}

// stateConfig selects where visitor workspaces live.
type stateConfig struct {
	Store    string        `env:"STATE_STORE" envDefault:"memory"`
	TTL      time.Duration `env:"STATE_TTL" envDefault:"24h"`
	Capacity int           `env:"STATE_CAPACITY" envDefault:"10000"`

	CookieName string `env:"VISITOR_COOKIE" envDefault:"salesdesk_visitor"`
}

// visitorCookies builds the manager that signs visitor cookies. Development
// runs without COOKIE_SECRETS get a per-process secret, so visitors start
// over on every restart.
func visitorCookies(env environment.Environment, cfg cookie.Config, ttl time.Duration, log *slog.Logger) (*cookie.Manager, error) {
	if cfg.Secrets == "" && env == environment.Development {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate cookie secret: %w", err)
		}
		cfg.Secrets = hex.EncodeToString(secret)
		log.Warn("COOKIE_SECRETS is not set, using a temporary secret")
	}

	m, err := cookie.NewFromConfig(cfg, cookie.WithMaxAge(int(ttl.Seconds())))
	if err != nil {
		return nil, fmt.Errorf("visitor cookie: %w", err)
	}
	return m, nil
}
