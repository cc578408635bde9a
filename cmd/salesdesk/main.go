// Command salesdesk serves the sales dashboard.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/salesdesk/internal/catalog"
	"github.com/dmitrymomot/salesdesk/internal/dashboard"
	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/config"
	"github.com/dmitrymomot/salesdesk/pkg/cookie"
	"github.com/dmitrymomot/salesdesk/pkg/environment"
	"github.com/dmitrymomot/salesdesk/pkg/httpserver"
	"github.com/dmitrymomot/salesdesk/pkg/logger"
	"github.com/dmitrymomot/salesdesk/pkg/redis"
	"github.com/dmitrymomot/salesdesk/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		app       appConfig
		state     stateConfig
		cookieCfg cookie.Config
		httpCfg   httpserver.Config
	)
	if err := config.Load(&app); err != nil {
		return err
	}
	if err := config.Load(&state); err != nil {
		return err
	}
	if err := config.Load(&cookieCfg); err != nil {
		return err
	}
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			workspace.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	source, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	cookies, err := visitorCookies(app.Env, cookieCfg, state.TTL, log)
	if err != nil {
		return err
	}

	store, checks, err := openStore(ctx, state, log)
	if err != nil {
		return err
	}

	svc := dashboard.NewService(source, store, log)
	router := dashboard.Router(svc, dashboard.RouterOptions{
		Env:        app.Env,
		Cookies:    cookies,
		CookieName: state.CookieName,
		Logger:     log,
		Checks:     checks,
	})

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string, log *slog.Logger) {
			log.Info("salesdesk ready", slog.String("url", "http://"+addr))
		}),
	)
	return srv.Run(ctx, router)
}

// openStore builds the workspace store named by cfg.Store along with the
// readiness checks that cover it.
func openStore(ctx context.Context, cfg stateConfig, log *slog.Logger) (workspace.Store, []httpserver.Check, error) {
	switch cfg.Store {
	case storeMemory:
		store := workspace.NewMemoryStore(cfg.Capacity, cfg.TTL)
		log.Info("workspace store", slog.String("kind", storeMemory), slog.Int("capacity", cfg.Capacity))
		return store, []httpserver.Check{{Name: "workspace", Fn: store.Ping}}, nil

	case storeRedis:
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		store := workspace.NewRedisStore(client, cfg.TTL)
		log.Info("workspace store", slog.String("kind", storeRedis))
		return store, []httpserver.Check{
			{Name: "redis", Fn: redis.Healthcheck(client)},
			{Name: "workspace", Fn: store.Ping},
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown STATE_STORE %q", cfg.Store)
}
