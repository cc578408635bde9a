package dashboard

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/salesdesk/internal/workspace"
	"github.com/dmitrymomot/salesdesk/pkg/cookie"
	"github.com/dmitrymomot/salesdesk/pkg/environment"
	"github.com/dmitrymomot/salesdesk/pkg/httpserver"
	"github.com/dmitrymomot/salesdesk/pkg/requestid"
)

// RouterOptions configures the application router.
type RouterOptions struct {
	Env environment.Environment
	// Cookies signs the visitor cookie named CookieName.
	Cookies    *cookie.Manager
	CookieName string
	Logger     *slog.Logger
	// Checks gate /health/ready.
	Checks []httpserver.Check
}

// Router mounts the dashboard behind request ID, environment and visitor
// middleware, plus liveness and readiness checks outside of them.
func Router(svc *Service, opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.CleanPath)
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(opts.Logger, 2*time.Second, opts.Checks...))

	r.Group(func(r chi.Router) {
		r.Use(environment.Middleware(opts.Env))
		r.Use(workspace.Middleware(opts.Cookies, opts.CookieName))
		r.Mount("/", svc.Handle())
	})

	return r
}
