package workspace

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/salesdesk/pkg/cookie"
	"github.com/dmitrymomot/salesdesk/pkg/logger"
)

// DefaultCookieName names the visitor cookie unless configured otherwise.
const DefaultCookieName = "salesdesk_visitor"

type visitorKey struct{}

func WithVisitor(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorKey{}, visitorID)
}

// VisitorFromContext returns the visitor ID set by the middleware, or "".
func VisitorFromContext(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}

// Middleware identifies the visitor by a signed cookie, issuing a fresh
// random ID when the cookie is missing, unsigned or tampered with.
func Middleware(cookies *cookie.Manager, name string) func(http.Handler) http.Handler {
	if name == "" {
		name = DefaultCookieName
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := visitorID(r, cookies, name)
			if err != nil {
				id = uuid.NewString()
				cookies.SetSigned(w, name, id)
			}
			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
		})
	}
}

func visitorID(r *http.Request, cookies *cookie.Manager, name string) (string, error) {
	value, err := cookies.GetSigned(r, name)
	if err != nil {
		return "", err
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return "", ErrInvalidVisitor
	}
	return id.String(), nil
}

// LoggerExtractor adds the visitor ID to log records.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := VisitorFromContext(ctx); id != "" {
			return logger.VisitorID(id), true
		}
		return slog.Attr{}, false
	}
}
