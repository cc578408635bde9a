package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/pkg/environment"
	"github.com/dmitrymomot/salesdesk/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to json", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithTextFormatter()).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("context extractors run per record", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(key{}).(string); ok {
					return logger.VisitorID(v), true
				}
				return slog.Attr{}, false
			}),
		)

		log.InfoContext(context.WithValue(context.Background(), key{}, "v-1"), "opened")
		assert.Equal(t, "v-1", decode(t, buf)["visitor_id"])
	})

	t.Run("extractors survive With", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(func(context.Context) (slog.Attr, bool) {
			return logger.RequestID("r-9"), true
		}))

		log.With(logger.Form("sale")).WithGroup("ctx").InfoContext(context.Background(), "submitted")
		entry := decode(t, buf)
		group, ok := entry["ctx"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "r-9", group["request_id"])
		assert.Equal(t, "sale", entry["form"])
	})

	t.Run("empty extractor result is not logged", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(func(context.Context) (slog.Attr, bool) {
			return slog.Attr{}, false
		}))

		log.Info("plain")
		assert.NotContains(t, decode(t, buf), "")
	})
}

func TestWithEnvironment(t *testing.T) {
	t.Parallel()

	t.Run("development logs debug as text", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithEnvironment(environment.Development, "svc"), logger.WithOutput(buf)).Debug("msg")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "service=svc")
	})

	t.Run("production logs json and drops debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithEnvironment(environment.Production, "svc"), logger.WithOutput(buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())

		log.Info("shown")
		entry := decode(t, buf)
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "svc", entry["service"])
	})

	t.Run("staging", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithEnvironment(environment.Staging, "svc"), logger.WithOutput(buf)).Info("msg")
		assert.Equal(t, "staging", decode(t, buf)["env"])
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.VisitorID("").Equal(slog.Attr{}))
	assert.Equal(t, "request_id", logger.RequestID("r-1").Key)
	assert.Equal(t, "customers", logger.Table("customers").Value.String())
	assert.Equal(t, "select_all", logger.Action("select_all").Value.String())
	assert.Equal(t, slog.KindDuration, logger.Duration(time.Second).Value.Kind())

	g := logger.Group("req", slog.String("id", "1"))
	assert.Equal(t, "req", g.Key)
}
