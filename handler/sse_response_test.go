package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/handler"
)

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("mixes signals and elements", func(t *testing.T) {
		t.Parallel()

		resp := handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendSignals(map[string]any{"fields": map[string]any{"sale": "$12,000"}}); err != nil {
				return err
			}
			return stream.SendComponent(htmlComponent(`<p id="error-sale"></p>`))
		})

		w := httptest.NewRecorder()
		require.NoError(t, resp.Render(w, datastarRequest(http.MethodPost, "/forms/sale/field")))

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"sale":"$12,000"`)
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, `<p id="error-sale"></p>`)
	})

	t.Run("single signal", func(t *testing.T) {
		t.Parallel()

		resp := handler.SSE(func(stream handler.StreamContext) error {
			return stream.SendSignal("busy", false)
		})

		w := httptest.NewRecorder()
		require.NoError(t, resp.Render(w, datastarRequest(http.MethodPost, "/")))
		assert.Contains(t, w.Body.String(), `{"busy":false}`)
	})

	t.Run("plain request is rejected", func(t *testing.T) {
		t.Parallel()

		resp := handler.SSE(func(handler.StreamContext) error { return nil })
		err := resp.Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		assert.ErrorIs(t, err, handler.ErrDataStarRequired)
	})

	t.Run("send multiple", func(t *testing.T) {
		t.Parallel()

		resp := handler.SSE(func(stream handler.StreamContext) error {
			return stream.SendMultiple(
				handler.Patch(htmlComponent(`<div id="one"></div>`)),
				handler.Patch(htmlComponent(`<div id="two"></div>`)),
			)
		})

		w := httptest.NewRecorder()
		require.NoError(t, resp.Render(w, datastarRequest(http.MethodPost, "/")))
		assert.Contains(t, w.Body.String(), `id="one"`)
		assert.Contains(t, w.Body.String(), `id="two"`)
	})
}
