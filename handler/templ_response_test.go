package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/handler"
)

func datastarRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set("Accept", "text/event-stream")
	return r
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("plain request renders html", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		err := handler.Templ(htmlComponent("<h1>Sales</h1>")).Render(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<h1>Sales</h1>", w.Body.String())
	})

	t.Run("datastar request renders patch", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		err := handler.Templ(htmlComponent(`<div id="toast">hi</div>`),
			handler.WithTarget("#toast-container"),
			handler.WithPatchMode(handler.PatchPrepend),
		).Render(w, datastarRequest(http.MethodPost, "/"))

		require.NoError(t, err)
		body := w.Body.String()
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#toast-container")
		assert.Contains(t, body, "prepend")
		assert.Contains(t, body, `<div id="toast">hi</div>`)
	})

	t.Run("render error is returned", func(t *testing.T) {
		t.Parallel()
		err := handler.Templ(failingComponent{}).Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestTemplMulti(t *testing.T) {
	t.Parallel()

	resp := handler.TemplMulti(
		handler.Patch(htmlComponent(`<div id="a">A</div>`)),
		handler.Patch(htmlComponent(`<div id="b">B</div>`)),
	)

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, `<div id="a">A</div><div id="b">B</div>`, w.Body.String())

	w = httptest.NewRecorder()
	require.NoError(t, resp.Render(w, datastarRequest(http.MethodPost, "/")))
	body := w.Body.String()
	assert.Contains(t, body, `<div id="a">A</div>`)
	assert.Contains(t, body, `<div id="b">B</div>`)
	assert.Less(t, indexOf(body, `id="a"`), indexOf(body, `id="b"`))
}

func TestTemplMultiPartial(t *testing.T) {
	t.Parallel()

	resp := handler.TemplMultiPartial(htmlComponent("<html>page</html>"),
		handler.Patch(htmlComponent(`<div id="a">A</div>`)),
	)

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, "<html>page</html>", w.Body.String())
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/customers").Render(w, httptest.NewRequest(http.MethodPost, "/forms/customer/submit", nil)))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/customers", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	require.NoError(t, handler.Redirect("/customers").Render(w, datastarRequest(http.MethodPost, "/")))
	assert.Contains(t, w.Body.String(), "/customers")
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
