package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/handler"
	"github.com/dmitrymomot/salesdesk/pkg/binder"
)

type htmlComponent string

func (c htmlComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type failingComponent struct{}

func (failingComponent) Render(context.Context, io.Writer) error {
	return assert.AnError
}

type pageRequest struct {
	Page int
}

func TestWrap_BindersRunInOrder(t *testing.T) {
	t.Parallel()

	first := func(_ *http.Request, v any) error {
		v.(*pageRequest).Page = 1
		return nil
	}
	skipped := func(*http.Request, any) error {
		return binder.ErrBinderNotApplicable
	}
	second := func(_ *http.Request, v any) error {
		v.(*pageRequest).Page *= 5
		return nil
	}

	h := handler.HandlerFunc[handler.Context, pageRequest](func(_ handler.Context, req pageRequest) handler.Response {
		return handler.Templ(htmlComponent("page " + strconv.Itoa(req.Page)))
	})

	w := httptest.NewRecorder()
	handler.Wrap(h, handler.WithBinders[handler.Context, pageRequest](first, skipped, second))(
		w, httptest.NewRequest(http.MethodGet, "/", nil),
	)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "page 5", w.Body.String())
}

func TestWrap_BinderErrorGoesToErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.HandlerFunc[handler.Context, pageRequest](func(handler.Context, pageRequest) handler.Response {
		t.Fatal("handler must not run")
		return nil
	})

	w := httptest.NewRecorder()
	handler.Wrap(h,
		handler.WithBinders[handler.Context, pageRequest](func(*http.Request, any) error {
			return binder.ErrFailedToParseQuery
		}),
		handler.WithErrorHandler[handler.Context, pageRequest](func(_ handler.Context, err error) {
			got = err
		}),
	)(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, got, binder.ErrFailedToParseQuery)
	assert.ErrorIs(t, got, handler.ErrBadRequest)
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		return nil
	})

	w := httptest.NewRecorder()
	handler.Wrap(h)(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), handler.ErrNilResponse.Error())
}

func TestWrap_DefaultErrorHandlerUsesHTTPError(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		return errResponse{err: handler.ErrNotFound}
	})

	w := httptest.NewRecorder()
	handler.Wrap(h)(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found", strings.TrimSpace(w.Body.String()))
}

type errResponse struct{ err error }

func (e errResponse) Render(http.ResponseWriter, *http.Request) error { return e.err }

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var trace []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				trace = append(trace, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		trace = append(trace, "handler")
		return handler.Templ(htmlComponent("ok"))
	})

	w := httptest.NewRecorder()
	handler.Wrap(h, handler.WithDecorators(mark("outer"), mark("inner")))(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, trace)
}

func TestContext_SSEOnlyForDataStar(t *testing.T) {
	t.Parallel()

	plain := handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Nil(t, plain.SSE())

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set(handler.DataStarRequestHeader, "true")
	w := httptest.NewRecorder()
	ds := handler.NewContext(w, r)
	require.NotNil(t, ds.SSE())
	assert.Same(t, ds.SSE(), ds.SSE())
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		header map[string]string
		want   bool
	}{
		{name: "plain request", target: "/", want: false},
		{name: "datastar header", target: "/", header: map[string]string{"Datastar-Request": "true"}, want: true},
		{name: "event stream accept", target: "/", header: map[string]string{"Accept": "text/event-stream, text/html"}, want: true},
		{name: "signals query", target: "/?datastar=%7B%7D", want: true},
		{name: "html accept", target: "/", header: map[string]string{"Accept": "text/html"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(r))
		})
	}
}
