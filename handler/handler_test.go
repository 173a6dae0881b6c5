package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/zakhrafa/binder"
	"github.com/dmitrymomot/zakhrafa/handler"
)

type echoRequest struct {
	Text  string `json:"text" form:"text"`
	Lines int    `json:"lines" form:"lines"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	echo := handler.HandlerFunc[echoRequest](func(_ handler.Context, req echoRequest) handler.Response {
		return handler.JSON(req)
	})

	h := handler.Wrap(echo,
		handler.WithBinders[echoRequest](binder.JSON(), binder.Form()),
		handler.WithDefaults(func() echoRequest { return echoRequest{Lines: 10} }),
	)

	t.Run("json binder", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"a"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"text":"a","lines":10}}`, rec.Body.String())
	})

	t.Run("falls through to form binder", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("text=b&lines=2"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"text":"b","lines":2}}`, rec.Body.String())
	})

	t.Run("bind error reaches the error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(echo,
			handler.WithBinders[echoRequest](binder.JSON()),
			handler.WithErrorHandler[echoRequest](func(_ handler.Context, err error) { got = err }),
		)
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.ErrorIs(t, got, binder.ErrInvalidJSON)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(func(handler.Context, echoRequest) handler.Response { return nil },
			handler.WithErrorHandler[echoRequest](func(_ handler.Context, err error) { got = err }),
		)
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("default error handler", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(func(handler.Context, echoRequest) handler.Response {
			return handler.JSONError(handler.ErrNotFound)
		})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()
		var order []string
		mark := func(name string) handler.Decorator[echoRequest] {
			return func(next handler.HandlerFunc[echoRequest]) handler.HandlerFunc[echoRequest] {
				return func(ctx handler.Context, req echoRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(echo, handler.WithDecorators(mark("outer"), mark("inner")))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, []string{"outer", "inner"}, order)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"http error", handler.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"wrapped http error", fmt.Errorf("decorate: %w", handler.ErrBadRequest), http.StatusBadRequest, "bad_request"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
			assert.Equal(t, tt.status, rec.Code)

			var body handler.JSONResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		ve := handler.NewValidationError()
		ve.Add("text", "required")
		rec := httptest.NewRecorder()
		require.NoError(t, handler.JSONError(ve).Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"validation_error","message":"validation failed: text: required","details":{"text":["required"]}}}`,
			rec.Body.String())
	})
}

func TestJSONMeta(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	resp := handler.JSON([]string{"a"},
		handler.WithJSONMeta(map[string]any{"lines": 1}),
		handler.WithJSONMeta(map[string]any{"runes": 2}),
		handler.WithJSONStatus(http.StatusCreated),
	)
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":["a"],"meta":{"lines":1,"runes":2}}`, rec.Body.String())
}

func TestTemplPartial(t *testing.T) {
	t.Parallel()

	resp := handler.TemplWithSignals(text(`<div id="output">partial</div>`), text("<html>full</html>"),
		map[string]any{"nonce": 2}, handler.WithTarget("#output"))

	t.Run("plain request gets the page", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodPost, "/render", nil)))
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<html>full</html>", rec.Body.String())
	})

	t.Run("datastar request gets patches", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/render", nil)
		req.Header.Set(binder.DataStarHeader, "true")
		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, req))

		body := rec.Body.String()
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "selector #output")
		assert.Contains(t, body, "partial")
		assert.NotContains(t, body, "full")
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"nonce":2`)
	})

	t.Run("status page", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.TemplStatus(http.StatusNotFound, text("gone")).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "gone", rec.Body.String())
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(plain))

	header := httptest.NewRequest(http.MethodPost, "/", nil)
	header.Header.Set(binder.DataStarHeader, "true")
	assert.True(t, handler.IsDataStar(header))

	accept := httptest.NewRequest(http.MethodGet, "/", nil)
	accept.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(accept))

	query := httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)
	assert.True(t, handler.IsDataStar(query))

	api := httptest.NewRequest(http.MethodPost, "/", nil)
	api.Header.Set("Content-Type", "application/json")
	assert.True(t, handler.WantsJSON(api))
	api.Header.Set(binder.DataStarHeader, "true")
	assert.False(t, handler.WantsJSON(api))
}

func TestErrorResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(func(handler.Context, echoRequest) handler.Response {
		return handler.Error(handler.ErrUnprocessableEntity)
	}, handler.WithErrorHandler[echoRequest](func(_ handler.Context, err error) { got = err }))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, got, handler.ErrUnprocessableEntity)
}
