package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/zakhrafa/binder"
)

type decorateRequest struct {
	Text         string   `json:"text" form:"text" query:"text"`
	WordsPerLine int      `json:"words_per_line" form:"words_per_line" query:"wpl"`
	UseBrackets  bool     `json:"use_brackets" form:"use_brackets"`
	Intensity    float64  `json:"protect_intensity" form:"protect_intensity"`
	Nonce        *uint    `json:"nonce" form:"nonce"`
	Tags         []string `json:"-" form:"tag" query:"tag"`
	Internal     string   `json:"-" form:"-" query:"-"`
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/decorate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes", func(t *testing.T) {
		t.Parallel()
		var req decorateRequest
		err := bind(jsonRequest(`{"text":"الحمد لله","words_per_line":3,"use_brackets":true,"nonce":7}`), &req)
		require.NoError(t, err)
		assert.Equal(t, "الحمد لله", req.Text)
		assert.Equal(t, 3, req.WordsPerLine)
		assert.True(t, req.UseBrackets)
		require.NotNil(t, req.Nonce)
		assert.Equal(t, uint(7), *req.Nonce)
	})

	t.Run("other content types are skipped", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("text=a"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.ErrorIs(t, bind(req, &decorateRequest{}), binder.ErrBinderNotApplicable)
	})

	errorCases := []struct {
		name string
		req  func() *http.Request
		want error
	}{
		{"missing content type", func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		}, binder.ErrUnsupportedMediaType},
		{"empty body", func() *http.Request { return jsonRequest("") }, binder.ErrInvalidJSON},
		{"syntax error", func() *http.Request { return jsonRequest(`{"text":`) }, binder.ErrInvalidJSON},
		{"wrong type", func() *http.Request { return jsonRequest(`{"words_per_line":"ten"}`) }, binder.ErrInvalidJSON},
		{"unknown field", func() *http.Request { return jsonRequest(`{"colour":"red"}`) }, binder.ErrInvalidJSON},
		{"trailing data", func() *http.Request { return jsonRequest(`{"text":"a"}{"text":"b"}`) }, binder.ErrInvalidJSON},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, bind(tc.req(), &decorateRequest{}), tc.want)
		})
	}

	t.Run("body limit", func(t *testing.T) {
		t.Parallel()
		body := `{"text":"` + strings.Repeat("ب", 64) + `"}`
		err := binder.JSONWithLimit(32)(jsonRequest(body), &decorateRequest{})
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	bind := binder.Form()

	post := func(values url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()
		req := decorateRequest{WordsPerLine: 10, Internal: "keep"}
		err := bind(post(url.Values{
			"text":              {"رب العالمين"},
			"use_brackets":      {"false", "on"},
			"protect_intensity": {"0.75"},
			"tag":               {"a", "b"},
			"Internal":          {"overwritten?"},
		}), &req)
		require.NoError(t, err)
		assert.Equal(t, "رب العالمين", req.Text)
		assert.Equal(t, 10, req.WordsPerLine, "absent fields keep their value")
		assert.True(t, req.UseBrackets, "the checkbox value follows the hidden input")
		assert.InDelta(t, 0.75, req.Intensity, 1e-9)
		assert.Equal(t, []string{"a", "b"}, req.Tags)
		assert.Equal(t, "keep", req.Internal)
		assert.Nil(t, req.Nonce)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		err := bind(post(url.Values{"words_per_line": {"many"}}), &decorateRequest{})
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("json is skipped", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, bind(jsonRequest(`{}`), &decorateRequest{}), binder.ErrBinderNotApplicable)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, bind(post(url.Values{"text": {"x"}}), decorateRequest{}), binder.ErrInvalidForm)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?text=abc&wpl=4&tag=x", nil)
	var got decorateRequest
	require.NoError(t, binder.Query()(req, &got))
	assert.Equal(t, "abc", got.Text)
	assert.Equal(t, 4, got.WordsPerLine)
	assert.Equal(t, []string{"x"}, got.Tags)

	bad := httptest.NewRequest(http.MethodGet, "/?wpl=x", nil)
	assert.ErrorIs(t, binder.Query()(bad, &decorateRequest{}), binder.ErrInvalidQuery)
}

func TestSignals(t *testing.T) {
	t.Parallel()

	bind := binder.Signals()

	t.Run("post body", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(`{"text":"الحمد","words_per_line":2,"nonce":3}`)
		req.Header.Set(binder.DataStarHeader, "true")

		var got decorateRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "الحمد", got.Text)
		assert.Equal(t, 2, got.WordsPerLine)
	})

	t.Run("get query", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"text":"لله"}`}}
		req := httptest.NewRequest(http.MethodGet, "/render?"+q.Encode(), nil)
		req.Header.Set(binder.DataStarHeader, "true")

		var got decorateRequest
		require.NoError(t, bind(req, &got))
		assert.Equal(t, "لله", got.Text)
	})

	t.Run("plain requests are skipped", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, bind(jsonRequest(`{}`), &decorateRequest{}), binder.ErrBinderNotApplicable)
	})

	t.Run("malformed signals", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(`{"text":`)
		req.Header.Set(binder.DataStarHeader, "true")
		assert.ErrorIs(t, bind(req, &decorateRequest{}), binder.ErrInvalidSignals)
	})
}
