package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/zakhrafa/binder"
	"github.com/dmitrymomot/zakhrafa/pkg/logger"
	"github.com/dmitrymomot/zakhrafa/pkg/requestid"
	"github.com/dmitrymomot/zakhrafa/pkg/validator"
)

// Translate resolves a translation key for the language carried by ctx.
type Translate func(ctx context.Context, key string, args ...string) string

// ErrorPageParams feeds the full-page error component.
type ErrorPageParams struct {
	Message    string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams feeds the DataStar toast component.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler. Every field is optional.
type ErrorHandlerConfig struct {
	Translate   Translate
	ErrorPage   func(ErrorPageParams) templ.Component
	ErrorToast  func(ErrorToastParams) templ.Component
	ToastTarget string
	ToastMode   datastar.ElementPatchMode
}

type errorInfo struct {
	status     int
	key        string
	validation ValidationError
}

func classify(ctx context.Context, tr Translate, err error) errorInfo {
	var (
		ve  validator.ValidationErrors
		hve ValidationError
		he  HTTPError
	)
	switch {
	case errors.As(err, &ve):
		return errorInfo{http.StatusUnprocessableEntity, "validation_error", TranslateValidation(ctx, tr, ve)}
	case errors.As(err, &hve):
		return errorInfo{http.StatusUnprocessableEntity, "validation_error", hve}
	case errors.As(err, &he):
		return errorInfo{status: he.Code, key: he.Key}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return errorInfo{status: ErrRequestEntityTooLarge.Code, key: ErrRequestEntityTooLarge.Key}
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return errorInfo{status: ErrUnsupportedMediaType.Code, key: ErrUnsupportedMediaType.Key}
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidSignals):
		return errorInfo{status: ErrBadRequest.Code, key: ErrBadRequest.Key}
	default:
		return errorInfo{status: ErrInternalServerError.Code, key: ErrInternalServerError.Key}
	}
}

// TranslateValidation renders validator failures as display messages. The
// field name is translated from "fields.<name>" and the message from the
// rule's translation key. Without a translator the rule's English message
// is used.
func TranslateValidation(ctx context.Context, tr Translate, ve validator.ValidationErrors) ValidationError {
	out := NewValidationError()
	for _, e := range ve {
		if tr == nil || e.TranslationKey == "" {
			out.Add(e.Field, e.Message)
			continue
		}
		keys := make([]string, 0, len(e.TranslationValues))
		for k := range e.TranslationValues {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		args := make([]string, 0, 2*len(keys))
		for _, k := range keys {
			v := fmt.Sprint(e.TranslationValues[k])
			if k == "field" {
				v = tr(ctx, "fields."+e.Field)
			}
			args = append(args, k, v)
		}
		out.Add(e.Field, tr(ctx, e.TranslationKey, args...))
	}
	return out
}

// NewErrorHandler logs the error and answers in the client's format: a JSON
// envelope for API clients, a toast patch for DataStar and an HTML page
// otherwise. Client errors log at warn, server errors at error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toasts"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}

	message := func(ctx context.Context, info errorInfo) string {
		if cfg.Translate != nil {
			return cfg.Translate(ctx, "errors."+info.key)
		}
		return http.StatusText(info.status)
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		id := requestid.FromContext(r.Context())
		info := classify(r.Context(), cfg.Translate, err)

		level := slog.LevelError
		if info.status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Component("error_handler"),
			logger.Error(err),
			logger.Status(info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		msg := message(r.Context(), info)

		switch {
		case IsDataStar(r):
			if cfg.ErrorToast == nil {
				log.WarnContext(r.Context(), "no error toast configured", logger.Component("error_handler"))
				return
			}
			typ := "error"
			if level == slog.LevelWarn {
				typ = "warning"
			}
			if len(info.validation) > 0 {
				msg = firstMessage(info.validation)
			}
			toast := cfg.ErrorToast(ErrorToastParams{Message: msg, Type: typ, RequestID: id})
			resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
			if rerr := resp.Render(w, r); rerr != nil {
				log.ErrorContext(r.Context(), "failed to render error toast", logger.Error(rerr))
			}

		case WantsJSON(r):
			detail := &ErrorDetail{Code: info.key, Message: msg}
			if len(info.validation) > 0 {
				detail.Details = map[string][]string(info.validation)
			}
			resp := &jsonResponse{status: info.status, body: JSONResponse{Error: detail}}
			if rerr := resp.Render(w, r); rerr != nil {
				log.ErrorContext(r.Context(), "failed to render error response", logger.Error(rerr))
			}

		case cfg.ErrorPage != nil:
			if len(info.validation) > 0 {
				msg = firstMessage(info.validation)
			}
			page := cfg.ErrorPage(ErrorPageParams{
				Message:    msg,
				StatusCode: info.status,
				RequestID:  id,
				RetryURL:   retryURL(r),
			})
			if rerr := TemplStatus(info.status, page).Render(w, r); rerr != nil {
				log.ErrorContext(r.Context(), "failed to render error page", logger.Error(rerr))
			}

		default:
			http.Error(w, msg, info.status)
		}
	}
}

// retryURL is the page to go back to. Only GET requests can be retried by
// following a link; other methods fall back to a same-origin Referer. Anything
// that is not a local path becomes "/".
func retryURL(r *http.Request) string {
	if r.Method == http.MethodGet {
		return localPath(r.URL)
	}
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	if ref.Scheme != "" && ref.Scheme != "http" && ref.Scheme != "https" {
		return "/"
	}
	return localPath(ref)
}

func localPath(u *url.URL) string {
	p := u.RequestURI()
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	return p
}

func firstMessage(ve ValidationError) string {
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		if m := ve.Get(f); m != "" {
			return m
		}
	}
	return ""
}
