package decorator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/zakhrafa/binder"
	"github.com/dmitrymomot/zakhrafa/handler"
	deco "github.com/dmitrymomot/zakhrafa/pkg/decorator"
	"github.com/dmitrymomot/zakhrafa/pkg/logger"
	"github.com/dmitrymomot/zakhrafa/pkg/validator"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithErrorHandler sets the handler for failed requests.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithTranslate sets the translator used for inline form errors.
func WithTranslate(tr handler.Translate) Option {
	return func(s *Service) { s.translate = tr }
}

// WithActionMiddleware wraps the routes that render text, leaving the page
// and the defaults endpoint untouched. Rate limiting goes here.
func WithActionMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(s *Service) { s.actionMW = append(s.actionMW, mw...) }
}

// Service serves the decorator page and API.
type Service struct {
	cfg          Config
	memo         *deco.Memo
	views        *Views
	log          *slog.Logger
	errorHandler handler.ErrorHandler
	translate    handler.Translate
	actionMW     []func(http.Handler) http.Handler
}

// NewService builds the service. A nil memo gets a fresh one sized from cfg.
func NewService(cfg Config, memo *deco.Memo, views *Views, opts ...Option) *Service {
	if memo == nil {
		memo = deco.NewMemo(deco.New(), cfg.MemoSize)
	}
	s := &Service{
		cfg:   cfg,
		memo:  memo,
		views: views,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
			Translate:  s.translate,
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		})
	}
	return s
}

type pageRequest struct{}

// Handle returns the module router.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	defaults := func() DecorateRequest { return newDecorateRequest(s.cfg.Defaults) }

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[pageRequest](s.errorHandler),
	))
	r.Get("/api/defaults", handler.Wrap(s.defaultsAPI,
		handler.WithErrorHandler[pageRequest](s.errorHandler),
	))

	r.Group(func(r chi.Router) {
		r.Use(s.actionMW...)

		r.Post("/render", handler.Wrap(s.render,
			handler.WithDefaults(defaults),
			handler.WithBinders[DecorateRequest](binder.Signals(), binder.Form()),
			handler.WithErrorHandler[DecorateRequest](s.errorHandler),
		))
		r.Post("/api/decorate", handler.Wrap(s.decorateAPI,
			handler.WithDefaults(defaults),
			handler.WithBinders[DecorateRequest](binder.JSON()),
			handler.WithErrorHandler[DecorateRequest](s.errorHandler),
		))
		r.Post("/api/strip", handler.Wrap(s.stripAPI,
			handler.WithBinders[StripRequest](binder.JSON()),
			handler.WithErrorHandler[StripRequest](s.errorHandler),
		))
	})

	return r
}

func (s *Service) page(_ handler.Context, _ pageRequest) handler.Response {
	return handler.Templ(s.views.Page(PageParams{
		BasePath: s.cfg.BasePath,
		Form:     newDecorateRequest(s.cfg.Defaults),
		Limits:   s.cfg,
	}))
}

func (s *Service) render(ctx handler.Context, req DecorateRequest) handler.Response {
	req = req.Sanitize()
	page := PageParams{BasePath: s.cfg.BasePath, Form: req, Limits: s.cfg}

	if err := req.Validate(s.cfg); err != nil {
		if handler.IsDataStar(ctx.Request()) {
			return handler.Error(err)
		}
		page.Errors = handler.TranslateValidation(ctx, s.translate, validator.Extract(err))
		return handler.TemplStatus(http.StatusUnprocessableEntity, s.views.Page(page))
	}

	res, err := s.decorate(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	page.Output = OutputParams{Result: res, Stats: deco.Inspect(res.Output)}

	// The nonce signal is echoed so the client store holds the value the
	// server rendered with.
	return handler.TemplWithSignals(
		s.views.Output(page.Output),
		s.views.Page(page),
		map[string]any{"nonce": req.Nonce},
		handler.WithTarget("#output"),
	)
}

func (s *Service) decorateAPI(ctx handler.Context, req DecorateRequest) handler.Response {
	req = req.Sanitize()
	if err := req.Validate(s.cfg); err != nil {
		return handler.Error(err)
	}
	res, err := s.decorate(ctx, req)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(res, handler.WithJSONMeta(map[string]any{
		"stats": deco.Inspect(res.Output),
		"nonce": req.Nonce,
	}))
}

func (s *Service) stripAPI(_ handler.Context, req StripRequest) handler.Response {
	if err := req.Validate(s.cfg); err != nil {
		return handler.Error(err)
	}
	strip := deco.Strip
	if req.KeepDiacritics {
		strip = deco.StripHidden
	}
	out := strip(req.Text)
	if req.Unmark {
		out = deco.Unmark(out)
	}
	return handler.JSON(map[string]string{"text": out}, handler.WithJSONMeta(map[string]any{
		"removed": utf8.RuneCountInString(req.Text) - utf8.RuneCountInString(out),
	}))
}

func (s *Service) defaultsAPI(_ handler.Context, _ pageRequest) handler.Response {
	hits, misses := s.memo.Stats()
	return handler.JSON(s.cfg.Defaults.Engine(), handler.WithJSONMeta(map[string]any{
		"max_text_length":      s.cfg.MaxTextLength,
		"max_words_per_line":   s.cfg.MaxWordsPerLine,
		"max_separator_length": s.cfg.MaxSeparatorLength,
		"max_decor_intensity":  deco.MaxDecorIntensity,
		"cache": map[string]any{
			"size":   s.memo.Len(),
			"hits":   hits,
			"misses": misses,
		},
	}))
}

func (s *Service) decorate(ctx context.Context, req DecorateRequest) (Result, error) {
	start := time.Now()
	cfg := req.Engine()

	lines, err := s.memo.Lines(req.Text, cfg)
	if err != nil {
		if errors.Is(err, deco.ErrInvalidWordsPerLine) {
			ve := handler.NewValidationError()
			ve.Add("words_per_line", err.Error())
			return Result{}, ve
		}
		return Result{}, err
	}
	if lines == nil {
		lines = []string{}
	}

	hits, misses := s.memo.Stats()
	s.log.DebugContext(ctx, "text decorated",
		logger.Component("decorator"),
		logger.Event("render"),
		logger.Mode(cfg.Protect),
		logger.Words(len(strings.Fields(req.Text))),
		logger.Lines(len(lines)),
		logger.Duration(time.Since(start)),
		slog.Int("cache_size", s.memo.Len()),
		slog.Uint64("cache_hits", hits),
		slog.Uint64("cache_misses", misses),
	)
	return Result{Output: strings.Join(lines, "\n"), Lines: lines}, nil
}
