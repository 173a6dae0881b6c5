// Command server runs the article decorator web app.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/zakhrafa/handler"
	"github.com/dmitrymomot/zakhrafa/modules/decorator"
	"github.com/dmitrymomot/zakhrafa/pkg/clientip"
	"github.com/dmitrymomot/zakhrafa/pkg/config"
	deco "github.com/dmitrymomot/zakhrafa/pkg/decorator"
	"github.com/dmitrymomot/zakhrafa/pkg/environment"
	"github.com/dmitrymomot/zakhrafa/pkg/httpserver"
	"github.com/dmitrymomot/zakhrafa/pkg/i18n"
	"github.com/dmitrymomot/zakhrafa/pkg/logger"
	"github.com/dmitrymomot/zakhrafa/pkg/ratelimiter"
	"github.com/dmitrymomot/zakhrafa/pkg/requestid"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Name        string `env:"APP_NAME" envDefault:"zakhrafa"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	DefaultLang string `env:"APP_DEFAULT_LANG" envDefault:"ar"`

	// Empty trusts only the TCP peer.
	TrustedIPHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS" envSeparator:"," envDefault:"CF-Connecting-IP,X-Forwarded-For,X-Real-IP"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
	Decorator decorator.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.Env)
	// The stage picks level and format; explicit settings override it.
	logOpts := []logger.Option{
		logger.WithEnvironment(env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	}
	if cfg.LogFormat != "" {
		logOpts = append(logOpts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	log := logger.New(logOpts...)

	if err := run(context.Background(), cfg, env, log); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, env environment.Environment, log *slog.Logger) error {
	if err := cfg.Decorator.Validate(); err != nil {
		return err
	}

	tr, err := i18n.NewTranslator(ctx, decorator.Translations(),
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
	)
	if err != nil {
		return err
	}

	engine := deco.New()
	memo := deco.NewMemo(engine, cfg.Decorator.MemoSize)
	views := decorator.DefaultViews(tr)

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		Translate:  tr.Tc,
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})

	opts := []decorator.Option{
		decorator.WithLogger(log),
		decorator.WithErrorHandler(errorHandler),
		decorator.WithTranslate(tr.Tc),
	}
	if cfg.RateLimit.Enabled {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			return err
		}
		opts = append(opts, decorator.WithActionMiddleware(
			ratelimiter.Middleware(limiter, clientip.Key,
				ratelimiter.WithResponder(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result, err error) {
					if errors.Is(err, ratelimiter.ErrLimitExceeded) {
						err = handler.ErrTooManyRequests
					}
					errorHandler(handler.NewContext(w, r), err)
				}),
			),
		))
	}
	svc := decorator.NewService(cfg.Decorator, memo, views, opts...)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.New(cfg.TrustedIPHeaders...).Middleware,
		environment.Middleware(env),
		i18n.Middleware(tr),
		middleware.Compress(5, "text/html", "application/json"),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		errorHandler(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, func(context.Context) error {
		_, err := engine.Render("فحص الجاهزية", deco.DefaultConfig())
		return err
	}))

	base := cfg.Decorator.BasePath
	if base == "" {
		base = "/"
	}
	r.Mount(base, svc.Handle())

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string) {
			log.Info("decorator ready", slog.String("addr", addr), slog.String("lang", tr.DefaultLanguage()))
		}),
	)
	return srv.Run(ctx, r)
}
