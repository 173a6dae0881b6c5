// Package logger builds *slog.Logger instances for the server with
// functional options and injects request-scoped attributes (request id,
// environment) taken from context.Context at log time.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "zakhrafa"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "article rendered",
//		logger.Component("decorator"),
//		logger.Words(n),
//		logger.Duration(time.Since(start)),
//	)
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
