package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog skips.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr { return slog.String("component", name) }

func Event(name string) slog.Attr { return slog.String("event", name) }

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

// Mode records whether a render ran in plain or protected mode.
func Mode(protected bool) slog.Attr {
	if protected {
		return slog.String("mode", "protected")
	}
	return slog.String("mode", "plain")
}

func Words(n int) slog.Attr { return slog.Int("words", n) }

func Lines(n int) slog.Attr { return slog.Int("lines", n) }

// Status records an HTTP status code.
func Status(code int) slog.Attr { return slog.Int("status", code) }
