package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global logger instance. It discards everything until Init is called.
var log = zerolog.Nop()

// ContextKey for storing logger in context
type ctxKey struct{}

// Init initializes the global logger
func Init(env string, logLevel string) {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stdout

	// Pretty console output for development
	if env == "development" || env == "dev" || env == "" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
	}

	zerolog.SetGlobalLevel(parseLevel(logLevel))

	log = zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Str("service", "storefront").
		Logger()
}

// parseLevel maps a config string to a zerolog level, defaulting to info.
func parseLevel(logLevel string) zerolog.Level {
	switch logLevel {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get returns the global logger
func Get() *zerolog.Logger {
	return &log
}

// WithContext returns the request-scoped logger if one was stored, else the global one.
func WithContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &log
	}
	if l, ok := ctx.Value(ctxKey{}).(*zerolog.Logger); ok {
		return l
	}
	return &log
}

// NewContext creates a new context with the logger
func NewContext(ctx context.Context, l *zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithRequestID adds a request ID to the logger
func WithRequestID(requestID string) zerolog.Logger {
	return log.With().Str("request_id", requestID).Logger()
}

// --- Convenience Methods ---

func Debug() *zerolog.Event {
	return log.Debug()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

// --- Structured Logging Helpers ---

// Outbound logs a call made to the storefront API or a third-party endpoint.
// target is "local", "production" or the name of the third-party service.
func Outbound(ctx context.Context, target, method, url string, statusCode int, duration time.Duration, err error) {
	event := WithContext(ctx).Debug().
		Str("target", target).
		Str("method", method).
		Str("url", url).
		Dur("duration_ms", duration)

	if statusCode > 0 {
		event = event.Int("status", statusCode)
	}

	if err != nil {
		event.Err(err).Msg("Outbound request failed")
		return
	}
	event.Msg("Outbound request")
}

// ServiceStart logs service startup
func ServiceStart(name, version, port string) {
	log.Info().
		Str("service", name).
		Str("version", version).
		Str("port", port).
		Msg("Service Started")
}

// ServiceStop logs service shutdown
func ServiceStop(name string) {
	log.Info().
		Str("service", name).
		Msg("Service Stopped")
}
