package logging

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ctxKey string

// RequestIDKey is the context key under which handlers store the request id.
const RequestIDKey ctxKey = "request_id"

// InitLogger initializes the global logger with zerolog.
// Unknown levels fall back to info; any format other than "json" uses the console writer.
func InitLogger(level, format string) {
	initLogger(os.Stdout, level, format)
}

// InitLoggerTo is InitLogger writing to out.
func InitLoggerTo(out io.Writer, level, format string) {
	initLogger(out, level, format)
}

func initLogger(out io.Writer, level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl := zerolog.InfoLevel
	if level != "" {
		if parsedLevel, err := zerolog.ParseLevel(level); err == nil {
			lvl = parsedLevel
		}
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "json" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

// Info logs an info message with optional fields
func Info() *zerolog.Event {
	return log.Info()
}

// Debug logs a debug message with optional fields
func Debug() *zerolog.Event {
	return log.Debug()
}

// Error logs an error message with optional fields
func Error() *zerolog.Event {
	return log.Error()
}

// Warn logs a warning message with optional fields
func Warn() *zerolog.Event {
	return log.Warn()
}

// Fatal logs a fatal message and exits
func Fatal() *zerolog.Event {
	return log.Fatal()
}

// ErrorWithRequest returns an error logger event with request context (IP, method, URL)
func ErrorWithRequest(r *http.Request) *zerolog.Event {
	return withRequest(Error(), r)
}

// DebugWithRequest returns a debug logger event with request context (IP, method, URL)
func DebugWithRequest(r *http.Request) *zerolog.Event {
	return withRequest(Debug(), r)
}

// WarnWithRequest returns a warn logger event with request context (IP, method, URL)
func WarnWithRequest(r *http.Request) *zerolog.Event {
	return withRequest(Warn(), r)
}

func withRequest(event *zerolog.Event, r *http.Request) *zerolog.Event {
	event = event.
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Str("client_ip", getClientIP(r))
	if id, ok := r.Context().Value(RequestIDKey).(string); ok {
		event = event.Str("request_id", id)
	}
	return event
}

// DebugWithContext returns a debug logger event carrying the request id, if any.
func DebugWithContext(ctx context.Context) *zerolog.Event {
	event := Debug()
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		event = event.Str("request_id", id)
	}
	return event
}

// getClientIP extracts the real client IP address from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (for proxies)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	// Fall back to RemoteAddr
	return r.RemoteAddr
}
