package router

import (
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// EnforceJSONHandler. requests carrying a body must be application/json.
func EnforceJSONHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 {
			contentType := r.Header.Get("Content-Type")
			mt, _, err := mime.ParseMediaType(contentType)
			if err != nil || mt != "application/json" {
				http.Error(w, "Content-Type header must be application/json", http.StatusUnsupportedMediaType)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// zapLogFormatter. chi request log entries written to zap.
type zapLogFormatter struct {
	log *zap.Logger
}

func (f *zapLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &zapLogEntry{
		log: f.log.With(
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
			zap.String("remote_addr", r.RemoteAddr),
		),
		line: fmt.Sprintf("%s %s", r.Method, r.URL.Path),
	}
}

type zapLogEntry struct {
	log  *zap.Logger
	line string
}

func (e *zapLogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	e.log.Info(e.line,
		zap.Int("status", status),
		zap.Int("bytes", bytes),
		zap.Duration("latency", elapsed))
}

func (e *zapLogEntry) Panic(v interface{}, stack []byte) {
	e.log.Error("panic while serving request", zap.Any("panic", v), zap.ByteString("stack", stack))
}

// Logger. one zap line per request. a panic recovered by middleware.Recoverer further down the chain is logged
// through the same entry.
func Logger(log *zap.Logger) func(http.Handler) http.Handler {
	return middleware.RequestLogger(&zapLogFormatter{log: log})
}

// Limit. global token bucket, rps requests per second with the given burst.
func Limit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
