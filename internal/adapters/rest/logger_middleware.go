package rest_adapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/hendrikderyck/steven-car-company/internal/contextkeys"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
)

// LoggerMiddleware tags every request with a trace id, puts a request-scoped
// logger into the context and logs the request on completion.
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get("X-Trace-Id")
			if traceID == "" {
				traceID = uuid.NewString()
			}

			requestLogger := logger.WithFields(port.Fields{
				"trace_id": traceID,
				"method":   r.Method,
				"path":     r.URL.Path,
			})

			ctx := contextkeys.ContextWithTraceID(r.Context(), traceID)
			ctx = contextkeys.ContextWithLogger(ctx, requestLogger)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			requestLogger.Info("Request handled", port.Fields{
				"status":      ww.Status(),
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			})
		})
	}
}
