package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/quill-api/internal/api/shared"
	"github.com/phrazzld/quill-api/internal/platform/logger"
)

// Trace assigns each request a trace ID, stores a trace-tagged logger in
// the context for downstream components, and logs request completion.
func Trace(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			reqLogger := log.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, reqLogger)

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))

			reqLogger.Debug("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
