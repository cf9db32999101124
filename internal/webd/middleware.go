package webd

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	ghandlers "github.com/gorilla/handlers"
)

func corsMiddleware(next http.Handler) http.Handler {
	return ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodOptions}),
	)(next)
}

func contentTypeMiddlewareFunc(contentType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", contentType)
			next.ServeHTTP(w, r)
		})
	}
}

func compressMiddleware(next http.Handler) http.Handler {
	return ghandlers.CompressHandler(next)
}

func recoveryMiddleware(next http.Handler) http.Handler {
	return ghandlers.RecoveryHandler(
		ghandlers.RecoveryLogger(recoveryLogger{}),
		ghandlers.PrintRecoveryStack(false),
	)(next)
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...any) {
	slog.Error("Recovered from panic", "panic", v)
}

// loggingMiddleware logs one record per request. The writer handed to the
// formatter is unused; records go to the daemon's logger.
func (s *WebDaemon) loggingMiddleware(next http.Handler) http.Handler {
	return ghandlers.CustomLoggingHandler(os.Stderr, next, func(_ io.Writer, p ghandlers.LogFormatterParams) {
		s.logger.Info("request",
			"method", p.Request.Method,
			"uri", p.URL.RequestURI(),
			"status", p.StatusCode,
			"size", p.Size,
			"remote", p.Request.RemoteAddr)
	})
}
