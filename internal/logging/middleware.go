package logging

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// SkipRoute is the route name RequestLogger stays quiet for.
const SkipRoute = "health"

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(p []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(p)
	sr.bytes += n
	return n, err
}

// levelFor maps a response status to the level its request is logged at.
func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// RequestLogger is mux middleware logging one line per feed request with
// the matched route template and the requested image. Register it with
// Router.Use so the route and its variables are resolved.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := mux.CurrentRoute(r)
		if route != nil && route.GetName() == SkipRoute {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)

		attrs := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.status,
			"bytes", sr.bytes,
			"duration", time.Since(start).String(),
		}
		if route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				attrs = append(attrs, "route", tmpl)
			}
		}
		if id, ok := mux.Vars(r)["id"]; ok {
			attrs = append(attrs, "image", id)
		}

		slog.Log(r.Context(), levelFor(sr.status), "feed request", attrs...)
	})
}
