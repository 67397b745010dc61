package middleware

import (
	"net/http"
	"time"

	"github.com/Dan9191/unidash/internal/metrics"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs each request and records it in m, which may be nil.
// Requests are labelled with the matched route template so ids in paths do
// not explode metric cardinality.
func RequestLogger(log *logrus.Logger, m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(recorder, r)

			status := recorder.status
			if status == 0 {
				status = http.StatusOK
			}
			duration := time.Since(start)
			route := routeTemplate(r)
			m.ObserveRequest(r.Method, route, status, duration)

			entry := log.WithFields(logrus.Fields{
				"method":      r.Method,
				"route":       route,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       recorder.bytes,
				"duration_ms": duration.Milliseconds(),
			})
			switch {
			case status >= http.StatusInternalServerError:
				entry.Error("http_request")
			case status >= http.StatusBadRequest:
				entry.Warn("http_request")
			default:
				entry.Info("http_request")
			}
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}
