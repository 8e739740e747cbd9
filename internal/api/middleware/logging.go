package middleware

import (
	"net/http"
	"time"
)

// Logging пишет строку access-лога на каждый запрос
func Logging(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			status := rec.Status()
			format := "%s %s - status=%d, bytes=%d, duration=%s, request_id=%s"
			args := []interface{}{r.Method, r.URL.Path, status, rec.bytes, time.Since(start), GetRequestID(r.Context())}
			switch {
			case status >= http.StatusInternalServerError:
				log.Error(format, args...)
			case status >= http.StatusBadRequest:
				log.Warn(format, args...)
			default:
				log.Info(format, args...)
			}
		})
	}
}
