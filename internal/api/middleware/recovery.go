package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
)

// Recovery перехватывает панику в обработчике и отвечает 500
func Recovery(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error("panic recovered: %s %s, request_id=%s, error=%v\n%s",
						r.Method, r.URL.Path, GetRequestID(r.Context()), err, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
