package middleware

import (
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type RecovererMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecovererMiddleware(logger *zap.SugaredLogger) *RecovererMiddleware {
	return &RecovererMiddleware{
		logs: logger,
	}
}

// Recoverer turns a handler panic into a 500 response and logs it with the stack.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func (m *RecovererMiddleware) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			m.logs.Errorw("handler panicked",
				"panic", rvr,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", chimiddleware.GetReqID(r.Context()),
				"stack", string(debug.Stack()))

			if r.Header.Get("Connection") != "Upgrade" {
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
