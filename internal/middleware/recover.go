package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"petclinic/internal/platform/logger"
)

// Recover reemplaza a chi/middleware.Recoverer: loguea el panic y responde con onPanic
// (la vista de error) en vez de un 500 vacío.
func Recover(log logger.Logger, onPanic func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				log.Error("panic recovered", map[string]any{
					"path":  r.URL.Path,
					"err":   err,
					"stack": string(debug.Stack()),
				})

				if onPanic == nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				onPanic(w, r, err)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
