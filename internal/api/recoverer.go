package api

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/isandoval/staffdesk-be/internal/api/respond"
)

// Recoverer converts panics escaping from handlers into the uniform JSON
// failure envelope. The panic is logged with its stack trace server-side;
// the response carries no internal detail. If the handler already started
// writing a response nothing further is sent.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("path", r.URL.Path).
					Msg("Recovered from handler panic")

				if ww.BytesWritten() == 0 {
					respond.Error(ww, http.StatusInternalServerError, "Internal Server Error")
				}
			}
		}()

		next.ServeHTTP(ww, r)
	})
}
