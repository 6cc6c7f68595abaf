package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/mail-relay/internal/domain"
	appCtx "github.com/baechuer/mail-relay/internal/pkg/context"
	"github.com/baechuer/mail-relay/internal/transport/http/response"
)

// Recover keeps a panicking request from taking the process down and still
// answers with the JSON failure body.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			zlog.Error().
				Str("request_id", appCtx.GetRequestID(r.Context())).
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			response.Err(w, r, domain.ErrInternal(fmt.Errorf("panic: %v", rec)))
		}()

		next.ServeHTTP(w, r)
	})
}
