package response

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/mail-relay/internal/domain"
	appCtx "github.com/baechuer/mail-relay/internal/pkg/context"
	"github.com/baechuer/mail-relay/internal/transport/http/dto"
)

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func Sent(w http.ResponseWriter, r *http.Request) {
	JSON(w, r, http.StatusOK, dto.SendEmailResponse{
		Success: true,
		Message: "Email sent successfully!",
	})
}

// Err converts an error into the relay's failure body.
// Delivery and invalid-JSON causes are passed through in "error";
// internal causes stay in the logs.
func Err(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := statusFromKind(kind)
	body := dto.SendEmailResponse{Message: domain.MsgInternal}

	var de *domain.Error
	if errors.As(err, &de) {
		body.Message = de.Message
		if exposesCause(err) && de.Cause != nil {
			body.Error = de.Cause.Error()
		}
	}

	// delivery failures are logged by the relay
	if kind == domain.KindInternal {
		zlog.Error().Err(err).
			Str("request_id", appCtx.GetRequestID(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
	}

	JSON(w, r, status, body)
}

func exposesCause(err error) bool {
	return domain.Is(err, domain.CodeSendFailed) || domain.Is(err, domain.CodeInvalidJSON)
}

// statusFromKind maps domain error kinds to HTTP status codes.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindDelivery, domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
