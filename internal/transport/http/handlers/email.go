package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/baechuer/mail-relay/internal/domain"
	"github.com/baechuer/mail-relay/internal/transport/http/dto"
	"github.com/baechuer/mail-relay/internal/transport/http/response"
)

// Relayer is the slice of relay.Service the handler needs.
type Relayer interface {
	Relay(ctx context.Context, req domain.SendRequest) error
}

type EmailHandler struct {
	relay        Relayer
	maxBodyBytes int64
}

func NewEmailHandler(relay Relayer, maxBodyBytes int64) *EmailHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return &EmailHandler{relay: relay, maxBodyBytes: maxBodyBytes}
}

// SendEmail handles POST /send-email. The request is held open for the whole
// SMTP exchange; exactly one attempt is made.
func (h *EmailHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	// an empty body decodes as {} and falls through to the missing-fields check
	var req dto.SendEmailRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		response.Err(w, r, domain.ErrInvalidJSON(err))
		return
	}

	if err := h.relay.Relay(r.Context(), req.ToDomain()); err != nil {
		response.Err(w, r, err)
		return
	}

	response.Sent(w, r)
}
