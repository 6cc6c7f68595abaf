package relay

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/baechuer/mail-relay/internal/domain"
	"github.com/baechuer/mail-relay/internal/metrics"
)

// Sender performs one delivery attempt. Implementations must not retry and
// must not keep the request's credentials after returning.
type Sender interface {
	Send(ctx context.Context, req domain.SendRequest) error
	Name() string
}

type Config struct {
	DefaultHost string
	DefaultPort int
}

type Service struct {
	sender   Sender
	validate *validator.Validate

	defaultHost string
	defaultPort int

	lg zerolog.Logger
}

func NewService(sender Sender, cfg Config, lg zerolog.Logger) *Service {
	return &Service{
		sender:      sender,
		validate:    newValidator(),
		defaultHost: cfg.DefaultHost,
		defaultPort: cfg.DefaultPort,
		lg:          lg.With().Str("component", "relay").Logger(),
	}
}

// SenderName identifies the configured sender in logs and metrics.
func (s *Service) SenderName() string { return s.sender.Name() }

// Send relays an already validated request in a single attempt.
// Any failure comes back as a delivery error wrapping the sender's error.
func (s *Service) Send(ctx context.Context, req domain.SendRequest) error {
	req = s.withDefaults(req)
	name := s.sender.Name()

	s.lg.Info().
		Str("from", req.From).
		Str("to", req.To).
		Str("host", req.SMTPHost).
		Int("port", req.SMTPPort).
		Msg("attempting to send email")

	start := time.Now()
	if err := s.sender.Send(ctx, req); err != nil {
		metrics.RecordEmailFailed(name, "delivery")
		s.lg.Error().Err(err).
			Str("to", req.To).
			Str("host", req.SMTPHost).
			Dur("took", time.Since(start)).
			Msg("email sending failed")
		return domain.ErrDelivery(err)
	}

	metrics.RecordEmailSent(name, time.Since(start))
	s.lg.Info().Str("to", req.To).Dur("took", time.Since(start)).Msg("email sent successfully")
	return nil
}

// Relay validates then sends.
func (s *Service) Relay(ctx context.Context, req domain.SendRequest) error {
	if err := s.Validate(req); err != nil {
		metrics.RecordEmailFailed(s.sender.Name(), "validation")
		return err
	}
	return s.Send(ctx, req)
}

func (s *Service) withDefaults(req domain.SendRequest) domain.SendRequest {
	if req.SMTPHost == "" {
		req.SMTPHost = s.defaultHost
	}
	if req.SMTPPort == 0 {
		req.SMTPPort = s.defaultPort
	}
	return req
}
