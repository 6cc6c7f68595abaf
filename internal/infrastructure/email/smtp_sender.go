package email

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"

	"github.com/baechuer/mail-relay/internal/domain"
)

// SMTPSender dials a fresh implicit-TLS SMTP session for every message,
// authenticating with the credentials carried by the request.
type SMTPSender struct {
	lg zerolog.Logger

	timeout            time.Duration
	insecureSkipVerify bool
}

type SMTPConfig struct {
	// Timeout bounds dial and IO. Zero keeps the go-mail default.
	Timeout time.Duration
	// InsecureSkipVerify disables certificate checks. Dev/test only.
	InsecureSkipVerify bool
}

func NewSMTPSender(cfg SMTPConfig, lg zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		lg:                 lg.With().Str("component", "smtp_sender").Logger(),
		timeout:            cfg.Timeout,
		insecureSkipVerify: cfg.InsecureSkipVerify,
	}
}

func (s *SMTPSender) Name() string { return "smtp" }

// Send returns the go-mail error untouched so callers can surface its text.
func (s *SMTPSender) Send(ctx context.Context, req domain.SendRequest) error {
	m := mail.NewMsg()
	if err := m.From(req.From); err != nil {
		return err
	}
	if err := m.To(req.To); err != nil {
		return err
	}
	m.Subject(req.Subject)
	m.SetBodyString(mail.TypeTextHTML, req.Text)

	c, err := mail.NewClient(req.SMTPHost, s.clientOptions(req)...)
	if err != nil {
		return err
	}

	s.lg.Debug().Str("host", req.SMTPHost).Int("port", req.SMTPPort).Str("to", req.To).Msg("attempting smtp send")
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		s.lg.Debug().Err(err).Str("host", req.SMTPHost).Int("port", req.SMTPPort).Msg("smtp send failed")
		return err
	}

	s.lg.Debug().Str("to", req.To).Msg("smtp send ok")
	return nil
}

func (s *SMTPSender) clientOptions(req domain.SendRequest) []mail.Option {
	opts := []mail.Option{
		mail.WithPort(req.SMTPPort),
		mail.WithSSL(),
		mail.WithTLSConfig(&tls.Config{
			ServerName:         req.SMTPHost,
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: s.insecureSkipVerify, //nolint:gosec // opt-in via SMTP_INSECURE_SKIP_VERIFY
		}),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(req.SMTPUser),
		mail.WithPassword(req.SMTPPassword),
	}
	if s.timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.timeout))
	}
	return opts
}
