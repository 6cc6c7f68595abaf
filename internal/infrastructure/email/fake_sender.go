package email

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/baechuer/mail-relay/internal/domain"
)

// ErrFakeFailure is returned by FakeSender when configured to fail.
var ErrFakeFailure = errors.New("fake sender: simulated delivery failure")

// FakeSender is a development/testing sender. It logs instead of dialing.
//
// FailMode:
// - "none" (default): always succeed
// - "fail": return ErrFakeFailure
type FakeSender struct {
	lg       zerolog.Logger
	failMode string
}

func NewFakeSender(failMode string, lg zerolog.Logger) *FakeSender {
	return &FakeSender{
		lg:       lg.With().Str("component", "fake_sender").Logger(),
		failMode: failMode,
	}
}

func (s *FakeSender) Name() string { return "fake" }

func (s *FakeSender) Send(ctx context.Context, req domain.SendRequest) error {
	s.lg.Info().
		Str("from", req.From).
		Str("to", req.To).
		Str("subject", req.Subject).
		Str("host", req.SMTPHost).
		Int("port", req.SMTPPort).
		Int("html_bytes", len(req.Text)).
		Msg("FAKE send email")

	if s.failMode != "fail" {
		return nil
	}

	// simulates IO so failure logs read in order
	select {
	case <-time.After(50 * time.Millisecond):
	case <-ctx.Done():
		return ctx.Err()
	}
	return ErrFakeFailure
}
