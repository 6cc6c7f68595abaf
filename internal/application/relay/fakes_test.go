package relay

import (
	"context"
	"sync"

	"github.com/baechuer/mail-relay/internal/domain"
)

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []domain.SendRequest
}

func (f *fakeSender) Send(ctx context.Context, req domain.SendRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, req)
	return f.err
}

func (f *fakeSender) Name() string { return "fake_test" }

func (f *fakeSender) calls() []domain.SendRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.SendRequest(nil), f.sent...)
}

func validRequest() domain.SendRequest {
	return domain.SendRequest{
		To:           "a@b.com",
		From:         "c@d.com",
		Subject:      "S",
		Text:         "<p>hi</p>",
		SMTPUser:     "u",
		SMTPPassword: "p",
	}
}
