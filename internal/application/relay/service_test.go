package relay

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/mail-relay/internal/domain"
)

func newTestService(s Sender) *Service {
	return NewService(s, Config{DefaultHost: "smtp.gmail.com", DefaultPort: 465}, zerolog.Nop())
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(r *domain.SendRequest)
		field string
	}{
		{"to", func(r *domain.SendRequest) { r.To = "" }, "to"},
		{"subject", func(r *domain.SendRequest) { r.Subject = "" }, "subject"},
		{"text", func(r *domain.SendRequest) { r.Text = "" }, "text"},
		{"from", func(r *domain.SendRequest) { r.From = "" }, "from"},
		{"smtp_user", func(r *domain.SendRequest) { r.SMTPUser = "" }, "smtp_user"},
		{"smtp_password", func(r *domain.SendRequest) { r.SMTPPassword = "" }, "smtp_password"},
	}

	svc := newTestService(&fakeSender{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mut(&req)

			err := svc.Validate(req)
			require.Error(t, err)

			var de *domain.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, domain.KindValidation, de.Kind)
			assert.Equal(t, "missing_fields", de.Code)
			assert.Equal(t, domain.MsgMissingFields, de.Message)
			assert.Equal(t, tt.field, de.Meta["fields"])
		})
	}
}

func TestValidate_MissingBeatsMalformed(t *testing.T) {
	svc := newTestService(&fakeSender{})
	req := validRequest()
	req.To = "not-an-email"
	req.Subject = ""

	err := svc.Validate(req)
	assert.True(t, domain.Is(err, domain.CodeMissingFields), "got %v", err)
}

func TestValidate_AddressShape(t *testing.T) {
	tests := []struct {
		addr string
		ok   bool
	}{
		{"a@b.com", true},
		{"first.last+tag@sub.example.co", true},
		{"not-an-email", false},
		{"a@b", false},
		{"a@@b.com", false},
		{"a b@c.com", false},
		{"a@b .com", false},
		{"@b.com", false},
		{"a@.com", false},
		{"a@b.c.d", true},
		{" ", false},
		{"a\vb@c.com", false},
		{"a\u00a0b@c.com", false},
		{"a@b\u2028.com", false},
		{"a\u3000b@c.com", false},
		{"a@b.com\ufeff", false},
		{"\u2003a@b.com", false},
		{"用户@例子.中国", true},
	}

	svc := newTestService(&fakeSender{})
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			for _, field := range []string{"to", "from"} {
				req := validRequest()
				if field == "to" {
					req.To = tt.addr
				} else {
					req.From = tt.addr
				}

				err := svc.Validate(req)
				if tt.ok {
					assert.NoError(t, err, "%s=%q", field, tt.addr)
					continue
				}
				assert.True(t, domain.Is(err, domain.CodeInvalidEmail), "%s=%q: got %v", field, tt.addr, err)
			}
		})
	}
}

func TestValidate_OK(t *testing.T) {
	svc := newTestService(&fakeSender{})
	assert.NoError(t, svc.Validate(validRequest()))
}

func TestRelay_InvalidRequestNeverReachesSender(t *testing.T) {
	fs := &fakeSender{}
	svc := newTestService(fs)

	req := validRequest()
	req.From = "nope"

	err := svc.Relay(context.Background(), req)
	assert.True(t, domain.Is(err, domain.CodeInvalidEmail))
	assert.Empty(t, fs.calls())
}

func TestSend_AppliesDefaults(t *testing.T) {
	fs := &fakeSender{}
	svc := newTestService(fs)

	require.NoError(t, svc.Relay(context.Background(), validRequest()))

	calls := fs.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "smtp.gmail.com", calls[0].SMTPHost)
	assert.Equal(t, 465, calls[0].SMTPPort)
	assert.Equal(t, "<p>hi</p>", calls[0].Text)
}

func TestSend_CallerOverridesHostAndPort(t *testing.T) {
	fs := &fakeSender{}
	svc := newTestService(fs)

	req := validRequest()
	req.SMTPHost = "mail.example.com"
	req.SMTPPort = 2465
	require.NoError(t, svc.Relay(context.Background(), req))

	calls := fs.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "mail.example.com", calls[0].SMTPHost)
	assert.Equal(t, 2465, calls[0].SMTPPort)
}

func TestSend_FailureIsDeliveryErrorWithCause(t *testing.T) {
	cause := errors.New("535 5.7.8 Username and Password not accepted")
	fs := &fakeSender{err: cause}
	svc := newTestService(fs)

	err := svc.Relay(context.Background(), validRequest())
	require.Error(t, err)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.KindDelivery, de.Kind)
	assert.Equal(t, domain.MsgSendFailed, de.Message)
	assert.ErrorIs(t, err, cause)

	// one attempt, no retry
	assert.Len(t, fs.calls(), 1)
}

func TestSenderName(t *testing.T) {
	assert.Equal(t, "fake_test", newTestService(&fakeSender{}).SenderName())
}
