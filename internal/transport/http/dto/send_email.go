package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/baechuer/mail-relay/internal/domain"
)

// SendEmailRequest is the POST /send-email body.
type SendEmailRequest struct {
	To           string `json:"to"`
	Subject      string `json:"subject"`
	Text         string `json:"text"`
	From         string `json:"from"`
	SMTPUser     string `json:"smtp_user"`
	SMTPPassword string `json:"smtp_password"`
	SMTPHost     string `json:"smtp_host,omitempty"`
	SMTPPort     Port   `json:"smtp_port,omitempty"`
}

func (r SendEmailRequest) ToDomain() domain.SendRequest {
	return domain.SendRequest{
		To:           r.To,
		From:         r.From,
		Subject:      r.Subject,
		Text:         r.Text,
		SMTPUser:     r.SMTPUser,
		SMTPPassword: r.SMTPPassword,
		SMTPHost:     r.SMTPHost,
		SMTPPort:     int(r.SMTPPort),
	}
}

// Port accepts either a JSON number or a numeric string. null, "" and 0 mean "unset".
type Port int

func (p *Port) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}

	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*p = 0
			return nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("smtp_port: %q is not a port number", s)
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("smtp_port: %d out of range", n)
	}
	*p = Port(n)
	return nil
}

// SendEmailResponse is the reply to POST /send-email, success or not.
type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
