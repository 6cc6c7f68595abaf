package domain

// SendRequest is a single relay request. It lives for exactly one HTTP call
// and is never stored; the SMTP credentials are used once and dropped.
type SendRequest struct {
	To      string `validate:"required,mailbox"`
	From    string `validate:"required,mailbox"`
	Subject string `validate:"required"`
	// Text is sent as the HTML body.
	Text string `validate:"required"`

	SMTPUser     string `validate:"required"`
	SMTPPassword string `validate:"required"`

	// Zero values mean "use the configured default".
	SMTPHost string
	SMTPPort int
}
