package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation ErrKind = "validation" // 400
	KindDelivery   ErrKind = "delivery"   // 500
	KindInternal   ErrKind = "internal"   // 500
)

// Stable machine codes carried in Error.Code.
const (
	CodeInvalidJSON   = "invalid_json"
	CodeMissingFields = "missing_fields"
	CodeInvalidEmail  = "invalid_email"
	CodeSendFailed    = "send_failed"
	CodeInternal      = "internal_error"
)

const (
	MsgMissingFields = "Missing required fields: to, subject, text, from, smtp_user, smtp_password are all required"
	MsgInvalidEmail  = `Invalid email format for "to" or "from" fields`
	MsgInvalidJSON   = "Invalid JSON body"
	MsgSendFailed    = "Failed to send email"
	MsgInternal      = "Internal server error"
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code
// - Message: safe summary for clients
// - Meta: optional details for logs (field names etc.)
// - Cause: wrapped underlying error
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

// Is reports whether err is a domain error carrying code.
func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// KindOf returns the kind of a domain error, or KindInternal for anything else.
func KindOf(err error) ErrKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, CodeInvalidJSON, MsgInvalidJSON, cause)
}

func ErrMissingFields(fields []string) *Error {
	return WithMeta(New(KindValidation, CodeMissingFields, MsgMissingFields), map[string]string{
		"fields": strings.Join(fields, ","),
	})
}

func ErrInvalidEmail(fields []string) *Error {
	return WithMeta(New(KindValidation, CodeInvalidEmail, MsgInvalidEmail), map[string]string{
		"fields": strings.Join(fields, ","),
	})
}

// ----------------------
// Delivery errors (500)
// ----------------------

// ErrDelivery wraps a failed SMTP attempt. The cause text is surfaced to the caller verbatim.
func ErrDelivery(cause error) *Error {
	return Wrap(KindDelivery, CodeSendFailed, MsgSendFailed, cause)
}

// ----------------------
// Internal errors (500)
// ----------------------

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, CodeInternal, MsgInternal, cause)
}
