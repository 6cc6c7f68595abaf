package relay

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/baechuer/mail-relay/internal/domain"
)

// mailboxPattern is the address shape accepted for "to" and "from":
// local@domain.tld with a single "@". RE2's \s is ASCII only, so
// Unicode whitespace is rejected separately by hasSpace.
var mailboxPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// wireNames maps struct fields to the JSON names callers know them by.
var wireNames = map[string]string{
	"To":           "to",
	"From":         "from",
	"Subject":      "subject",
	"Text":         "text",
	"SMTPUser":     "smtp_user",
	"SMTPPassword": "smtp_password",
}

func newValidator() *validator.Validate {
	v := validator.New()
	// only fails on a programming error (duplicate/empty tag)
	if err := v.RegisterValidation("mailbox", validateMailbox); err != nil {
		panic(err)
	}
	return v
}

func validateMailbox(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return !hasSpace(s) && mailboxPattern.MatchString(s)
}

// hasSpace reports any rune a browser-side \s would match: the Unicode
// White_Space set (\v, NBSP, U+2028, U+3000, ...) plus the BOM.
func hasSpace(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	}) >= 0
}

// Validate checks a request before any network action. Missing fields are
// reported ahead of malformed addresses.
func (s *Service) Validate(req domain.SendRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.ErrInternal(err)
	}

	var missing, malformed []string
	for _, fe := range verrs {
		name := wireNames[fe.StructField()]
		if name == "" {
			name = fe.StructField()
		}
		if fe.Tag() == "required" {
			missing = append(missing, name)
		} else {
			malformed = append(malformed, name)
		}
	}

	if len(missing) > 0 {
		return domain.ErrMissingFields(missing)
	}
	return domain.ErrInvalidEmail(malformed)
}
