package model

import (
	"regexp"
	"strings"
	"time"
)

// Password constraints. bcrypt ignores input beyond 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// DateLayout is the canonical calendar date format stored for trips, bookings and catches.
const DateLayout = "2006-01-02"

var (
	boatLicensePattern = regexp.MustCompile(`^\d{8}$`)
	insurancePattern   = regexp.MustCompile(`^[A-Z0-9]{12}$`)
	postalCodePattern  = regexp.MustCompile(`^\d{5}$`)
	timePattern        = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// IsValidEmail performs a basic shape check on an email address
func IsValidEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex < atIndex+2 {
		return false
	}
	return dotIndex < len(email)-1
}

// NormalizeDate accepts a calendar date or an RFC 3339 timestamp and returns
// the date part in DateLayout. ok is false when s is neither.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(DateLayout), true
	}
	return "", false
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func required(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, FieldError{Field: field, Message: field + " is required"})
	}
	return errs
}

func enumField(errs []FieldError, field, value string, allowed ...string) []FieldError {
	if !oneOf(value, allowed...) {
		return append(errs, FieldError{Field: field, Message: field + " must be one of: " + strings.Join(allowed, ", ")})
	}
	return errs
}

func optionalEnum(errs []FieldError, field string, value *string, allowed ...string) []FieldError {
	if value == nil {
		return errs
	}
	return enumField(errs, field, *value, allowed...)
}

func optionalPattern(errs []FieldError, field string, value *string, re *regexp.Regexp, message string) []FieldError {
	if value != nil && !re.MatchString(*value) {
		return append(errs, FieldError{Field: field, Message: message})
	}
	return errs
}

// amountField rejects negative amounts and fractions of a cent
func amountField(errs []FieldError, field string, value *Money) []FieldError {
	switch {
	case value == nil:
	case value.IsNegative():
		errs = append(errs, FieldError{Field: field, Message: field + " must not be negative"})
	case !value.WholeCents():
		errs = append(errs, FieldError{Field: field, Message: field + " must have at most two decimal places"})
	}
	return errs
}

func dateField(errs []FieldError, field, value string) []FieldError {
	if _, ok := NormalizeDate(value); !ok {
		return append(errs, FieldError{Field: field, Message: field + " must be a date (YYYY-MM-DD)"})
	}
	return errs
}

func dateList(errs []FieldError, field string, values []string) []FieldError {
	for _, v := range values {
		if _, ok := NormalizeDate(v); !ok {
			return append(errs, FieldError{Field: field, Message: field + " must contain dates (YYYY-MM-DD)"})
		}
	}
	return errs
}

func timeList(errs []FieldError, field string, values []string) []FieldError {
	for _, v := range values {
		if !timePattern.MatchString(v) {
			return append(errs, FieldError{Field: field, Message: field + " must contain times (HH:MM)"})
		}
	}
	return errs
}

func normalizeDates(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if d, ok := NormalizeDate(v); ok {
			out = append(out, d)
		}
	}
	return out
}
