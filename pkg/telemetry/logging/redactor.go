package logging

import (
	"log/slog"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`([a-zA-Z0-9._%+-]+)@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)

var sensitiveKeys = []string{"password", "passwd", "secret", "token", "api_key", "apikey", "authorization"}

// Redactor masks PII in log attributes. E-mail addresses keep their first
// character and domain; values of sensitive keys are replaced entirely.
type Redactor struct{}

// NewRedactor creates a Redactor.
func NewRedactor() *Redactor {
	return &Redactor{}
}

// RedactString masks every e-mail address in value.
func (r *Redactor) RedactString(value string) string {
	if value == "" || !strings.Contains(value, "@") {
		return value
	}
	return emailPattern.ReplaceAllStringFunc(value, RedactEmail)
}

// ReplaceAttr is a slog.HandlerOptions.ReplaceAttr hook.
func (r *Redactor) ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, "***")
	}
	if a.Value.Kind() == slog.KindString {
		if s := a.Value.String(); strings.Contains(s, "@") {
			return slog.String(a.Key, r.RedactString(s))
		}
	}
	return a
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// RedactEmail redacts an email address partially (shows first char and domain).
func RedactEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	username, domain := email[:at], email[at+1:]
	if username == "" {
		return "***@" + domain
	}
	return username[:1] + "***@" + domain
}
