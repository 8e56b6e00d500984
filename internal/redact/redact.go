// Package redact removes sensitive fragments from strings before they are
// logged. Persistence errors routinely embed connection URLs, SQL text, and
// user email addresses; none of those belong in operator logs, let alone in
// a client response.
package redact

import "regexp"

// Redaction placeholders
const (
	redactedCredential = "[REDACTED_CREDENTIAL]"
	redactedSQL        = "[REDACTED_SQL]"
	redactedEmail      = "[REDACTED_EMAIL]"
)

var replacements = []struct {
	pattern     *regexp.Regexp
	placeholder string
}{
	// Connection strings with inline credentials
	{regexp.MustCompile(`(?i)postgres(?:ql)?://[^@\s]+@`), redactedCredential},
	// SQL statements leaked through driver errors
	{regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\s[\s\w,*()$='"]+(?:FROM|INTO|SET|WHERE)[\s\w,*()$='"]*`), redactedSQL},
	// Email addresses (user PII)
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), redactedEmail},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range replacements {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
// Returns the empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
