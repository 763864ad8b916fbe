// Package redact strips sensitive material from error text before it is
// logged: SMTP credentials, session tokens, email addresses, and file
// paths all flow through errors in this service, and none of them belong
// in a log line.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	TokenPlaceholder      = "[REDACTED_TOKEN]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
	PathPlaceholder       = "[REDACTED_PATH]"
)

var (
	// password=..., pwd: ... style fragments
	credentialRegex = regexp.MustCompile(`(?i)(password|passwd|pwd|secret)([=:\s]['"]?)[^'"&\s]{3,}`)

	// three-part base64url JWT session tokens
	jwtRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// digest recipient addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// absolute unix paths (tasks file, export artifacts, accounts file)
	pathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
)

// String redacts sensitive fragments from s.
func String(s string) string {
	s = credentialRegex.ReplaceAllString(s, "$1$2"+CredentialPlaceholder)
	s = jwtRegex.ReplaceAllString(s, TokenPlaceholder)
	s = emailRegex.ReplaceAllString(s, EmailPlaceholder)
	s = pathRegex.ReplaceAllString(s, PathPlaceholder)
	return s
}

// Error redacts err's message. A nil error yields the empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
