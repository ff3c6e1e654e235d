// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. The main concern here is the Gemini API
// key, which upstream client errors have been known to echo back, plus file
// paths and hosts from wrapped I/O errors.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
	RedactedHostPlaceholder = "[REDACTED_HOST]"
)

// Precompiled regex patterns
var (
	// API keys and tokens
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// File paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	// Hosts with optional port
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{apiKeyRegex, RedactedKeyPlaceholder},
		{unixPathRegex, RedactedPathPlaceholder},
		{hostPortRegex, RedactedHostPlaceholder},
	}
)

// String redacts sensitive content from a string.
func String(s string) string {
	for _, pp := range patternPlaceholders {
		s = pp.pattern.ReplaceAllString(s, pp.placeholder)
	}
	return s
}

// Error redacts sensitive content from an error's message. A nil error
// yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
