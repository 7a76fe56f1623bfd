package rules

import (
	"net/mail"
	"net/url"
	"strings"
)

// ValidEmail validates that a string is a single RFC 5322 address
// without a display name.
func ValidEmail(value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}
			// Reject display-name forms like "Bob <bob@example.com>".
			return addr.Address == value
		},
		Message: "must be a valid email address",
	}
}

// ValidURL validates that a string is an absolute http or https URL.
func ValidURL(value string) Rule {
	return Rule{
		Check: func() bool {
			u, err := url.Parse(value)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Message: "must be a valid URL",
	}
}
