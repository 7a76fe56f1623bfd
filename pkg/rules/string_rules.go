package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Message: "field is required",
	}
}

// MinLen validates that a string has at least min characters.
func MinLen(value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Message: fmt.Sprintf("must be at least %d characters long", min),
	}
}

// MaxLen validates that a string has at most max characters.
func MaxLen(value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Message: fmt.Sprintf("must be at most %d characters long", max),
	}
}

// Len validates that a string has exactly the given number of characters.
func Len(value string, exact int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) == exact
		},
		Message: fmt.Sprintf("must be exactly %d characters long", exact),
	}
}

// Matches validates a string against a precompiled regular expression.
func Matches(value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Message: fmt.Sprintf("must match pattern %s", pattern.String()),
	}
}

// OneOf validates that a string is one of the allowed values.
func OneOf(value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}
