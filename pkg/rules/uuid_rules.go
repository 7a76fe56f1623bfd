package rules

import (
	"github.com/google/uuid"
)

// ValidUUID validates standard 36-character UUID format, with cheap
// shape checks before parsing.
func ValidUUID(value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) != 36 {
				return false
			}
			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Message: "must be a valid UUID",
	}
}

// NonNilUUID validates that a UUID is not the nil UUID.
func NonNilUUID(value uuid.UUID) Rule {
	return Rule{
		Check: func() bool {
			return value != uuid.Nil
		},
		Message: "must not be the nil UUID",
	}
}
