package report

import (
	"encoding/json"
	"strings"
)

// Error is a single validation message. It is a comparable value type:
// two errors are equal when their messages are equal. An Error carries
// no location of its own; the report pairs it with a path.
type Error struct {
	message string
}

// NewError returns an error holding the given message.
func NewError(message string) Error {
	return Error{message: message}
}

// Message returns the message text.
func (e Error) Message() string {
	return e.message
}

// Error implements the error interface, returning the message verbatim.
func (e Error) Error() string {
	return e.message
}

// String renders the message verbatim.
func (e Error) String() string {
	return e.message
}

// Compare orders errors lexicographically by message.
func (e Error) Compare(other Error) int {
	return strings.Compare(e.message, other.message)
}

// MarshalJSON encodes the error as its message string.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.message)
}
