package rules

import "fmt"

// NotEmpty validates that a slice has at least one item.
func NotEmpty[T any](value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Message: "must not be empty",
	}
}

// MinItems validates that a slice has at least min items.
func MinItems[T any](value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Message: fmt.Sprintf("must have at least %d items", min),
	}
}

// MaxItems validates that a slice has at most max items.
func MaxItems[T any](value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Message: fmt.Sprintf("must have at most %d items", max),
	}
}

// Unique validates that all items in a slice are distinct.
func Unique[T comparable](value []T) Rule {
	return Rule{
		Check: func() bool {
			seen := make(map[T]struct{}, len(value))
			for _, item := range value {
				if _, dup := seen[item]; dup {
					return false
				}
				seen[item] = struct{}{}
			}
			return true
		},
		Message: "must not contain duplicates",
	}
}
