package rules

import "fmt"

// RequiredNum validates that a numeric value is not zero.
func RequiredNum[T Numeric](value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value != zero
		},
		Message: "field is required",
	}
}

// Min validates that a numeric value is greater than or equal to min.
func Min[T Numeric](value, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Message: fmt.Sprintf("must be at least %v", min),
	}
}

// Max validates that a numeric value is less than or equal to max.
func Max[T Numeric](value, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Message: fmt.Sprintf("must be at most %v", max),
	}
}

// Between validates that a numeric value lies in [min, max].
func Between[T Numeric](value, min, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Message: fmt.Sprintf("must be between %v and %v", min, max),
	}
}

// Positive validates that a numeric value is greater than zero.
func Positive[T Numeric](value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value > zero
		},
		Message: "must be positive",
	}
}

// NonNegative validates that a numeric value is zero or greater.
func NonNegative[T Numeric](value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value >= zero
		},
		Message: "must not be negative",
	}
}
