package rules

import (
	"github.com/JulesGuesnon/garde/pkg/fieldpath"
	"github.com/JulesGuesnon/garde/pkg/report"
)

// Numeric constrains the numeric rule helpers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is a single validation rule: a check plus the message recorded
// when the check fails.
type Rule struct {
	Check   func() bool
	Message string
}

// Apply evaluates rules in order and appends one entry at path into r
// for every rule whose check fails.
func Apply(r *report.Report, path fieldpath.Path, rules ...Rule) {
	for _, rule := range rules {
		if !rule.Check() {
			r.Append(path, report.NewError(rule.Message))
		}
	}
}
