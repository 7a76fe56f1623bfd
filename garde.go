package garde

import (
	"github.com/JulesGuesnon/garde/pkg/fieldpath"
	"github.com/JulesGuesnon/garde/pkg/report"
)

// Validator is implemented by values that can validate themselves.
// Implementations descend into their fields, extending path with Join
// for every field or element they enter, and append a report entry for
// every rule that fails. Validate must not retain r.
type Validator interface {
	Validate(path fieldpath.Path, r *report.Report)
}

// Validate runs v against a fresh report rooted at an anonymous path.
// It returns nil when validation passes, otherwise the non-empty
// *report.Report as the error value.
func Validate(v Validator) error {
	r := report.New()
	v.Validate(fieldpath.New(fieldpath.NoKey{}), r)
	if r.IsEmpty() {
		return nil
	}
	return r
}
