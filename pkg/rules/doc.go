// Package rules provides composable validation rules that record their
// failures into a report at a field path.
//
// Each source file groups a family of rules for a specific domain
// (string_rules.go, numeric_rules.go, collection_rules.go, etc.). Every
// exported validation function constructs and returns a Rule value: a
// boolean Check closure paired with the message to record when the check
// fails. There is no hidden global state; the package is stateless and
// goroutine-safe.
//
// # Usage
//
//	import (
//		"github.com/JulesGuesnon/garde/pkg/fieldpath"
//		"github.com/JulesGuesnon/garde/pkg/report"
//		"github.com/JulesGuesnon/garde/pkg/rules"
//	)
//
//	r := report.New()
//	at := fieldpath.New(fieldpath.Key("user")).Join(fieldpath.Key("email"))
//	rules.Apply(r, at,
//		rules.Required(email),
//		rules.ValidEmail(email),
//	)
//
// Apply evaluates the rules in order and appends one report entry at the
// given path for every failed check, so a single field can accumulate
// several messages.
//
// # Performance
//
// All helpers are simple comparisons or pattern checks. Long-running
// validations (e.g. network calls) belong outside this package, adapted
// into a Rule where appropriate.
package rules
