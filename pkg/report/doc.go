// Package report collects validation errors keyed by field path.
//
// A Report is a flat, insertion-ordered list of (Path, Error) pairs. A
// single location may carry any number of errors; nothing is deduplicated
// or reordered. The validation driver owns the report and appends into it
// as rules fail; afterwards consumers either render the whole report or
// query a specific location with Select.
//
// # Usage
//
//	import (
//		"github.com/JulesGuesnon/garde/pkg/fieldpath"
//		"github.com/JulesGuesnon/garde/pkg/report"
//	)
//
//	r := report.New()
//	path := fieldpath.New(fieldpath.Key("user")).Join(fieldpath.Key("email"))
//	r.Append(path, report.NewError("must be a valid email address"))
//
//	fmt.Print(r) // "user.email: must be a valid email address\n"
//
//	for err := range r.Select(fieldpath.MustParsePattern("user.email")) {
//		// errors attached at or below user.email, in insertion order
//	}
//
// Report implements the error interface, so a validation entry point can
// return a non-empty report directly as its error value.
//
// # Serialization
//
// Report marshals to a JSON array of {"path", "error"} objects; Path
// marshals as its rendered string and Error as its message. The report
// itself is not unmarshalable: it is a write-once product of a validation
// pass, not a transport type.
//
// # Concurrency
//
// A Report is owned by a single goroutine while being built. Handing the
// finished value to another goroutine is fine; concurrent Append is not.
package report
