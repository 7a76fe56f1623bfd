package report

import (
	"encoding/json"
	"iter"
	"strings"

	"github.com/JulesGuesnon/garde/pkg/fieldpath"
)

// Entry is one (path, error) pair inside a report.
type Entry struct {
	Path  fieldpath.Path `json:"path"`
	Error Error          `json:"error"`
}

// Report is an insertion-ordered collection of validation errors keyed
// by path. The zero value of the pointed-to struct is usable, but New
// is the conventional constructor.
type Report struct {
	entries []Entry
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Append records err at path. Pairs are kept in append order; the same
// path may appear any number of times.
func (r *Report) Append(path fieldpath.Path, err Error) {
	r.entries = append(r.entries, Entry{Path: path, Error: err})
}

// Len returns the number of recorded pairs.
func (r *Report) Len() int {
	return len(r.entries)
}

// IsEmpty reports whether no errors have been recorded.
func (r *Report) IsEmpty() bool {
	return len(r.entries) == 0
}

// All iterates the recorded pairs in insertion order.
func (r *Report) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Select lazily yields every error whose path begins with pattern, in
// insertion order. The yielded pointers borrow into the report and stay
// valid until the next Append.
func (r *Report) Select(pattern fieldpath.Pattern) iter.Seq[*Error] {
	return func(yield func(*Error) bool) {
		for i := range r.entries {
			if pattern.Matches(r.entries[i].Path) {
				if !yield(&r.entries[i].Error) {
					return
				}
			}
		}
	}
}

// String renders one "path: message" line per entry, each terminated by
// a newline. An empty report renders to "".
func (r *Report) String() string {
	var b strings.Builder
	for _, e := range r.entries {
		b.WriteString(e.Path.String())
		b.WriteString(": ")
		b.WriteString(e.Error.Message())
		b.WriteByte('\n')
	}
	return b.String()
}

// Error implements the error interface with the same rendering as
// String, letting callers return a non-empty report directly.
func (r *Report) Error() string {
	return r.String()
}

// MarshalJSON encodes the report as an array of {"path", "error"}
// objects in insertion order.
func (r *Report) MarshalJSON() ([]byte, error) {
	if r.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.entries)
}
