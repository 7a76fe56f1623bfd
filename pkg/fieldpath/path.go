package fieldpath

import (
	"encoding/binary"
	"encoding/json"
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/JulesGuesnon/garde/pkg/plist"
)

// Path is an immutable sequence of kind-tagged components naming a
// location inside a nested value. Components are stored most recent
// first so that Join can share the whole ancestor chain; rendering and
// matching reverse the order.
//
// The zero value is the empty path.
type Path struct {
	components plist.List[component]
}

// smallDepth is the component count up to which rendering and matching
// stay on the stack. Validation paths rarely go deeper.
const smallDepth = 8

// Empty returns a path with no components. It renders to "".
func Empty() Path {
	return Path{}
}

// New returns a path holding the single given component.
func New(c Component) Path {
	return Empty().Join(c)
}

// Join returns a new path with c appended as the deepest segment.
// The receiver is unchanged and shares all of its components with the
// result.
func (p Path) Join(c Component) Path {
	return Path{components: p.components.Append(makeComponent(c))}
}

// Len returns the number of components. O(1).
func (p Path) Len() int {
	return p.components.Len()
}

// IsEmpty reports whether the path has no components.
func (p Path) IsEmpty() bool {
	return p.components.IsEmpty()
}

// All iterates (kind, text) pairs deepest-first, following the internal
// storage order. Callers that need root-first order collect and reverse.
func (p Path) All() iter.Seq2[Kind, string] {
	return func(yield func(Kind, string) bool) {
		for c := range p.components.All() {
			if !yield(c.kind, c.text) {
				return
			}
		}
	}
}

// Equal reports whether both paths hold the same (kind, text) sequence.
// Sharing topology is irrelevant: a path always equals an identically
// built copy.
func (p Path) Equal(other Path) bool {
	return plist.Equal(p.components, other.components)
}

// Hash returns a structural hash of the (kind, text) sequence. Paths
// that are Equal hash identically. Texts are length-prefixed so that
// component boundaries stay unambiguous for arbitrary byte content.
func (p Path) Hash() uint64 {
	d := xxhash.New()
	var lenBuf [binary.MaxVarintLen64]byte
	for c := range p.components.All() {
		_, _ = d.Write([]byte{byte(c.kind)})
		n := binary.PutUvarint(lenBuf[:], uint64(len(c.text)))
		_, _ = d.Write(lenBuf[:n])
		_, _ = d.WriteString(c.text)
	}
	return d.Sum64()
}

// rootFirst collects the components in root-first order, using buf as
// backing storage when the path is shallow enough.
func (p Path) rootFirst(buf []component) []component {
	n := p.components.Len()
	if n > cap(buf) {
		buf = make([]component, n)
	} else {
		buf = buf[:n]
	}
	i := n
	for c := range p.components.All() {
		i--
		buf[i] = c
	}
	return buf
}

// String renders the path root-first in dotted/indexed form: keys are
// separated by ".", indexes wrapped in "[...]", anonymous components
// contribute nothing. The empty path renders to "".
func (p Path) String() string {
	if p.IsEmpty() {
		return ""
	}
	var buf [smallDepth]component
	var b strings.Builder
	renderComponents(&b, p.rootFirst(buf[:0]))
	return b.String()
}

// GoString lists the component texts root-first, without separators or
// kinds. Used by the %#v verb.
func (p Path) GoString() string {
	var buf [smallDepth]component
	comps := p.rootFirst(buf[:0])

	var b strings.Builder
	b.WriteString("fieldpath.Path[")
	for i, c := range comps {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(c.text)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the path as its rendered string.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// renderComponents writes comps, given in root-first order, in the
// dotted/indexed form. KindNone components are transparent: they emit
// no text and suppress the separator of the following component.
func renderComponents(b *strings.Builder, comps []component) {
	first := true
	for _, c := range comps {
		if c.kind == KindNone {
			continue
		}
		switch {
		case first && c.kind == KindIndex:
			b.WriteByte('[')
		case !first && c.kind == KindKey:
			b.WriteByte('.')
		case !first && c.kind == KindIndex:
			b.WriteByte('[')
		}
		first = false
		b.WriteString(c.text)
		if c.kind == KindIndex {
			b.WriteByte(']')
		}
	}
}
