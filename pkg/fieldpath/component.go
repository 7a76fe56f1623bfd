package fieldpath

import "strconv"

// Kind tags a path component with the access form it represents.
type Kind uint8

const (
	// KindNone marks an anonymous component that renders to nothing,
	// used for roots that have no name of their own.
	KindNone Kind = iota
	// KindKey marks named field access, rendered with a "." separator.
	KindKey
	// KindIndex marks positional access, rendered as "[n]".
	KindIndex
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindKey:
		return "key"
	case KindIndex:
		return "index"
	default:
		return "unknown"
	}
}

// Component is the capability implemented by values usable as path
// components. The set is sealed: Key, Index and NoKey are the only
// implementations, so the kind taxonomy is closed and rendering and
// matching never meet an unknown kind.
type Component interface {
	componentKind() Kind
	componentText() string
}

// Key is a named field component, e.g. a struct field or map key.
type Key string

func (Key) componentKind() Kind { return KindKey }

func (k Key) componentText() string { return string(k) }

func (k Key) String() string { return string(k) }

// Index is a positional component, e.g. a slice or array element.
type Index int

func (Index) componentKind() Kind { return KindIndex }

func (i Index) componentText() string { return strconv.Itoa(int(i)) }

func (i Index) String() string { return strconv.Itoa(int(i)) }

// NoKey is the anonymous component. It carries no text, renders to
// nothing, and is skipped by pattern matching.
type NoKey struct{}

func (NoKey) componentKind() Kind { return KindNone }

func (NoKey) componentText() string { return "" }

func (NoKey) String() string { return "" }

// component is the internal flattened form stored inside paths and
// patterns: the kind plus the component's rendered text.
type component struct {
	kind Kind
	text string
}

func makeComponent(c Component) component {
	return component{kind: c.componentKind(), text: c.componentText()}
}
