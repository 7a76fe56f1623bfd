// Package fieldpath names locations inside nested values.
//
// A Path is an ordered sequence of kind-tagged components: Key for named
// field access, Index for positional access, and NoKey for anonymous roots
// such as the top-level value under validation. Paths are immutable and
// built incrementally: Join returns a new path that shares every existing
// component with its parent, so descending a deeply nested structure never
// copies ancestor segments and snapshotting the current path is free.
//
// # Usage
//
//	import "github.com/JulesGuesnon/garde/pkg/fieldpath"
//
//	p := fieldpath.New(fieldpath.Key("user")).
//		Join(fieldpath.Key("addresses")).
//		Join(fieldpath.Index(0)).
//		Join(fieldpath.Key("city"))
//
//	p.String() // "user.addresses[0].city"
//
// The component capability is sealed: Key, Index and NoKey are the only
// component types, which keeps rendering and pattern matching closed over
// a fixed taxonomy.
//
// # Patterns
//
// A Pattern is a parsed path prefix used to query error reports. The
// grammar mirrors the rendered path syntax:
//
//	pattern := "" | segment chain*
//	segment := ident | "[" digits "]"
//	chain   := "." ident | "[" digits "]"
//
//	fieldpath.MustParsePattern("user.addresses[0]")
//
// Matching is component-wise and structural: a Key component only matches
// a Key with equal text, an Index only an Index. NoKey components are
// transparent on both sides. An empty pattern matches every path.
//
// # Performance
//
// Join is O(1) and allocates a single list node. Rendering and matching
// are O(depth) and reverse the internally stored component order through
// a small stack-allocated buffer; paths deeper than eight components fall
// back to one heap allocation per render.
package fieldpath
