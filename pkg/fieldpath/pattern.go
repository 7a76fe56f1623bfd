package fieldpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned when a pattern string does not follow
// the dotted/indexed grammar. Matchable with errors.Is.
var ErrInvalidPattern = errors.New("fieldpath: invalid pattern")

// Pattern is a parsed path prefix used to query locations. A pattern of
// depth k matches any path whose first k visible components equal the
// pattern's components, kind and text both. The zero value is the empty
// pattern and matches every path.
type Pattern struct {
	components []component
}

// ParsePattern parses the dotted/indexed pattern grammar:
//
//	""            matches everything
//	a.b.c         keys separated by dots
//	xs[0].c       indexes in brackets, chainable
//	[0][1]        index-rooted patterns
//
// Identifiers are ASCII letters, digits and underscores, not starting
// with a digit. Indexes are unsigned decimal integers.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return Pattern{}, nil
	}

	var comps []component
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == '[':
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			if j == i+1 {
				return Pattern{}, fmt.Errorf("%w: expected digits after '[' at offset %d in %q", ErrInvalidPattern, i+1, s)
			}
			if j == len(s) || s[j] != ']' {
				return Pattern{}, fmt.Errorf("%w: unterminated index at offset %d in %q", ErrInvalidPattern, i, s)
			}
			comps = append(comps, component{kind: KindIndex, text: s[i+1 : j]})
			i = j + 1
		case c == '.':
			if len(comps) == 0 {
				return Pattern{}, fmt.Errorf("%w: leading separator in %q", ErrInvalidPattern, s)
			}
			i++
			if i == len(s) || !isIdentStart(s[i]) {
				return Pattern{}, fmt.Errorf("%w: expected identifier at offset %d in %q", ErrInvalidPattern, i, s)
			}
			j := i
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			comps = append(comps, component{kind: KindKey, text: s[i:j]})
			i = j
		case i == 0 && isIdentStart(c):
			j := i
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			comps = append(comps, component{kind: KindKey, text: s[i:j]})
			i = j
		default:
			return Pattern{}, fmt.Errorf("%w: unexpected character %q at offset %d in %q", ErrInvalidPattern, c, i, s)
		}
	}
	return Pattern{components: comps}, nil
}

// MustParsePattern is ParsePattern for compile-time-constant patterns.
// It panics on invalid input.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// PatternOf builds a pattern from components directly, bypassing the
// string grammar. Useful when the queried location is assembled
// programmatically.
func PatternOf(components ...Component) Pattern {
	comps := make([]component, 0, len(components))
	for _, c := range components {
		comps = append(comps, makeComponent(c))
	}
	return Pattern{components: comps}
}

// Len returns the number of components in the pattern.
func (p Pattern) Len() int {
	return len(p.components)
}

// String renders the pattern in the same dotted/indexed form as Path.
func (p Pattern) String() string {
	var b strings.Builder
	renderComponents(&b, p.components)
	return b.String()
}

// Matches reports whether the pattern is a component-wise prefix of
// path in root-first order. KindNone components are skipped on both
// sides; all other components must match kind and text exactly.
func (p Pattern) Matches(path Path) bool {
	var buf [smallDepth]component
	comps := path.rootFirst(buf[:0])

	i := 0
	for _, pc := range p.components {
		if pc.kind == KindNone {
			continue
		}
		for i < len(comps) && comps[i].kind == KindNone {
			i++
		}
		if i == len(comps) || comps[i] != pc {
			return false
		}
		i++
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
