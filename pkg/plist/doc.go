// Package plist provides an immutable, persistent singly-linked list with
// structural sharing.
//
// A List value is a cheap two-word handle (head pointer plus cached length)
// onto a chain of immutable nodes. Appending never mutates or copies the
// existing chain: the new list's node points back at the old head, so any
// number of lists may share a common suffix. This makes List the right
// backbone for data that is extended many times along a recursive descent
// and snapshotted often, such as field paths collected during validation.
//
// # Usage
//
//	import "github.com/JulesGuesnon/garde/pkg/plist"
//
//	var l plist.List[string]        // empty, ready to use
//	a := l.Append("a")              // [a]
//	ab := a.Append("b")             // [b a], shares a's node
//	ac := a.Append("c")             // [c a], also shares a's node
//
//	for v := range ab.All() {       // yields "b", then "a"
//	    // most recently appended first
//	}
//
// # Performance
//
// Append is O(1) and allocates exactly one node. Len and IsEmpty are O(1)
// via the cached length. Iteration is O(n) with no allocation. Shared nodes
// are reclaimed by the garbage collector once the last list referencing
// them is gone.
//
// The zero value is the empty list; New is provided for symmetry.
package plist
