package plist

import "testing"

// White-box checks for the structural-sharing and allocation guarantees
// that the exported API cannot observe directly.

func TestAppendSharesTail(t *testing.T) {
	base := New[string]().Append("a").Append("b")
	left := base.Append("c")
	right := base.Append("d")

	if left.head.prev != base.head {
		t.Fatal("extension does not share the base list's head node")
	}
	if right.head.prev != base.head {
		t.Fatal("second extension does not share the base list's head node")
	}
	if left.head == right.head {
		t.Fatal("independent extensions must have distinct head nodes")
	}
}

// sink keeps the appended list reachable so the new node escapes to the
// heap; a discarded result would be stack-allocated and counted as zero.
var sink List[int]

func TestAppendAllocatesOneNode(t *testing.T) {
	l := New[int]()
	for i := 0; i < 64; i++ {
		l = l.Append(i)
	}

	allocs := testing.AllocsPerRun(100, func() {
		sink = l.Append(-1)
	})
	if allocs != 1 {
		t.Fatalf("Append allocated %v objects, want exactly 1 node", allocs)
	}
}
