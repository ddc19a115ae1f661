package shape

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestIDAllocator(t *testing.T) {
	ids := NewIDAllocator()
	for want := ID(0); want < 3; want++ {
		if got := ids.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
	ids.Reset()
	if got := ids.Next(); got != 0 {
		t.Fatalf("after Reset, Next() = %d, want 0", got)
	}

	other := NewIDAllocator()
	if got := other.Next(); got != 0 {
		t.Fatalf("independent allocator should start at 0, got %d", got)
	}
}

func TestShapesTakeSequentialIDs(t *testing.T) {
	ids := NewIDAllocator()
	body := FixedBody{}
	c := mustShape(t)(NewCircle(ids, body, 1, cp.Vector{}))
	s := mustShape(t)(NewSegment(ids, body, cp.Vector{}, cp.Vector{X: 1}, 0))
	p := mustShape(t)(NewBox(ids, body, 1, 1))
	if c.ID() != 0 || s.ID() != 1 || p.ID() != 2 {
		t.Fatalf("ids = %d, %d, %d, want 0, 1, 2", c.ID(), s.ID(), p.ID())
	}
}

func TestResetIDCounter(t *testing.T) {
	ResetIDCounter()
	first := mustShape(t)(NewCircle(nil, FixedBody{}, 1, cp.Vector{}))
	second := mustShape(t)(NewCircle(nil, FixedBody{}, 1, cp.Vector{}))
	if first.ID() != 0 || second.ID() != 1 {
		t.Fatalf("ids = %d, %d, want 0, 1", first.ID(), second.ID())
	}
	ResetIDCounter()
	again := mustShape(t)(NewCircle(nil, FixedBody{}, 1, cp.Vector{}))
	if again.ID() != first.ID() {
		t.Fatalf("reset should reuse id %d, got %d", first.ID(), again.ID())
	}
}
