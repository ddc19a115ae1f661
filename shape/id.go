package shape

// ID is a shape identifier handed out by an IDAllocator.
type ID uint64

// IDAllocator hands out monotonically increasing shape ids. It is not safe
// for concurrent use; the owner of the simulation step serializes
// construction.
type IDAllocator struct {
	next ID
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next id.
func (a *IDAllocator) Next() ID {
	id := a.next
	a.next++
	return id
}

// Reset rewinds the counter. Shapes created before the reset keep their ids,
// so new shapes may collide with them.
func (a *IDAllocator) Reset() {
	a.next = 0
}

// DefaultIDs is the process-wide allocator used when a constructor is given
// a nil allocator.
var DefaultIDs = NewIDAllocator()

// ResetIDCounter resets DefaultIDs.
func ResetIDCounter() {
	DefaultIDs.Reset()
}
