package shape

// Group identifies shapes that never collide with each other. NoGroup opts
// out of group filtering.
type Group uint

// Layers is a bitmask; two shapes can only collide when they share a bit.
type Layers uint32

const (
	NoGroup   Group  = 0
	AllLayers Layers = ^Layers(0)
)

// Filter decides which shape pairs may generate contacts.
type Filter struct {
	Group  Group
	Layers Layers
	// Sensor shapes report overlap but never produce a physical response.
	// It does not take part in ShouldCollide.
	Sensor bool
}

// DefaultFilter collides with everything and belongs to no group.
func DefaultFilter() Filter {
	return Filter{Group: NoGroup, Layers: AllLayers}
}

// ShouldCollide reports whether shapes carrying a and b are eligible for a
// contact.
func ShouldCollide(a, b Filter) bool {
	if a.Layers&b.Layers == 0 {
		return false
	}
	return a.Group == NoGroup || b.Group == NoGroup || a.Group != b.Group
}
