package shape

// Owners maps shape ids to the objects that own them, so query results can be
// traced back to a game object without storing it in the shape.
type Owners[T any] struct {
	byID map[ID]T
}

func NewOwners[T any]() *Owners[T] {
	return &Owners[T]{byID: make(map[ID]T)}
}

// Register records owner for id, replacing any previous owner.
func (o *Owners[T]) Register(id ID, owner T) {
	if o.byID == nil {
		o.byID = make(map[ID]T)
	}
	o.byID[id] = owner
}

// Owner returns the owner registered for id.
func (o *Owners[T]) Owner(id ID) (T, bool) {
	owner, ok := o.byID[id]
	return owner, ok
}

// Release forgets id and reports whether it was registered.
func (o *Owners[T]) Release(id ID) bool {
	if _, ok := o.byID[id]; !ok {
		return false
	}
	delete(o.byID, id)
	return true
}

func (o *Owners[T]) Len() int {
	return len(o.byID)
}
