package core

// entity is the constraint shared by the three mesh entity kinds.
// Liveness is a tombstone: set at construction, cleared exactly when a
// topology algorithm unregisters the entity from its mesh table.
type entity interface {
	comparable
	live() bool
}

// Ptr is a nullable weak handle to a mesh entity. It is the only legal way
// to hold a cross-entity link: the mesh tables own the entities, every other
// reference is a Ptr that must be resolved before use and stops resolving
// once the target has been unregistered.
//
// The zero value is the empty (null) handle. Copying a Ptr is O(1) and
// copies the reference, never the entity.
type Ptr[E entity] struct {
	ref E
}

// Aliases for the three concrete handle kinds.
type (
	VertPtr = Ptr[*Vert]
	EdgePtr = Ptr[*Edge]
	FacePtr = Ptr[*Face]
)

// PtrTo derives a non-owning handle from an entity the caller holds.
// PtrTo(nil) yields the empty handle.
func PtrTo[E entity](e E) Ptr[E] {
	return Ptr[E]{ref: e}
}

// Resolve attempts to produce the target entity. It succeeds only while the
// target is still registered; afterwards it reports absence. Resolve is the
// only legal way to dereference a handle.
func (p Ptr[E]) Resolve() (E, bool) {
	var zero E
	if p.ref == zero || !p.ref.live() {
		return zero, false
	}

	return p.ref, true
}

// IsValid reports whether the handle currently resolves.
func (p Ptr[E]) IsValid() bool {
	_, ok := p.Resolve()

	return ok
}

// MergeResolve resolves two handles as one step, succeeding only if both
// succeed. Use it whenever an algorithm must compare or combine two
// potentially-stale references without acting on a half-resolved pair.
func MergeResolve[E entity](a, b Ptr[E]) (E, E, bool) {
	ra, okA := a.Resolve()
	rb, okB := b.Resolve()
	if !okA || !okB {
		var zero E

		return zero, zero, false
	}

	return ra, rb, true
}
