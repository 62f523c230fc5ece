package projmap

// Map is a map-like container that stores only values and derives the key of
// each value through a projection supplied at construction. No key is ever
// persisted next to its value.
//
// The container is not safe for concurrent use; callers needing that must
// wrap it with their own synchronization.
type Map[K any, V any] interface {
	// Put stores v under its projected key. If another value with the same
	// projected key was present it is evicted and returned with replaced=true.
	Put(v V) (prev V, replaced bool)
	// Add stores v under its projected key, or returns ErrKeyExisted without
	// touching the stored value when the key is already present.
	Add(v V) error
	// Get returns the value whose projected key equals k.
	Get(k K) (V, bool)
	// Delete evicts and returns the value whose projected key equals k.
	Delete(k K) (V, bool)
	Contains(k K) bool
	Size() int
	IsEmpty() bool
	Clear()
	// Range calls fn for every stored value exactly once, in unspecified
	// order, stopping early if fn returns false. Mutating the map during a
	// traversal leaves the traversal undefined.
	Range(fn func(v V) bool)
	Entries() []V
	Keys() []K
	String() string
}
