package projmap

// Projection derives the logical key embedded in a value.
//
// A projection must be pure: deterministic, side-effect free, and defined for
// every value handed to the container. While a value is stored, projecting it
// must keep yielding the same key; mutating the key-relevant part of a stored
// value breaks the container just like mutating a map key would, and is not
// detected.
type Projection[K any, V any] func(v V) K

// Keyed is implemented by values that carry their own projection.
type Keyed[K any] interface {
	Key() K
}

// NewKeyedMap builds a Map whose projection is the value's own Key method.
func NewKeyedMap[K comparable, V Keyed[K]]() Map[K, V] {
	return NewMap(func(v V) K {
		return v.Key()
	})
}
