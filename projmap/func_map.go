package projmap

import "fmt"

type funcMap[K any, V any] struct {
	buckets map[uint64][]V
	size    int
	project Projection[K, V]
	hash    func(K) uint64
	equal   func(K, K) bool
}

// NewFuncMap builds a Map for key types that are not comparable, such as byte
// slices. hash and equal define the key's identity; both the stored values and
// bare probe keys are folded into the same hash space, so a lookup never has
// to construct a value around the key. hash and equal must be consistent:
// equal keys must hash identically.
func NewFuncMap[K any, V any](project Projection[K, V], hash func(K) uint64, equal func(K, K) bool) Map[K, V] {
	return &funcMap[K, V]{
		buckets: make(map[uint64][]V),
		project: project,
		hash:    hash,
		equal:   equal,
	}
}

func (m *funcMap[K, V]) lookup(k K) (h uint64, i int) {
	h = m.hash(k)
	for i, v := range m.buckets[h] {
		if m.equal(m.project(v), k) {
			return h, i
		}
	}
	return h, -1
}

func (m *funcMap[K, V]) Put(v V) (prev V, replaced bool) {
	h, i := m.lookup(m.project(v))
	if i >= 0 {
		prev = m.buckets[h][i]
		m.buckets[h][i] = v
		return prev, true
	}
	m.buckets[h] = append(m.buckets[h], v)
	m.size++
	return prev, false
}

func (m *funcMap[K, V]) Add(v V) error {
	h, i := m.lookup(m.project(v))
	if i >= 0 {
		return ErrKeyExisted
	}
	m.buckets[h] = append(m.buckets[h], v)
	m.size++
	return nil
}

func (m *funcMap[K, V]) Get(k K) (v V, ok bool) {
	h, i := m.lookup(k)
	if i < 0 {
		return v, false
	}
	return m.buckets[h][i], true
}

func (m *funcMap[K, V]) Delete(k K) (v V, ok bool) {
	h, i := m.lookup(k)
	if i < 0 {
		return v, false
	}
	bucket := m.buckets[h]
	v = bucket[i]
	bucket[i] = bucket[len(bucket)-1]
	bucket = bucket[:len(bucket)-1]
	if len(bucket) == 0 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = bucket
	}
	m.size--
	return v, true
}

func (m *funcMap[K, V]) Contains(k K) bool {
	_, i := m.lookup(k)
	return i >= 0
}

func (m *funcMap[K, V]) Size() int {
	return m.size
}

func (m *funcMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

func (m *funcMap[K, V]) Clear() {
	m.buckets = make(map[uint64][]V)
	m.size = 0
}

func (m *funcMap[K, V]) Range(fn func(v V) bool) {
	for _, bucket := range m.buckets {
		for _, v := range bucket {
			if !fn(v) {
				return
			}
		}
	}
}

func (m *funcMap[K, V]) Entries() []V {
	arr := make([]V, 0, m.size)
	for _, bucket := range m.buckets {
		arr = append(arr, bucket...)
	}
	return arr
}

func (m *funcMap[K, V]) Keys() []K {
	arr := make([]K, 0, m.size)
	for _, bucket := range m.buckets {
		for _, v := range bucket {
			arr = append(arr, m.project(v))
		}
	}
	return arr
}

func (m *funcMap[K, V]) String() string {
	return fmt.Sprint(m.Entries())
}
