package projmap

import "fmt"

type projectedMap[K comparable, V any] struct {
	entries map[K]V
	project Projection[K, V]
}

// NewMap builds a Map backed by a builtin map keyed by the projected key.
// Probing by a bare key needs no placeholder value.
func NewMap[K comparable, V any](project Projection[K, V]) Map[K, V] {
	return &projectedMap[K, V]{
		entries: make(map[K]V),
		project: project,
	}
}

func (m *projectedMap[K, V]) Put(v V) (prev V, replaced bool) {
	k := m.project(v)
	prev, replaced = m.entries[k]
	m.entries[k] = v
	return prev, replaced
}

func (m *projectedMap[K, V]) Add(v V) error {
	k := m.project(v)
	if _, ok := m.entries[k]; ok {
		return ErrKeyExisted
	}
	m.entries[k] = v
	return nil
}

func (m *projectedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

func (m *projectedMap[K, V]) Delete(k K) (V, bool) {
	v, ok := m.entries[k]
	if ok {
		delete(m.entries, k)
	}
	return v, ok
}

func (m *projectedMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *projectedMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *projectedMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *projectedMap[K, V]) Clear() {
	m.entries = make(map[K]V)
}

func (m *projectedMap[K, V]) Range(fn func(v V) bool) {
	for _, v := range m.entries {
		if !fn(v) {
			return
		}
	}
}

func (m *projectedMap[K, V]) Entries() []V {
	arr := make([]V, 0, len(m.entries))
	for _, v := range m.entries {
		arr = append(arr, v)
	}
	return arr
}

func (m *projectedMap[K, V]) Keys() []K {
	arr := make([]K, 0, len(m.entries))
	for k := range m.entries {
		arr = append(arr, k)
	}
	return arr
}

func (m *projectedMap[K, V]) String() string {
	return fmt.Sprint(m.entries)
}
