// Package typemap is a heterogeneous store with one slot per key type.
//
// A slot is selected by the zero value of its key type K. Two distinct
// instantiations of a generic key struct are different dynamic types, so they
// never share a slot, and no reflection is needed to tell them apart.
// K must not be an interface type: its zero value would be nil and every such
// key would collide.
//
// A Map is not safe for concurrent use; callers provide their own locking.
package typemap

type Map struct {
	slots map[any]any
}

func New() *Map {
	return &Map{slots: make(map[any]any)}
}

// Insert stores v in the slot of K, overwriting whatever was there.
func Insert[K comparable, V any](m *Map, v V) {
	var key K
	m.slots[key] = v
}

// Find returns the value stored in the slot of K.
// ok is false if the slot is empty or holds a value of another type.
func Find[K comparable, V any](m *Map) (v V, ok bool) {
	var key K
	raw, found := m.slots[key]
	if !found {
		return
	}
	v, ok = raw.(V)
	return
}

func Delete[K comparable](m *Map) {
	var key K
	delete(m.slots, key)
}

func (m *Map) Len() int {
	return len(m.slots)
}
