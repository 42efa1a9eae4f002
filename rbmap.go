package persi

import (
	"iter"
	"reflect"
)

// RBMap is a persistent ordered map: a red-black tree of KeyValue
// pairs ordered solely by key.  No operation mutates an existing map;
// all return a new handle sharing untouched subtrees.
//
// Maps must be created by NewRBMap so they carry a key ordering.
type RBMap[K, V any, L RBLink[KeyValue[K, V], L]] struct {
	tree    RBTree[KeyValue[K, V], L]
	compare func(a, b K) int
}

// NewRBMap returns an empty map ordered by compare, a total order on
// keys.
func NewRBMap[K, V any, L RBLink[KeyValue[K, V], L]](compare func(a, b K) int) RBMap[K, V, L] {
	return RBMap[K, V, L]{
		tree: NewRBTree[KeyValue[K, V], L](func(a, b KeyValue[K, V]) int {
			return compare(a.Key, b.Key)
		}),
		compare: compare,
	}
}

// IsEmpty reports whether the map has no entries.
func (m RBMap[K, V, L]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// ContainsKey reports whether k is present.
func (m RBMap[K, V, L]) ContainsKey(k K) bool {
	_, ok := m.tree.GetFunc(func(e KeyValue[K, V]) int { return m.compare(k, e.Key) })
	return ok
}

// Inserted returns a new map containing (k, v).  If k is already
// present the existing entry is kept: the first writer wins.
func (m RBMap[K, V, L]) Inserted(k K, v V) RBMap[K, V, L] {
	return RBMap[K, V, L]{
		tree:    m.tree.Inserted(KeyValue[K, V]{Key: k, Value: v}),
		compare: m.compare,
	}
}

// InsertedOrReplaced returns a new map in which k maps to v, replacing
// any existing entry for k without changing its position in the tree.
func (m RBMap[K, V, L]) InsertedOrReplaced(k K, v V) RBMap[K, V, L] {
	return RBMap[K, V, L]{
		tree:    m.tree.InsertedOrReplaced(KeyValue[K, V]{Key: k, Value: v}),
		compare: m.compare,
	}
}

// Get returns the value stored for k.  The second result is false if
// k is absent; absence is a normal result, not an error.
func (m RBMap[K, V, L]) Get(k K) (V, bool) {
	e, ok := m.tree.GetFunc(func(e KeyValue[K, V]) int { return m.compare(k, e.Key) })
	if !ok {
		var v V
		return v, false
	}
	return e.Value, true
}

// GetKeyValue returns the stored key and value for k.  The stored key
// compares equal to k but need not be identical to it.
func (m RBMap[K, V, L]) GetKeyValue(k K) (K, V, bool) {
	e, ok := m.tree.GetFunc(func(e KeyValue[K, V]) int { return m.compare(k, e.Key) })
	return e.Key, e.Value, ok
}

// GetOrDefault returns the value stored for k, or def if k is absent.
func (m RBMap[K, V, L]) GetOrDefault(k K, def V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	return def
}

// Clone returns a new owned handle to the same map.
func (m RBMap[K, V, L]) Clone() RBMap[K, V, L] {
	return RBMap[K, V, L]{tree: m.tree.Clone(), compare: m.compare}
}

// Release drops the handle's ownership of the map.  The handle must
// not be used afterward.
func (m RBMap[K, V, L]) Release() {
	m.tree.Release()
}

// All returns the entries in ascending key order.
func (m RBMap[K, V, L]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// DiffIter invokes f for every entry that differs from the old map,
// in ascending key order.  added and removed together signify an
// entry whose value changed.  Iteration stops early if f returns
// false.  Subtrees the two versions share by reference are skipped
// without being walked, so diffing a version against a near ancestor
// costs proportional to the change, not the map.
func (m RBMap[K, V, L]) DiffIter(old RBMap[K, V, L], f func(added, removed bool, key K, addedValue, removedValue V) bool) {
	m.tree.diffFunc(old.tree,
		func(a, b KeyValue[K, V]) bool {
			return !reflect.DeepEqual(a.Value, b.Value)
		},
		func(added, removed bool, newEntry, oldEntry KeyValue[K, V]) bool {
			switch {
			case added && removed:
				return f(true, true, newEntry.Key, newEntry.Value, oldEntry.Value)
			case added:
				var zv V
				return f(true, false, newEntry.Key, newEntry.Value, zv)
			default:
				var zv V
				return f(false, true, oldEntry.Key, zv, oldEntry.Value)
			}
		})
}
