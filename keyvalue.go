package persi

// KeyValue is a pair ordered and compared by key only.  Two pairs are
// positionally equal when their keys compare equal, whatever their
// values; that is what makes insert-or-replace a same-position
// substitution in the tree.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
