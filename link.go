package persi

// Link is the capability a list needs from a node reference.  A Link
// value is a shared reference to one immutable node holding an element
// and an optional reference to the next node; the zero value of L is
// "no node".  Nothing here mutates a node after NewNode returns.
//
// Constructors are interface methods so that generic code can allocate
// nodes without naming a concrete type: they are invoked on the zero
// value of L and ignore their receiver.
type Link[T any, L any] interface {
	comparable

	// NewNode allocates a node holding x followed by next, taking
	// ownership of the next reference.  Callable on the zero L.
	NewNode(x T, next L) L
	// Clone returns a new owned reference to the same node, O(1).
	Clone() L
	// Release drops this reference.  When the last reference to a
	// node is dropped its tail is unlinked iteratively, never by
	// recursing down the chain.
	Release()
	// Value returns the node's element.
	Value() T
	// Next returns a borrowed reference to the next node, or the
	// zero L; ownership is not transferred.
	Next() L
	// CloneNext returns a new owned reference to the next node, or
	// the zero L.
	CloneNext() L
}
