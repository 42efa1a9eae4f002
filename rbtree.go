package persi

import "iter"

// RBTree is a persistent red-black tree, generic over the node
// discipline L.  Inserting returns a new balanced tree that shares
// every subtree off the insertion path with the old version.
//
// Invariants, restored after every public operation: no red node has
// a red child, every root-to-leaf path crosses the same number of
// black nodes, and the root is black.
//
// Trees must be created by NewRBTree or NewRBLeaf so they carry an
// element ordering; the zero value supports only IsEmpty and Root.
type RBTree[T any, L RBLink[T, L]] struct {
	root    L
	compare func(a, b T) int
}

// NewRBTree returns an empty tree ordered by compare, which must be a
// total order on elements (negative, zero, positive in the manner of
// cmp.Compare).
func NewRBTree[T any, L RBLink[T, L]](compare func(a, b T) int) RBTree[T, L] {
	return RBTree[T, L]{compare: compare}
}

// NewRBLeaf returns a tree holding the single element x.  The node is
// created red, as all fresh leaves are, and blackened since it is the
// root.
func NewRBLeaf[T any, L RBLink[T, L]](x T, compare func(a, b T) int) RBTree[T, L] {
	var zero L
	leaf := zero.NewNode(Red, x, zero, zero)
	return RBTree[T, L]{root: blacken[T, L](leaf), compare: compare}
}

// IsEmpty reports whether the tree has no elements.
func (t RBTree[T, L]) IsEmpty() bool {
	var zero L
	return t.root == zero
}

// Root returns the root element.  The second result is false if the
// tree is empty.
func (t RBTree[T, L]) Root() (T, bool) {
	var zero L
	if t.root == zero {
		var x T
		return x, false
	}
	return t.root.Value(), true
}

// Left returns the left subtree as a tree sharing its nodes with the
// receiver.  Panics if the tree is empty; check IsEmpty first.
func (t RBTree[T, L]) Left() RBTree[T, L] {
	var zero L
	if t.root == zero {
		panic("persi: Left called on an empty tree")
	}
	return RBTree[T, L]{root: t.root.CloneLeft(), compare: t.compare}
}

// Right returns the right subtree as a tree sharing its nodes with
// the receiver.  Panics if the tree is empty; check IsEmpty first.
func (t RBTree[T, L]) Right() RBTree[T, L] {
	var zero L
	if t.root == zero {
		panic("persi: Right called on an empty tree")
	}
	return RBTree[T, L]{root: t.root.CloneRight(), compare: t.compare}
}

// Contains reports whether an element ordered equal to x is present.
func (t RBTree[T, L]) Contains(x T) bool {
	_, ok := t.Get(x)
	return ok
}

// Get returns the stored element ordered equal to x.
func (t RBTree[T, L]) Get(x T) (T, bool) {
	return searchLink(t.root, func(e T) int { return t.compare(x, e) })
}

// GetFunc searches with a derived-key comparison: cmp reports where
// the sought key falls relative to a stored element.  This is how the
// ordered map looks up a pair by key alone.
func (t RBTree[T, L]) GetFunc(cmp func(e T) int) (T, bool) {
	return searchLink(t.root, cmp)
}

// GetOrDefault returns the stored element ordered equal to x, or def
// if there is none.
func (t RBTree[T, L]) GetOrDefault(x, def T) T {
	if e, ok := t.Get(x); ok {
		return e
	}
	return def
}

// Inserted returns a new balanced tree containing x.  If an element
// ordered equal to x is already present the stored element is kept
// unchanged.  Allocates only along the root-to-insertion-point path;
// all sibling subtrees are shared with the receiver.
func (t RBTree[T, L]) Inserted(x T) RBTree[T, L] {
	root := insertLink(t.root, x, t.compare, false)
	return RBTree[T, L]{root: blacken[T, L](root), compare: t.compare}
}

// InsertedOrReplaced is Inserted, except that when an element ordered
// equal to x is already present it is replaced by x in place: the new
// node keeps the old node's color and children, so no rebalancing
// shape changes.
func (t RBTree[T, L]) InsertedOrReplaced(x T) RBTree[T, L] {
	root := insertLink(t.root, x, t.compare, true)
	return RBTree[T, L]{root: blacken[T, L](root), compare: t.compare}
}

// Clone returns a new owned handle to the same tree.
func (t RBTree[T, L]) Clone() RBTree[T, L] {
	var zero L
	if t.root == zero {
		return t
	}
	return RBTree[T, L]{root: t.root.Clone(), compare: t.compare}
}

// Release drops the handle's ownership of the tree.  The handle must
// not be used afterward.
func (t RBTree[T, L]) Release() {
	var zero L
	if t.root != zero {
		t.root.Release()
	}
}

// All returns the elements in order.  The walk drives an explicit
// stack, never recursion, and is restartable; the tree handle must
// outlive the iteration.
func (t RBTree[T, L]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero L
		var stack []L
		n := t.root
		for n != zero || len(stack) > 0 {
			for n != zero {
				stack = append(stack, n)
				n = n.Left()
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.Value()) {
				return
			}
			n = n.Right()
		}
	}
}

// insertLink inserts x under the borrowed subtree node, returning a
// new owned subtree.  Rebalancing happens at every reconstructed node
// as the recursion unwinds; recursion depth is the tree height,
// O(log n) by the invariants.
func insertLink[T any, L RBLink[T, L]](node L, x T, compare func(a, b T) int, replace bool) L {
	var zero L
	if node == zero {
		return zero.NewNode(Red, x, zero, zero)
	}
	switch c := compare(x, node.Value()); {
	case c < 0:
		return rebalance(node.Color(), node.Value(),
			insertLink(node.Left(), x, compare, replace),
			node.CloneRight())
	case c > 0:
		return rebalance(node.Color(), node.Value(),
			node.CloneLeft(),
			insertLink(node.Right(), x, compare, replace))
	default:
		if replace {
			return node.NewNode(node.Color(), x, node.CloneLeft(), node.CloneRight())
		}
		return node.Clone()
	}
}

// rebalance reassembles a node from its color, element and freshly
// built children, rotating exactly the four red-red violation shapes
// a bottom-up insertion can produce; any other coloring is rebuilt
// unchanged.  Both child references are consumed.
func rebalance[T any, L RBLink[T, L]](c Color, x T, left, right L) L {
	var zero L
	red := func(n L) bool { return n != zero && n.Color() == Red }
	if c == Black {
		switch {
		case red(left) && red(left.Left()):
			// left child red with red left grandchild: rotate right.
			ll := left.Left()
			n := join(ll.CloneLeft(), ll.Value(), ll.CloneRight(),
				left.Value(), left.CloneRight(), x, right)
			left.Release()
			return n
		case red(left) && red(left.Right()):
			// red inner grandchild on the left: it becomes the new
			// red root of this subtree.
			lr := left.Right()
			n := join(left.CloneLeft(), left.Value(), lr.CloneLeft(),
				lr.Value(), lr.CloneRight(), x, right)
			left.Release()
			return n
		case red(right) && red(right.Left()):
			rl := right.Left()
			n := join(left, x, rl.CloneLeft(),
				rl.Value(), rl.CloneRight(), right.Value(), right.CloneRight())
			right.Release()
			return n
		case red(right) && red(right.Right()):
			rr := right.Right()
			n := join(left, x, right.CloneLeft(),
				right.Value(), rr.CloneLeft(), rr.Value(), rr.CloneRight())
			right.Release()
			return n
		}
	}
	return zero.NewNode(c, x, left, right)
}

// join builds the balanced result of a rotation: a red node over two
// black children, (a x b) y (c z d).  All four subtree references are
// consumed.
func join[T any, L RBLink[T, L]](a L, x T, b L, y T, c L, z T, d L) L {
	var zero L
	return zero.NewNode(Red, y,
		zero.NewNode(Black, x, a, b),
		zero.NewNode(Black, z, c, d))
}

// blacken forces the root of an owned subtree to black, consuming the
// reference.
func blacken[T any, L RBLink[T, L]](n L) L {
	var zero L
	if n == zero || n.Color() == Black {
		return n
	}
	b := n.NewNode(Black, n.Value(), n.CloneLeft(), n.CloneRight())
	n.Release()
	return b
}
