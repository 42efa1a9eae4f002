// Package sync provides the thread-safe instantiations of the persi
// collections.  Nodes carry an atomic reference count, so the same
// node may be owned concurrently by structures living on different
// goroutines.  Nodes are immutable after creation; the count is the
// only synchronized word, and no locks exist anywhere.
package sync

import (
	"sync/atomic"

	"github.com/jrhy/persi"
)

// listNode implements persi.Link with atomic shared ownership.
type listNode[T any] struct {
	refs    atomic.Int64
	element T
	next    *listNode[T]
}

func (*listNode[T]) NewNode(x T, next *listNode[T]) *listNode[T] {
	n := &listNode[T]{element: x, next: next}
	n.refs.Store(1)
	return n
}

func (n *listNode[T]) Clone() *listNode[T] {
	n.refs.Add(1)
	return n
}

// Release walks the chain iteratively, unlinking every node whose
// count reaches zero.  Whoever drops a count to zero is the sole
// owner, so the unlink itself needs no further synchronization.
func (n *listNode[T]) Release() {
	for n != nil {
		if n.refs.Add(-1) > 0 {
			return
		}
		next := n.next
		n.next = nil
		n = next
	}
}

func (n *listNode[T]) Value() T { return n.element }

func (n *listNode[T]) Next() *listNode[T] { return n.next }

func (n *listNode[T]) CloneNext() *listNode[T] {
	if n.next == nil {
		return nil
	}
	return n.next.Clone()
}

// treeNode implements persi.RBLink with atomic shared ownership.
type treeNode[T any] struct {
	refs        atomic.Int64
	color       persi.Color
	element     T
	left, right *treeNode[T]
}

func (*treeNode[T]) NewNode(c persi.Color, x T, left, right *treeNode[T]) *treeNode[T] {
	n := &treeNode[T]{color: c, element: x, left: left, right: right}
	n.refs.Store(1)
	return n
}

func (n *treeNode[T]) Clone() *treeNode[T] {
	n.refs.Add(1)
	return n
}

// Release tears down the subtree with an explicit work stack so stack
// use stays bounded whatever the tree depth.
func (n *treeNode[T]) Release() {
	stack := []*treeNode[T]{n}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if n.refs.Add(-1) > 0 {
			continue
		}
		stack = append(stack, n.left, n.right)
		n.left, n.right = nil, nil
	}
}

func (n *treeNode[T]) Value() T { return n.element }

func (n *treeNode[T]) Color() persi.Color { return n.color }

func (n *treeNode[T]) Left() *treeNode[T] { return n.left }

func (n *treeNode[T]) Right() *treeNode[T] { return n.right }

func (n *treeNode[T]) CloneLeft() *treeNode[T] {
	if n.left == nil {
		return nil
	}
	return n.left.Clone()
}

func (n *treeNode[T]) CloneRight() *treeNode[T] {
	if n.right == nil {
		return nil
	}
	return n.right.Clone()
}
