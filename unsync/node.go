// Package unsync provides the thread-confined instantiations of the
// persi collections.  Nodes carry a plain reference count, so a
// structure and everything reachable from it must stay on a single
// goroutine.  Go cannot enforce confinement in the type system; the
// race detector flags violations, since a shared count update is a
// plain read-modify-write.  For structures that cross goroutines use
// the sync package instead.
package unsync

import "github.com/jrhy/persi"

// listNode implements persi.Link with non-atomic shared ownership.
type listNode[T any] struct {
	refs    int
	element T
	next    *listNode[T]
}

func (*listNode[T]) NewNode(x T, next *listNode[T]) *listNode[T] {
	return &listNode[T]{refs: 1, element: x, next: next}
}

func (n *listNode[T]) Clone() *listNode[T] {
	n.refs++
	return n
}

// Release walks the chain iteratively, unlinking every node whose
// count reaches zero.  A chain is only as deep as memory allows, so
// recursing here would overflow the stack.
func (n *listNode[T]) Release() {
	for n != nil {
		n.refs--
		if n.refs > 0 {
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

// treeNode implements persi.RBLink with non-atomic shared ownership.
type treeNode[T any] struct {
	refs        int
	color       persi.Color
	element     T
	left, right *treeNode[T]
}

func (*treeNode[T]) NewNode(c persi.Color, x T, left, right *treeNode[T]) *treeNode[T] {
	return &treeNode[T]{refs: 1, color: c, element: x, left: left, right: right}
}

func (n *treeNode[T]) Clone() *treeNode[T] {
	n.refs++
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
		n.refs--
		if n.refs > 0 {
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
