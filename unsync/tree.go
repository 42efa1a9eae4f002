package unsync

import "github.com/jrhy/persi"

// Tree is a persistent labelled rose tree: an element with a list of
// child trees.  It is a plain composition of List and adds no new
// sharing machinery; the children list carries the structural
// sharing.
type Tree[T any] struct {
	root *roseNode[T]
}

type roseNode[T any] struct {
	element  T
	children List[Tree[T]]
}

// NewRoseTree returns an empty tree.
func NewRoseTree[T any]() Tree[T] {
	return Tree[T]{}
}

// Leaf returns a tree holding x with no children.
func Leaf[T any](x T) Tree[T] {
	return Tree[T]{root: &roseNode[T]{element: x, children: NewList[Tree[T]]()}}
}

// NewTree returns a tree holding x over the given children.
func NewTree[T any](x T, children List[Tree[T]]) Tree[T] {
	return Tree[T]{root: &roseNode[T]{element: x, children: children}}
}

// IsEmpty reports whether the tree has no root.
func (t Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root element.  The second result is false if the
// tree is empty.
func (t Tree[T]) Root() (T, bool) {
	if t.root == nil {
		var x T
		return x, false
	}
	return t.root.element, true
}

// Children returns the root's child trees, or an empty list if the
// tree is empty.
func (t Tree[T]) Children() List[Tree[T]] {
	if t.root == nil {
		return NewList[Tree[T]]()
	}
	return t.root.children
}

// TreeEqual reports structural equality: equal root elements and
// pairwise-equal children.  Recursion depth is the tree's height.
func TreeEqual[T comparable](a, b Tree[T]) bool {
	if a.root == nil || b.root == nil {
		return a.root == nil && b.root == nil
	}
	if a.root.element != b.root.element {
		return false
	}
	return persi.EqualFunc(a.root.children, b.root.children, TreeEqual[T])
}
