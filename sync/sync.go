package sync

import (
	"cmp"

	"github.com/jrhy/persi"
)

// List is a persistent list safe to share across goroutines.  The zero
// value is an empty list.
type List[T any] = persi.List[T, *listNode[T]]

// RBTree is a persistent red-black tree safe to share across goroutines.
type RBTree[T any] = persi.RBTree[T, *treeNode[T]]

// RBMap is a persistent ordered map safe to share across goroutines.
type RBMap[K, V any] = persi.RBMap[K, V, *treeNode[persi.KeyValue[K, V]]]

// NewList returns an empty list.
func NewList[T any]() List[T] {
	return persi.NewList[T, *listNode[T]]()
}

// FromValue returns a list holding only x.
func FromValue[T any](x T) List[T] {
	return persi.FromValue[T, *listNode[T]](x)
}

// Cons returns a new list with x in front of tail; tail is shared,
// not copied.
func Cons[T any](x T, tail List[T]) List[T] {
	return persi.Cons(x, tail)
}

// ListOf returns a list of xs, front to back in argument order.
func ListOf[T any](xs ...T) List[T] {
	l := NewList[T]()
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// Equal reports elementwise equality of two lists, in order.
func Equal[T comparable](a, b List[T]) bool {
	return persi.Equal(a, b)
}

// Filter returns the elements satisfying pred, in original order.
func Filter[T any](pred func(T) bool, l List[T]) List[T] {
	return persi.Filter(pred, l)
}

// FMap returns f applied to every element, in original order.
func FMap[T, U any](f func(T) U, l List[T]) List[U] {
	return persi.FMap[T, U, *listNode[T], *listNode[U]](f, l)
}

// FoldLeft folds front to back.
func FoldLeft[T, U any](f func(U, T) U, acc U, l List[T]) U {
	return persi.FoldLeft(f, acc, l)
}

// FoldRight folds back to front.
func FoldRight[T, U any](f func(T, U) U, acc U, l List[T]) U {
	return persi.FoldRight(f, acc, l)
}

// Concat returns a's elements followed by b's, sharing b entirely.
func Concat[T any](a, b List[T]) List[T] {
	return persi.Concat(a, b)
}

// ConcatAll flattens a list of lists in order.
func ConcatAll[T any](xss List[List[T]]) List[T] {
	return persi.ConcatAll[T, *listNode[T], *listNode[List[T]]](xss)
}

// MReturn returns the single-element list.
func MReturn[T any](x T) List[T] {
	return persi.MReturn[T, *listNode[T]](x)
}

// MBind applies k to every element and flattens the results in order.
func MBind[T, U any](l List[T], k func(T) List[U]) List[U] {
	return persi.MBind[T, U, *listNode[T], *listNode[U]](l, k)
}

// NewRBTree returns an empty tree over a naturally ordered element
// type.
func NewRBTree[T cmp.Ordered]() RBTree[T] {
	return persi.NewRBTree[T, *treeNode[T]](cmp.Compare[T])
}

// NewRBTreeFunc returns an empty tree ordered by compare.
func NewRBTreeFunc[T any](compare func(a, b T) int) RBTree[T] {
	return persi.NewRBTree[T, *treeNode[T]](compare)
}

// RBLeaf returns a tree holding the single element x.
func RBLeaf[T cmp.Ordered](x T) RBTree[T] {
	return persi.NewRBLeaf[T, *treeNode[T]](x, cmp.Compare[T])
}

// NewRBMap returns an empty map over a naturally ordered key type.
func NewRBMap[K cmp.Ordered, V any]() RBMap[K, V] {
	return persi.NewRBMap[K, V, *treeNode[persi.KeyValue[K, V]]](cmp.Compare[K])
}

// NewRBMapFunc returns an empty map with keys ordered by compare.
func NewRBMapFunc[K, V any](compare func(a, b K) int) RBMap[K, V] {
	return persi.NewRBMap[K, V, *treeNode[persi.KeyValue[K, V]]](compare)
}
