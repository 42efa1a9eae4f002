package persi

import (
	"fmt"
	"iter"
	"strings"
)

// List is a persistent singly-linked list, generic over the node
// discipline L.  The zero value is an empty list.  Operations return
// new lists and never modify their receiver; any number of lists may
// share any suffix.
type List[T any, L Link[T, L]] struct {
	head L
}

// NewList returns an empty list.
func NewList[T any, L Link[T, L]]() List[T, L] {
	return List[T, L]{}
}

// FromValue returns a list holding only x.
func FromValue[T any, L Link[T, L]](x T) List[T, L] {
	var zero L
	return List[T, L]{head: zero.NewNode(x, zero)}
}

// Cons returns a new list with x in front of tail.  The tail list is
// unmodified and remains valid; its chain is shared, not copied.  O(1).
func Cons[T any, L Link[T, L]](x T, tail List[T, L]) List[T, L] {
	var zero L
	next := zero
	if tail.head != zero {
		next = tail.head.Clone()
	}
	return List[T, L]{head: zero.NewNode(x, next)}
}

// pushOwned conses x onto l, consuming l's ownership of its head.
// Internal building block for the accumulation loops below.
func (l List[T, L]) pushOwned(x T) List[T, L] {
	var zero L
	return List[T, L]{head: zero.NewNode(x, l.head)}
}

// IsEmpty reports whether the list has no elements.
func (l List[T, L]) IsEmpty() bool {
	var zero L
	return l.head == zero
}

// Front returns the first element.  The second result is false if the
// list is empty; an empty list is a normal condition, not an error.
func (l List[T, L]) Front() (T, bool) {
	var zero L
	if l.head == zero {
		var t T
		return t, false
	}
	return l.head.Value(), true
}

// PoppedFront returns the list without its first element.  The
// returned list shares the receiver's tail chain.
//
// PoppedFront panics if the list is empty.  That is a programming
// error: check IsEmpty first.
func (l List[T, L]) PoppedFront() List[T, L] {
	var zero L
	if l.head == zero {
		panic("persi: PoppedFront called on an empty list")
	}
	return List[T, L]{head: l.head.CloneNext()}
}

// PushedFront returns Cons(x, l).
func (l List[T, L]) PushedFront(x T) List[T, L] {
	return Cons(x, l)
}

// Clone returns a new owned handle to the same list.
func (l List[T, L]) Clone() List[T, L] {
	var zero L
	if l.head == zero {
		return List[T, L]{}
	}
	return List[T, L]{head: l.head.Clone()}
}

// Release drops the handle's ownership of the chain.  The handle must
// not be used afterward.  Calling Release is optional; see the package
// documentation.
func (l List[T, L]) Release() {
	var zero L
	if l.head != zero {
		l.head.Release()
	}
}

// All returns the elements front to back.  The sequence is lazy and
// may be ranged over any number of times; each range restarts from the
// front.  The list handle must outlive the iteration.
func (l List[T, L]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero L
		for n := l.head; n != zero; n = n.Next() {
			if !yield(n.Value()) {
				return
			}
		}
	}
}

func (l List[T, L]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for x := range l.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b hold elementwise-equal items in the
// same order.  Comparison stops at the first mismatch.
func Equal[T comparable, L Link[T, L]](a, b List[T, L]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element equality, usable
// across lists of different disciplines or element types.
func EqualFunc[T, U any, L Link[T, L], M Link[U, M]](a List[T, L], b List[U, M], eq func(T, U) bool) bool {
	var za L
	var zb M
	x, y := a.head, b.head
	for x != za && y != zb {
		if !eq(x.Value(), y.Value()) {
			return false
		}
		x, y = x.Next(), y.Next()
	}
	return x == za && y == zb
}

// buildList conses xs from back to front so the result holds xs in
// order.
func buildList[T any, L Link[T, L]](xs []T) List[T, L] {
	l := List[T, L]{}
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.pushOwned(xs[i])
	}
	return l
}

// Filter returns a new list of the elements satisfying pred, in their
// original order.  The traversal is iterative, so arbitrarily long
// lists do not grow the stack.
func Filter[T any, L Link[T, L]](pred func(T) bool, l List[T, L]) List[T, L] {
	var kept []T
	for x := range l.All() {
		if pred(x) {
			kept = append(kept, x)
		}
	}
	return buildList[T, L](kept)
}

// FMap returns a new list of f applied to every element, preserving
// the original order.  The destination discipline M may differ from
// the source's.
func FMap[T, U any, L Link[T, L], M Link[U, M]](f func(T) U, l List[T, L]) List[U, M] {
	var mapped []U
	for x := range l.All() {
		mapped = append(mapped, f(x))
	}
	return buildList[U, M](mapped)
}

// FoldLeft folds the list front to back: f(f(f(acc, x0), x1), x2)...
// Iterative, O(n).
func FoldLeft[T, U any, L Link[T, L]](f func(U, T) U, acc U, l List[T, L]) U {
	for x := range l.All() {
		acc = f(acc, x)
	}
	return acc
}

// FoldRight folds the list back to front: f(x0, f(x1, f(x2, acc)))...
// Implemented by buffering the elements rather than recursing, so it
// is safe on arbitrarily long lists.
func FoldRight[T, U any, L Link[T, L]](f func(T, U) U, acc U, l List[T, L]) U {
	var xs []T
	for x := range l.All() {
		xs = append(xs, x)
	}
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// Concat returns a's elements followed by b's.  The result shares b's
// chain entirely; only a's chain is rebuilt.
func Concat[T any, L Link[T, L]](a, b List[T, L]) List[T, L] {
	var xs []T
	for x := range a.All() {
		xs = append(xs, x)
	}
	out := b.Clone()
	for i := len(xs) - 1; i >= 0; i-- {
		out = out.pushOwned(xs[i])
	}
	return out
}

// ConcatAll flattens a list of lists, keeping outer then inner order.
// Accumulation is direct and iterative; folding Concat over the outer
// list would rebuild shared prefixes once per outer element.
func ConcatAll[T any, M Link[T, M], L Link[List[T, M], L]](xss List[List[T, M], L]) List[T, M] {
	var xs []T
	for inner := range xss.All() {
		for x := range inner.All() {
			xs = append(xs, x)
		}
	}
	return buildList[T, M](xs)
}

// MReturn returns the single-element list, the unit of the list monad.
func MReturn[T any, L Link[T, L]](x T) List[T, L] {
	return FromValue[T, L](x)
}

// MBind applies k to every element and flattens the results in order.
// Together with MReturn it satisfies the monad laws: MBind(MReturn(x), k)
// equals k(x), MBind(l, MReturn) equals l, and MBind associates.
func MBind[T, U any, L Link[T, L], M Link[U, M]](l List[T, L], k func(T) List[U, M]) List[U, M] {
	var out []U
	for x := range l.All() {
		ys := k(x)
		for y := range ys.All() {
			out = append(out, y)
		}
		ys.Release()
	}
	return buildList[U, M](out)
}
