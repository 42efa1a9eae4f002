package persi

// Color is a red-black tree node color.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "R"
	}
	return "B"
}

// RBLink is the capability the red-black tree needs from a node
// reference: one element, a color, and two independently shared child
// references.  The zero value of L is "no child".  As with Link,
// nodes are immutable once created and NewNode is callable on the
// zero L.
type RBLink[T any, L any] interface {
	comparable

	// NewNode allocates a node with the given color, element and
	// children, taking ownership of both child references.
	NewNode(c Color, x T, left, right L) L
	// Clone returns a new owned reference to the same node, O(1).
	Clone() L
	// Release drops this reference.  Teardown of a whole subtree is
	// driven by an explicit work stack, never by child-first
	// recursion.
	Release()
	// Value returns the node's element.
	Value() T
	// Color returns the node's color.
	Color() Color
	// Left and Right return borrowed child references, or the zero L.
	Left() L
	Right() L
	// CloneLeft and CloneRight return new owned child references, or
	// the zero L.
	CloneLeft() L
	CloneRight() L
}

// searchLink descends the ordered subtree at n looking for the element
// at which cmp returns 0, going left while cmp is negative and right
// while positive.  cmp may compare against a derived key rather than a
// full element.
func searchLink[T any, L RBLink[T, L]](n L, cmp func(T) int) (T, bool) {
	var zero L
	for n != zero {
		switch c := cmp(n.Value()); {
		case c < 0:
			n = n.Left()
		case c > 0:
			n = n.Right()
		default:
			return n.Value(), true
		}
	}
	var t T
	return t, false
}
