package unsync

// BinaryTree is a placeholder for a plain (unbalanced) persistent
// binary tree.  Only construction and root access exist; ordered
// operations live on RBTree.
type BinaryTree[T any] struct {
	root *binaryNode[T]
}

type binaryNode[T any] struct {
	element     T
	left, right *binaryNode[T]
}

// NewBinaryTree returns an empty tree.
func NewBinaryTree[T any]() BinaryTree[T] {
	return BinaryTree[T]{}
}

// IsEmpty reports whether the tree has no root.
func (t BinaryTree[T]) IsEmpty() bool {
	return t.root == nil
}

// BinaryLeaf returns a tree holding the single element x.
func BinaryLeaf[T any](x T) BinaryTree[T] {
	return BinaryTree[T]{root: &binaryNode[T]{element: x}}
}

// NewBinaryNode returns a tree with x at the root above the two
// subtrees.  The subtrees are shared, not copied.
func NewBinaryNode[T any](left BinaryTree[T], x T, right BinaryTree[T]) BinaryTree[T] {
	return BinaryTree[T]{root: &binaryNode[T]{element: x, left: left.root, right: right.root}}
}

// Root returns the root element.  The second result is false if the
// tree is empty.
func (t BinaryTree[T]) Root() (T, bool) {
	if t.root == nil {
		var x T
		return x, false
	}
	return t.root.element, true
}

// Left returns the left subtree.
func (t BinaryTree[T]) Left() BinaryTree[T] {
	if t.root == nil {
		panic("persi: Left called on an empty tree")
	}
	return BinaryTree[T]{root: t.root.left}
}

// Right returns the right subtree.
func (t BinaryTree[T]) Right() BinaryTree[T] {
	if t.root == nil {
		panic("persi: Right called on an empty tree")
	}
	return BinaryTree[T]{root: t.root.right}
}
