package avl

import (
	"fmt"

	"go.lepak.sg/avltrace/chops"
	"go.lepak.sg/avltrace/tree/iterator"
)

// Traversal selects the order in which Traverse visits nodes.
type Traversal int

const (
	// InOrder visits the left subtree, the node, then the right
	// subtree, yielding values in ascending order.
	InOrder Traversal = iota
	// PreOrder visits the node, then the left and right subtrees.
	PreOrder
	// PostOrder visits the left and right subtrees, then the node.
	PostOrder
	// LevelOrder visits nodes breadth-first, left to right within a depth.
	LevelOrder
)

var traversalNames = [...]string{
	InOrder:    "inorder",
	PreOrder:   "preorder",
	PostOrder:  "postorder",
	LevelOrder: "levelorder",
}

func (o Traversal) String() string {
	if o < 0 || int(o) >= len(traversalNames) {
		return "<invalid avl.Traversal>"
	}
	return traversalNames[o]
}

// ParseTraversal is the inverse of Traversal.String.
func ParseTraversal(s string) (Traversal, error) {
	for i, name := range traversalNames {
		if name == s {
			return Traversal(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTraversal, s)
}

// Cursor is a lazy traversal over a Tree. It is used like the
// iterators in the tree/iterator package:
//
//	cur, err := t.Traverse(avl.LevelOrder)
//	...
//	for cur.Next() {
//		v := cur.Item()
//		... highlight v, sleep, or break ...
//	}
//	if err := cur.Err(); err != nil {
//		...
//	}
//
// If the tree is changed by Insert or Remove while the traversal is
// in progress, Next returns false and Err returns ErrModified.
type Cursor[T any] struct {
	t       *Tree[T]
	it      iterator.Iterator[T]
	version uint64
	err     error
}

var _ chops.Iterator[int] = (*Cursor[int])(nil)

// Next advances the cursor, doing only the work needed to reach
// the next node.
func (c *Cursor[T]) Next() bool {
	if c.err != nil {
		return false
	}
	if c.t.version != c.version {
		c.err = ErrModified
		return false
	}
	return c.it.Next()
}

// Item returns the value at the cursor.
func (c *Cursor[T]) Item() T {
	return c.it.Item()
}

// Err returns ErrModified if the traversal was cut short by a change
// to the tree, and nil otherwise.
func (c *Cursor[T]) Err() error {
	return c.err
}

// Traverse starts a traversal in the given order. Each call returns
// an independent cursor starting from the beginning.
// Traversal never changes the tree and never logs.
func (t *Tree[T]) Traverse(order Traversal) (*Cursor[T], error) {
	var it iterator.Iterator[T]
	height := t.Height()

	switch order {
	case InOrder:
		it = iterator.NewInOrderStack(t.root, height)
	case PreOrder:
		it = iterator.NewPreOrder(t.root, height)
	case PostOrder:
		it = iterator.NewPostOrder(t.root, height)
	case LevelOrder:
		it = iterator.NewLevelOrder(t.root)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTraversal, int(order))
	}

	return &Cursor[T]{
		t:       t,
		it:      it,
		version: t.version,
	}, nil
}

// TraverseCoroutine starts a traversal whose values are delivered on
// a channel, for drivers that want to pace playback with timers or
// cancel it from a select. See chops.CoIterate for usage; the
// iterating goroutine exits once the traversal ends or Stop is called.
//
// The tree must not be changed until the channel is closed.
func (t *Tree[T]) TraverseCoroutine(order Traversal) (chops.CoIterator[T], error) {
	cur, err := t.Traverse(order)
	if err != nil {
		return chops.CoIterator[T]{}, err
	}
	return chops.CoIterate[T](cur), nil
}
