// Package avl implements a self-balancing (AVL) binary search tree
// that explains itself. Every Insert, Remove and Search returns the
// path of values it walked and an ordered log of each comparison,
// rotation and splice it performed, so a caller can replay the
// operation step by step (for example, to animate it).
//
// Traversals are lazy: Traverse returns a cursor that does one node's
// worth of work per Next, so the caller decides the pace and may
// abandon the traversal at any time.
//
// Layout projects the current tree onto a grid (in-order rank across,
// depth down) for renderers.
//
// A Tree is not safe for concurrent use.
package avl

import (
	"errors"
	"fmt"

	"go.lepak.sg/avltrace/tree"
	"golang.org/x/exp/constraints"
)

var (
	// ErrIncomparable is returned when a value cannot be placed in the
	// tree's order, because it does not compare equal to itself (NaN).
	ErrIncomparable = errors.New("avl: value is not comparable")

	// ErrUnknownTraversal is returned for a Traversal outside
	// InOrder, PreOrder, PostOrder and LevelOrder.
	ErrUnknownTraversal = errors.New("avl: unknown traversal order")

	// ErrModified is reported by a Cursor whose tree was changed
	// after the traversal started.
	ErrModified = errors.New("avl: tree modified during traversal")

	// ErrInvariant is wrapped by the errors returned from Check.
	ErrInvariant = errors.New("avl: invariant violated")
)

// Tree is an AVL tree. The zero Tree is not usable; create one with
// New or NewFunc.
//
// Invariants, which hold whenever no method is running:
//   - At any node N, all keys in N.Left are less than N.Key,
//     and all keys in N.Right are greater than N.Key
//   - At any node N, height(N.Left) - height(N.Right) is -1, 0 or 1
//   - At any node N, N.Height = 1 + max(height(N.Left), height(N.Right)),
//     with the empty subtree having height -1
//   - count is the number of nodes reachable from root
//   - For every possible key, there is at most one node with that key
type Tree[T any] struct {
	root  *tree.Node[T, uint64]
	count int

	cmp   func(a, b T) tree.Order
	valid func(v T) bool

	lastID uint64
	// version changes on every structural change; cursors use it
	// to detect that the tree moved under them.
	version uint64
}

// New returns an empty tree ordered by the < operator.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{
		cmp: tree.Compare[T],
		valid: func(v T) bool {
			// false only for NaN
			return v == v
		},
	}
}

// NewFunc returns an empty tree ordered by cmp, which must return a
// negative number when a < b, zero when a == b and a positive number
// when a > b, and must be a strict weak order.
// Values for which cmp(v, v) != 0 are rejected with ErrIncomparable.
func NewFunc[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{
		cmp: func(a, b T) tree.Order {
			return tree.OrderOf(cmp(a, b))
		},
		valid: func(v T) bool {
			return cmp(v, v) == 0
		},
	}
}

// Size returns the number of values in the tree.
func (t *Tree[T]) Size() int {
	return t.count
}

// Height returns the height of the tree: -1 when empty, 0 with one value.
func (t *Tree[T]) Height() int {
	return tree.HeightOf(t.root)
}

// Values returns every value in the tree in ascending order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.count)
	cur, _ := t.Traverse(InOrder)
	for cur.Next() {
		out = append(out, cur.Item())
	}
	return out
}

func (t *Tree[T]) checkValue(v T) error {
	if !t.valid(v) {
		return fmt.Errorf("%w: %v", ErrIncomparable, v)
	}
	return nil
}

func (t *Tree[T]) newNode(v T) *tree.Node[T, uint64] {
	t.lastID++
	return tree.NodeOf(v, t.lastID)
}
