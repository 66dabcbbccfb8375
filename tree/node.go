package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. There is no parent pointer: trees that
// need to fix up ancestors do it by returning the (possibly new) subtree
// root from a recursive call and storing it back into the parent's slot.
//
// Extra holds whatever bookkeeping a particular tree wants to keep per node.
// Height is only maintained by trees that care about it (see UpdateHeight).
type Node[T any, X any] struct {
	Key         T
	Extra       X
	Height      int
	Left, Right *Node[T, X]
}

// NodeOf returns a new leaf node.
func NodeOf[T, X any](k T, x X) *Node[T, X] {
	return &Node[T, X]{
		Key:   k,
		Extra: x,
	}
}

// BasicNodeOf returns a new leaf node with no extra data.
func BasicNodeOf[T any](k T) *Node[T, struct{}] {
	return NodeOf(k, struct{}{})
}

// HeightOf returns the stored height of n. The empty subtree has height -1,
// so a leaf has height 0.
func HeightOf[T, X any](n *Node[T, X]) int {
	if n == nil {
		return -1
	}
	return n.Height
}

// UpdateHeight recomputes n.Height from its children's stored heights.
func (n *Node[T, X]) UpdateHeight() {
	n.Height = 1 + max(HeightOf(n.Left), HeightOf(n.Right))
}

// Balance returns height(left) - height(right).
// Positive means left-heavy, negative means right-heavy.
func (n *Node[T, X]) Balance() int {
	if n == nil {
		return 0
	}
	return HeightOf(n.Left) - HeightOf(n.Right)
}

// Leftmost returns the node with the smallest key in the subtree rooted at n.
func (n *Node[T, X]) Leftmost() *Node[T, X] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// OrderOf converts a cmp-style result (negative, zero, positive) into an Order.
func OrderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
