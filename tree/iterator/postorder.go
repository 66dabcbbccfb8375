package iterator

import (
	"go.lepak.sg/avltrace/tree"
)

var _ Iterator[int] = (*PostOrder[int, any])(nil)

// PostOrder yields both subtrees of a node, left first, before the node itself.
type PostOrder[T, X any] struct {
	root    *tree.Node[T, X]
	at      *tree.Node[T, X]
	stack   []*tree.Node[T, X]
	started bool
}

// The stack holds the path from the root to the next node to be
// yielded. That node is always the first leaf reached by going left
// where possible and right otherwise (see descend).
// After yielding a node, look at its parent (the new top of stack):
// if we just came up from the parent's left subtree and there is a
// right subtree, the next node is the first leaf of that right subtree.
// Otherwise the parent itself is next.

// NewPostOrder returns a new post-order iterator over the tree rooted at root.
func NewPostOrder[T, X any](root *tree.Node[T, X], heightHint int) *PostOrder[T, X] {
	if heightHint < 0 {
		heightHint = 0
	}
	return &PostOrder[T, X]{
		root:  root,
		stack: make([]*tree.Node[T, X], 0, heightHint+1),
	}
}

func (i *PostOrder[T, X]) descend(n *tree.Node[T, X]) {
	for n != nil {
		i.stack = append(i.stack, n)
		if n.Left != nil {
			n = n.Left
		} else {
			n = n.Right
		}
	}
}

func (i *PostOrder[T, X]) Next() bool {
	if !i.started {
		i.started = true
		i.descend(i.root)
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	if len(i.stack) > 0 {
		parent := i.stack[len(i.stack)-1]
		if parent.Left == i.at && parent.Right != nil {
			i.descend(parent.Right)
		}
	}

	return true
}

func (i *PostOrder[T, X]) Item() T {
	return i.at.Key
}
