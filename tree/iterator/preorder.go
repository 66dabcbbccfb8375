package iterator

import (
	"go.lepak.sg/avltrace/tree"
)

var _ Iterator[int] = (*PreOrder[int, any])(nil)

// PreOrder yields a node before either of its subtrees,
// and the left subtree before the right one.
type PreOrder[T, X any] struct {
	root    *tree.Node[T, X]
	at      *tree.Node[T, X]
	stack   []*tree.Node[T, X]
	started bool
}

// NewPreOrder returns a new pre-order iterator over the tree rooted at root.
func NewPreOrder[T, X any](root *tree.Node[T, X], heightHint int) *PreOrder[T, X] {
	if heightHint < 0 {
		heightHint = 0
	}
	return &PreOrder[T, X]{
		root:  root,
		stack: make([]*tree.Node[T, X], 0, heightHint+1),
	}
}

func (i *PreOrder[T, X]) Next() bool {
	if !i.started {
		i.started = true
		if i.root != nil {
			i.stack = append(i.stack, i.root)
		}
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	// right goes on first so that left comes off first
	if i.at.Right != nil {
		i.stack = append(i.stack, i.at.Right)
	}
	if i.at.Left != nil {
		i.stack = append(i.stack, i.at.Left)
	}

	return true
}

func (i *PreOrder[T, X]) Item() T {
	return i.at.Key
}
