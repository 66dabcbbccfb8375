package iterator

import (
	"go.lepak.sg/avltrace/tree"
)

var _ Iterator[int] = (*LevelOrder[int, any])(nil)

// LevelOrder is a breadth-first iterator: all nodes at depth d are
// yielded, left to right, before any node at depth d+1.
type LevelOrder[T, X any] struct {
	root    *tree.Node[T, X]
	at      *tree.Node[T, X]
	queue   []*tree.Node[T, X]
	started bool
}

// NewLevelOrder returns a new level-order iterator over the tree rooted at root.
func NewLevelOrder[T, X any](root *tree.Node[T, X]) *LevelOrder[T, X] {
	return &LevelOrder[T, X]{
		root: root,
	}
}

func (i *LevelOrder[T, X]) Next() bool {
	if !i.started {
		i.started = true
		if i.root != nil {
			i.queue = append(i.queue, i.root)
		}
	}

	if len(i.queue) == 0 {
		i.at = nil
		return false
	}

	i.at = i.queue[0]
	// drop the reference so the backing array doesn't pin yielded nodes
	i.queue[0] = nil
	i.queue = i.queue[1:]

	if i.at.Left != nil {
		i.queue = append(i.queue, i.at.Left)
	}
	if i.at.Right != nil {
		i.queue = append(i.queue, i.at.Right)
	}

	return true
}

func (i *LevelOrder[T, X]) Item() T {
	return i.at.Key
}
