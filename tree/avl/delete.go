package avl

import (
	"fmt"

	"go.lepak.sg/avltrace/tree"
)

// Remove removes v from the tree.
//
// If v is not in the tree, nothing changes: the Result has OK false,
// an empty Path, and its Logs end with a single OpNotFound entry after
// the comparisons that were made.
//
// Otherwise the node holding v is removed:
//   - a leaf is detached from its parent
//   - a node with one child is replaced by that child
//   - a node with two children takes the value of its in-order
//     successor (logged as OpSuccessor), and the successor's node,
//     which has no left child, is spliced out of the right subtree
//
// Every ancestor of the removed node is then rebalanced, which may
// take a rotation at several of them.
//
// Remove returns ErrIncomparable, without touching the tree, if v
// cannot be ordered.
func (t *Tree[T]) Remove(v T) (Result[T], error) {
	if err := t.checkValue(v); err != nil {
		return Result[T]{}, err
	}

	rec := newRecorder[T](OpDelete)

	root, removed := t.remove(t.root, v, rec)
	t.root = root
	if !removed {
		rec.path = nil
		return rec.result(false), nil
	}

	t.count--
	t.version++
	return rec.result(true), nil
}

func (t *Tree[T]) remove(n *tree.Node[T, uint64], v T, rec *recorder[T]) (*tree.Node[T, uint64], bool) {
	if n == nil {
		rec.log(OpNotFound, fmt.Sprintf("%v not found, nothing to delete", v), v)
		return nil, false
	}

	rec.visit(n.Key)

	var removed bool
	switch ord := t.cmp(v, n.Key); ord {
	case tree.Less:
		rec.compare(v, n.Key, ord)
		n.Left, removed = t.remove(n.Left, v, rec)
	case tree.Greater:
		rec.compare(v, n.Key, ord)
		n.Right, removed = t.remove(n.Right, v, rec)
	case tree.Equal:
		rec.log(OpFound, fmt.Sprintf("found %v", v), v)
		return t.detach(n, rec), true
	default:
		panic("unreachable")
	}

	if !removed {
		return n, false
	}

	return t.rebalance(n, rec), true
}

// detach removes n from the tree and returns what takes its place.
func (t *Tree[T]) detach(n *tree.Node[T, uint64], rec *recorder[T]) *tree.Node[T, uint64] {
	switch {
	case n.Left == nil && n.Right == nil:
		rec.log(OpDelete, fmt.Sprintf("%v is a leaf, detach it", n.Key), n.Key)
		return nil
	case n.Left == nil:
		rec.log(OpDelete, fmt.Sprintf("%v has only a right child %v, splice it in", n.Key, n.Right.Key), n.Key, n.Right.Key)
		return n.Right
	case n.Right == nil:
		rec.log(OpDelete, fmt.Sprintf("%v has only a left child %v, splice it in", n.Key, n.Left.Key), n.Key, n.Left.Key)
		return n.Left
	}

	succ := n.Right.Leftmost()
	rec.log(OpSuccessor, fmt.Sprintf("%v has two children, replace it with its in-order successor %v", n.Key, succ.Key), n.Key, succ.Key)
	n.Key = succ.Key
	n.Right = t.removeMin(n.Right, rec)

	return t.rebalance(n, rec)
}

// removeMin splices the leftmost node out of the subtree rooted at n,
// rebalancing on the way back up, and returns the new subtree root.
func (t *Tree[T]) removeMin(n *tree.Node[T, uint64], rec *recorder[T]) *tree.Node[T, uint64] {
	if n.Left == nil {
		rec.log(OpDelete, fmt.Sprintf("splice out successor %v", n.Key), n.Key)
		return n.Right
	}

	n.Left = t.removeMin(n.Left, rec)
	return t.rebalance(n, rec)
}
