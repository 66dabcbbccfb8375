package avl

import (
	"fmt"

	"go.lepak.sg/avltrace/tree"
)

// Insert inserts v into the tree.
//
// If v is already in the tree, nothing changes: the Result has OK false
// and ends with an OpDuplicate entry. Otherwise a new leaf is created,
// the path ends with v itself, and the tree is rebalanced on the way
// back up to the root (at most one rotation, single or double, is
// ever logged by an insert).
//
// Insert returns ErrIncomparable, without touching the tree, if v
// cannot be ordered.
func (t *Tree[T]) Insert(v T) (Result[T], error) {
	if err := t.checkValue(v); err != nil {
		return Result[T]{}, err
	}

	rec := newRecorder[T](OpInsert)

	root, created := t.insert(t.root, v, rec)
	t.root = root
	if created {
		t.count++
		t.version++
	}

	return rec.result(created), nil
}

func (t *Tree[T]) insert(n *tree.Node[T, uint64], v T, rec *recorder[T]) (*tree.Node[T, uint64], bool) {
	if n == nil {
		rec.visit(v)
		rec.log(OpInsert, fmt.Sprintf("insert %v as a new leaf", v), v)
		return t.newNode(v), true
	}

	rec.visit(n.Key)

	var created bool
	switch ord := t.cmp(v, n.Key); ord {
	case tree.Less:
		rec.compare(v, n.Key, ord)
		n.Left, created = t.insert(n.Left, v, rec)
	case tree.Greater:
		rec.compare(v, n.Key, ord)
		n.Right, created = t.insert(n.Right, v, rec)
	case tree.Equal:
		rec.log(OpDuplicate, fmt.Sprintf("%v is already in the tree, not inserted", v), v)
		return n, false
	default:
		panic("unreachable")
	}

	if !created {
		// nothing below changed, so neither did any height
		return n, false
	}

	return t.rebalance(n, rec), true
}
