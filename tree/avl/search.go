package avl

import (
	"fmt"

	"go.lepak.sg/avltrace/tree"
)

// Search looks for v. The path includes every node visited,
// including the matching node itself. Search never changes the tree.
func (t *Tree[T]) Search(v T) (Result[T], error) {
	if err := t.checkValue(v); err != nil {
		return Result[T]{}, err
	}

	rec := newRecorder[T](OpSearch)

	n := t.root
	for n != nil {
		rec.visit(n.Key)
		switch ord := t.cmp(v, n.Key); ord {
		case tree.Less:
			rec.compare(v, n.Key, ord)
			n = n.Left
		case tree.Greater:
			rec.compare(v, n.Key, ord)
			n = n.Right
		case tree.Equal:
			rec.log(OpFound, fmt.Sprintf("found %v", v), v)
			return rec.result(true), nil
		default:
			panic("unreachable")
		}
	}

	rec.log(OpNotFound, fmt.Sprintf("%v not found", v), v)
	return rec.result(false), nil
}

// Contains reports whether v is in the tree, without recording anything.
func (t *Tree[T]) Contains(v T) bool {
	if !t.valid(v) {
		return false
	}

	n := t.root
	for n != nil {
		switch t.cmp(v, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}
