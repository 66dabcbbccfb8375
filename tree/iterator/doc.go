// Package iterator provides tree iterators for use
// by tree implementations.
//
// None of the iterators rely on parent pointers. Each one keeps
// its own stack or queue of pending nodes and does only enough
// work in Next to reach the next node, so a caller may stop
// at any point without paying for the rest of the tree.
package iterator

import (
	"go.lepak.sg/avltrace/chops"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Once Next has returned false it keeps returning false.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.Iterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
//
// The result of mutating the tree while iterating over it is undefined.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)
