package avl

import (
	"math/rand"
)

// BuildRandom builds a tree with num values.
// Values are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := New[int]()
	// ints are always comparable, so this cannot fail
	_ = tr.InsertAll(rd.Perm(num)...)

	return tr
}

// InsertAll inserts values in the given order, discarding the results.
// Values already in the tree are skipped. It stops at the first value
// that cannot be ordered and returns ErrIncomparable; the values before
// it remain inserted.
func (t *Tree[T]) InsertAll(values ...T) error {
	for _, v := range values {
		if _, err := t.Insert(v); err != nil {
			return err
		}
	}
	return nil
}
