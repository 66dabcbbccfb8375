package avl

import (
	"fmt"

	"go.lepak.sg/avltrace/tree"
)

// Check walks the whole tree and verifies every invariant listed on
// Tree. It returns nil if they all hold, or an error wrapping
// ErrInvariant that describes the first violation found.
// Check is O(n) and meant for tests and debugging.
func (t *Tree[T]) Check() error {
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: size is %d but %d nodes are reachable", ErrInvariant, t.count, count)
	}
	return nil
}

// checkNode checks the subtree rooted at n, whose keys must lie
// strictly between *lo and *hi (nil means unbounded).
func (t *Tree[T]) checkNode(n *tree.Node[T, uint64], lo, hi *T) (int, error) {
	if n == nil {
		return 0, nil
	}

	if lo != nil && t.cmp(n.Key, *lo) != tree.Greater {
		return 0, fmt.Errorf("%w: %v is in the right subtree of %v", ErrInvariant, n.Key, *lo)
	}
	if hi != nil && t.cmp(n.Key, *hi) != tree.Less {
		return 0, fmt.Errorf("%w: %v is in the left subtree of %v", ErrInvariant, n.Key, *hi)
	}

	lc, err := t.checkNode(n.Left, lo, &n.Key)
	if err != nil {
		return 0, err
	}
	rc, err := t.checkNode(n.Right, &n.Key, hi)
	if err != nil {
		return 0, err
	}

	want := 1 + max(tree.HeightOf(n.Left), tree.HeightOf(n.Right))
	if n.Height != want {
		return 0, fmt.Errorf("%w: %v has height %d, want %d", ErrInvariant, n.Key, n.Height, want)
	}
	if bf := n.Balance(); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: %v has balance %d", ErrInvariant, n.Key, bf)
	}

	return 1 + lc + rc, nil
}
