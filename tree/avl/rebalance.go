package avl

import "go.lepak.sg/avltrace/tree"

// rebalance restores the height and balance of n after one of its
// subtrees changed, and returns the node that now roots the subtree.
// The children of n must already be balanced, with correct heights.
//
// At most one rotation (single or double) is needed at n: a change
// in a subtree moves its height by at most one, so the balance of n
// is at worst ±2.
func (t *Tree[T]) rebalance(n *tree.Node[T, uint64], rec *recorder[T]) *tree.Node[T, uint64] {
	n.UpdateHeight()

	switch bf := n.Balance(); {
	case bf > 1:
		if n.Left.Balance() >= 0 {
			rec.rotation(OpRotateLL, n.Key, bf)
			return n.RotateRight()
		}
		rec.rotation(OpRotateLR, n.Key, bf)
		n.Left = n.Left.RotateLeft()
		return n.RotateRight()
	case bf < -1:
		if n.Right.Balance() <= 0 {
			rec.rotation(OpRotateRR, n.Key, bf)
			return n.RotateLeft()
		}
		rec.rotation(OpRotateRL, n.Key, bf)
		n.Right = n.Right.RotateRight()
		return n.RotateLeft()
	default:
		return n
	}
}
