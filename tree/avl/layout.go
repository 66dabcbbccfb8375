package avl

import "go.lepak.sg/avltrace/tree"

// LayoutNode places one node of the tree on a grid for a renderer:
// Rank is the node's column (its index in ascending order, from 0)
// and Depth its row (the root is at depth 0).
// Left and Right are the IDs of the node's children, or 0 if absent.
type LayoutNode[T any] struct {
	ID          uint64
	Value       T
	Rank        int
	Depth       int
	Left, Right uint64
}

// Layout returns a LayoutNode for every node of the tree, sorted by
// Rank. It is recomputed from scratch on every call, and an empty tree
// gives an empty (non-nil) slice.
//
// Node IDs are stable: a node keeps its ID through rotations. When a
// node with two children is removed, its ID stays with the node that
// took over its place and the successor's ID disappears instead.
func (t *Tree[T]) Layout() []LayoutNode[T] {
	out := make([]LayoutNode[T], 0, t.count)

	var visit func(n *tree.Node[T, uint64], depth int)
	visit = func(n *tree.Node[T, uint64], depth int) {
		if n == nil {
			return
		}

		visit(n.Left, depth+1)

		ln := LayoutNode[T]{
			ID:    n.Extra,
			Value: n.Key,
			Rank:  len(out),
			Depth: depth,
		}
		if n.Left != nil {
			ln.Left = n.Left.Extra
		}
		if n.Right != nil {
			ln.Right = n.Right.Extra
		}
		out = append(out, ln)

		visit(n.Right, depth+1)
	}
	visit(t.root, 0)

	return out
}
