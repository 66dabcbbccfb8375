package avl

import (
	"fmt"

	"go.lepak.sg/avltrace/tree"
)

// Op says what kind of decision a LogEntry records.
type Op int

const (
	// OpInsert marks a comparison made while inserting, or the
	// creation of the new leaf.
	OpInsert Op = iota
	// OpDelete marks a comparison made while removing, or the
	// detaching of the removed node.
	OpDelete
	// OpSearch marks a comparison made while searching.
	OpSearch
	OpRotateLL
	OpRotateRR
	OpRotateLR
	OpRotateRL
	// OpNotFound ends a search or removal that reached an empty slot.
	OpNotFound
	// OpFound marks the node equal to the searched (or removed) value.
	OpFound
	// OpDuplicate ends an insert of a value that is already present.
	OpDuplicate
	// OpSuccessor marks a two-child removal: the first value is
	// overwritten by the second, its in-order successor.
	OpSuccessor
)

var opNames = [...]string{
	OpInsert:    "insert",
	OpDelete:    "delete",
	OpSearch:    "search",
	OpRotateLL:  "rotate-LL",
	OpRotateRR:  "rotate-RR",
	OpRotateLR:  "rotate-LR",
	OpRotateRL:  "rotate-RL",
	OpNotFound:  "not-found",
	OpFound:     "found",
	OpDuplicate: "duplicate",
	OpSuccessor: "successor",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "<invalid avl.Op>"
	}
	return opNames[o]
}

// IsRotation reports whether o is one of the four rotation cases.
func (o Op) IsRotation() bool {
	switch o {
	case OpRotateLL, OpRotateRR, OpRotateLR, OpRotateRL:
		return true
	default:
		return false
	}
}

// LogEntry is one decision made during an operation.
// Values holds the value(s) the decision was about, in the order
// they appear in Message.
type LogEntry[T any] struct {
	Op      Op
	Message string
	Values  []T
}

func (e LogEntry[T]) String() string {
	return fmt.Sprintf("[%s] %s", e.Op, e.Message)
}

// Result describes a completed Insert, Remove or Search.
type Result[T any] struct {
	// OK is true if Insert created a node, Remove removed one,
	// or Search found the value.
	OK bool
	// Path holds the values of the nodes visited, root first.
	Path []T
	// Logs holds every decision made, in the order it was made.
	Logs []LogEntry[T]
}

// Rotations returns the rotation entries of r.Logs.
func (r Result[T]) Rotations() []LogEntry[T] {
	var out []LogEntry[T]
	for _, e := range r.Logs {
		if e.Op.IsRotation() {
			out = append(out, e)
		}
	}
	return out
}

// recorder accumulates the path and log for a single operation.
// It is discarded once its Result has been handed out.
type recorder[T any] struct {
	// the comparison kind: OpInsert, OpDelete or OpSearch
	op   Op
	path []T
	logs []LogEntry[T]
}

func newRecorder[T any](op Op) *recorder[T] {
	return &recorder[T]{op: op}
}

func (r *recorder[T]) visit(v T) {
	r.path = append(r.path, v)
}

func (r *recorder[T]) log(op Op, msg string, values ...T) {
	r.logs = append(r.logs, LogEntry[T]{
		Op:      op,
		Message: msg,
		Values:  values,
	})
}

// compare records the comparison of v against the key of a visited node.
func (r *recorder[T]) compare(v, key T, ord tree.Order) {
	switch ord {
	case tree.Less:
		r.log(r.op, fmt.Sprintf("%v < %v, go left", v, key), v, key)
	case tree.Greater:
		r.log(r.op, fmt.Sprintf("%v > %v, go right", v, key), v, key)
	default:
		panic("unreachable")
	}
}

func (r *recorder[T]) rotation(op Op, pivot T, balance int) {
	var msg string
	switch op {
	case OpRotateLL:
		msg = fmt.Sprintf("%v is left-heavy (balance %d), LL case: rotate right at %v", pivot, balance, pivot)
	case OpRotateRR:
		msg = fmt.Sprintf("%v is right-heavy (balance %d), RR case: rotate left at %v", pivot, balance, pivot)
	case OpRotateLR:
		msg = fmt.Sprintf("%v is left-heavy (balance %d), LR case: rotate left at its left child, then right at %v", pivot, balance, pivot)
	case OpRotateRL:
		msg = fmt.Sprintf("%v is right-heavy (balance %d), RL case: rotate right at its right child, then left at %v", pivot, balance, pivot)
	default:
		panic("unreachable")
	}
	r.log(op, msg, pivot)
}

func (r *recorder[T]) result(ok bool) Result[T] {
	return Result[T]{
		OK:   ok,
		Path: r.path,
		Logs: r.logs,
	}
}
