// Package script reads operation scripts for an avl.Tree from YAML
// and plays them back, collecting every result.
//
// A script looks like this:
//
//	seed: [30, 20, 40]
//	steps:
//	  - op: insert
//	    value: 10
//	  - op: delete
//	    value: 40
//	  - op: traverse
//	    order: levelorder
//
// The seed values are inserted first, without being reported.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.lepak.sg/avltrace/tree/avl"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every error about the content of a script.
var ErrInvalid = errors.New("invalid script")

const (
	OpInsert   = "insert"
	OpDelete   = "delete"
	OpSearch   = "search"
	OpTraverse = "traverse"
)

var valueOps = []string{OpInsert, OpDelete, OpSearch}

// DemoSeed is a small tree that needs no rotations to build.
var DemoSeed = []int{30, 20, 40, 10, 25, 35, 50, 5, 15, 27}

type Step struct {
	Op    string `yaml:"op"`
	Value *int   `yaml:"value,omitempty"`
	Order string `yaml:"order,omitempty"`
}

func (s Step) String() string {
	switch {
	case s.Value != nil:
		return fmt.Sprintf("%s %d", s.Op, *s.Value)
	case s.Order != "":
		return fmt.Sprintf("%s %s", s.Op, s.Order)
	default:
		return s.Op
	}
}

type Script struct {
	Seed  []int  `yaml:"seed"`
	Steps []Step `yaml:"steps"`
}

// Parse decodes and validates a script. Unknown keys are an error.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that every step names a known operation with the
// arguments it needs.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		switch {
		case slices.Contains(valueOps, st.Op):
			if st.Value == nil {
				return fmt.Errorf("%w: step %d: %s needs a value", ErrInvalid, i+1, st.Op)
			}
			if st.Order != "" {
				return fmt.Errorf("%w: step %d: %s takes no order", ErrInvalid, i+1, st.Op)
			}
		case st.Op == OpTraverse:
			if st.Value != nil {
				return fmt.Errorf("%w: step %d: traverse takes no value", ErrInvalid, i+1)
			}
			if _, err := avl.ParseTraversal(st.Order); err != nil {
				return fmt.Errorf("%w: step %d: %v", ErrInvalid, i+1, err)
			}
		default:
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalid, i+1, st.Op)
		}
	}
	return nil
}

// Outcome is what one step produced. Traversals fill Visited,
// everything else fills Result.
type Outcome struct {
	Step    Step
	Result  avl.Result[int]
	Visited []int
}

// Play inserts the seed values into tr, then runs each step in order.
// tr is usually empty, but doesn't have to be.
func Play(tr *avl.Tree[int], s *Script) ([]Outcome, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := tr.InsertAll(s.Seed...); err != nil {
		return nil, err
	}

	out := make([]Outcome, 0, len(s.Steps))
	for _, st := range s.Steps {
		o := Outcome{Step: st}

		var err error
		switch st.Op {
		case OpInsert:
			o.Result, err = tr.Insert(*st.Value)
		case OpDelete:
			o.Result, err = tr.Remove(*st.Value)
		case OpSearch:
			o.Result, err = tr.Search(*st.Value)
		case OpTraverse:
			o.Visited, err = traverse(tr, st.Order)
		default:
			panic("unreachable")
		}
		if err != nil {
			return out, fmt.Errorf("%s: %w", st, err)
		}

		out = append(out, o)
	}

	return out, nil
}

func traverse(tr *avl.Tree[int], order string) ([]int, error) {
	o, err := avl.ParseTraversal(order)
	if err != nil {
		return nil, err
	}

	cur, err := tr.Traverse(o)
	if err != nil {
		return nil, err
	}

	visited := make([]int, 0, tr.Size())
	for cur.Next() {
		visited = append(visited, cur.Item())
	}
	return visited, cur.Err()
}
