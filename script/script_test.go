package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/avltrace/tree/avl"
)

const demoScript = `
seed: [30, 20, 40, 10, 25, 35, 50, 5, 15, 27]
steps:
  - op: delete
    value: 40
  - op: search
    value: 99
  - op: insert
    value: 27
  - op: traverse
    order: inorder
  - op: traverse
    order: levelorder
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(demoScript))
	require.NoError(t, err)

	assert.Equal(t, DemoSeed, s.Seed)
	require.Len(t, s.Steps, 5)
	assert.Equal(t, "delete 40", s.Steps[0].String())
	assert.Equal(t, "traverse levelorder", s.Steps[4].String())
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Steps)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "syntax",
			yaml: "steps: [",
		},
		{
			name: "unknown key",
			yaml: "steps:\n  - op: insert\n    value: 1\n    colour: red\n",
			want: "colour",
		},
		{
			name: "unknown op",
			yaml: "steps:\n  - op: rotate\n",
			want: `step 1: unknown op "rotate"`,
		},
		{
			name: "missing value",
			yaml: "steps:\n  - op: insert\n    value: 1\n  - op: search\n",
			want: "step 2: search needs a value",
		},
		{
			name: "bad order",
			yaml: "steps:\n  - op: traverse\n    order: sideways\n",
			want: "step 1: avl: unknown traversal order",
		},
		{
			name: "traverse with value",
			yaml: "steps:\n  - op: traverse\n    order: inorder\n    value: 3\n",
			want: "traverse takes no value",
		},
		{
			name: "not an int",
			yaml: "steps:\n  - op: insert\n    value: ten\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
			if tt.want != "" {
				assert.ErrorContains(t, err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoScript), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Steps, 5)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("steps:\n  - op: nope\n"), 0o644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, bad)
}

func TestPlay(t *testing.T) {
	s, err := Parse([]byte(demoScript))
	require.NoError(t, err)

	tr := avl.New[int]()
	out, err := Play(tr, s)
	require.NoError(t, err)
	require.Len(t, out, 5)

	del := out[0].Result
	assert.True(t, del.OK)
	assert.Equal(t, []int{30, 40}, del.Path)
	var succ []avl.LogEntry[int]
	for _, e := range del.Logs {
		if e.Op == avl.OpSuccessor {
			succ = append(succ, e)
		}
	}
	require.Len(t, succ, 1)
	assert.Equal(t, []int{40, 50}, succ[0].Values)

	search := out[1].Result
	assert.False(t, search.OK)
	assert.Equal(t, []int{30, 50}, search.Path)
	assert.Equal(t, avl.OpNotFound, search.Logs[len(search.Logs)-1].Op)

	dup := out[2].Result
	assert.False(t, dup.OK)
	assert.Equal(t, avl.OpDuplicate, dup.Logs[len(dup.Logs)-1].Op)

	assert.Equal(t, []int{5, 10, 15, 20, 25, 27, 30, 35, 50}, out[3].Visited)
	assert.Equal(t, []int{30, 20, 50, 10, 25, 35, 5, 15, 27}, out[4].Visited)

	assert.Equal(t, 9, tr.Size())
	assert.NoError(t, tr.Check())
}

func TestPlay_Invalid(t *testing.T) {
	s := &Script{Steps: []Step{{Op: "insert"}}}
	_, err := Play(avl.New[int](), s)
	assert.ErrorIs(t, err, ErrInvalid)
}
