package avl

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/avltrace/tree"
	"golang.org/x/exp/slices"
)

// TestRandomOps interleaves inserts and removes over a small key space,
// so both duplicates and misses are common, and checks the tree against
// a map after every operation.
func TestRandomOps(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 40
	const opsPerRound = 400

	for i := 0; i < rounds; i++ {
		seed := seedrd.Int63()
		keySpace := 10 + seedrd.Intn(200)

		t.Run(fmt.Sprintf("round=%d/keys=%d", i, keySpace), func(t *testing.T) {
			rd := rand.New(rand.NewSource(seed))
			tr := New[int]()
			ref := make(map[int]bool)

			for j := 0; j < opsPerRound; j++ {
				v := rd.Intn(keySpace)

				var res Result[int]
				var err error
				if rd.Intn(3) == 0 {
					res, err = tr.Remove(v)
					require.NoError(t, err)
					require.Equal(t, ref[v], res.OK, "remove %d", v)
					if res.OK {
						require.Equal(t, v, res.Path[len(res.Path)-1])
					} else {
						require.Empty(t, res.Path)
					}
					delete(ref, v)
				} else {
					res, err = tr.Insert(v)
					require.NoError(t, err)
					require.Equal(t, !ref[v], res.OK, "insert %d", v)
					require.Equal(t, v, res.Path[len(res.Path)-1])
					ref[v] = true
				}

				if res.OK {
					// an insert fixes balance at no more than one node
					if res.Logs[0].Op == OpInsert {
						require.LessOrEqual(t, len(res.Rotations()), 1)
					}
				} else {
					require.Empty(t, res.Rotations())
				}

				require.NoError(t, tr.Check(), "after op %d on %d", j, v)
				require.Equal(t, len(ref), tr.Size())
			}

			want := make([]int, 0, len(ref))
			for v := range ref {
				want = append(want, v)
			}
			slices.Sort(want)
			got := tr.Values()
			if len(want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, want, got)
			}
			assert.True(t, slices.IsSortedFunc(got, func(a, b int) bool { return a < b }))
		})
	}
}

// TestRandomOrders checks each traversal against its recursive definition
// on trees of random shapes.
func TestRandomOrders(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x0fedcba987654321))

	for i := 0; i < 20; i++ {
		size := seedrd.Intn(100)
		tr := BuildRandom(size, seedrd.Int63())

		t.Run(fmt.Sprintf("round=%d/size=%d", i, size), func(t *testing.T) {
			var pre, in, post []int
			var visit func(n *tree.Node[int, uint64])
			visit = func(n *tree.Node[int, uint64]) {
				if n == nil {
					return
				}
				pre = append(pre, n.Key)
				visit(n.Left)
				in = append(in, n.Key)
				visit(n.Right)
				post = append(post, n.Key)
			}
			visit(tr.root)

			var level []int
			queue := []*tree.Node[int, uint64]{}
			if tr.root != nil {
				queue = append(queue, tr.root)
			}
			for len(queue) > 0 {
				n := queue[0]
				queue = queue[1:]
				level = append(level, n.Key)
				if n.Left != nil {
					queue = append(queue, n.Left)
				}
				if n.Right != nil {
					queue = append(queue, n.Right)
				}
			}

			assert.Equal(t, in, collect(t, tr, InOrder))
			assert.Equal(t, pre, collect(t, tr, PreOrder))
			assert.Equal(t, post, collect(t, tr, PostOrder))
			assert.Equal(t, level, collect(t, tr, LevelOrder))
		})
	}
}

func TestRemoveAll_RandomOrder(t *testing.T) {
	seedrd := rand.New(rand.NewSource(1))

	for i := 0; i < 10; i++ {
		size := 1 + seedrd.Intn(300)
		tr := BuildRandom(size, seedrd.Int63())
		order := seedrd.Perm(size)

		t.Run(fmt.Sprintf("round=%d/size=%d", i, size), func(t *testing.T) {
			for j, v := range order {
				res, err := tr.Remove(v)
				require.NoError(t, err)
				require.True(t, res.OK)
				require.NoError(t, tr.Check())
				require.Equal(t, size-j-1, tr.Size())
			}
			assert.Equal(t, -1, tr.Height())
		})
	}
}

var resultForBench Result[int]

func BenchmarkInsertRemove(b *testing.B) {
	sizes := []int{10, 1000, 100000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			tr := BuildRandom(size, 1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				resultForBench, _ = tr.Insert(size + 1)
				resultForBench, _ = tr.Remove(size + 1)
			}
		})
	}
}
