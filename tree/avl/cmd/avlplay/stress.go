package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.lepak.sg/avltrace/tree/avl"
	"golang.org/x/sync/errgroup"
)

func newStressCmd() *cobra.Command {
	var (
		rounds, size, workers int
		seed                  int64
	)

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run random inserts and deletes, checking the tree after each one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 1 || size < 1 || workers < 1 {
				return fmt.Errorf("rounds, size and workers must be positive")
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			bar := progressbar.NewOptions(rounds,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription(fmt.Sprintf("seed %d", seed)),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.SetLimit(workers)
			for i := 0; i < rounds; i++ {
				roundSeed := seed + int64(i)
				eg.Go(func() error {
					if err := stressRound(ctx, roundSeed, size); err != nil {
						return fmt.Errorf("round seed %d: %w", roundSeed, err)
					}
					return bar.Add(1)
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d rounds of %d values ok (seed %d)\n", rounds, size, seed)
			return nil
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "r", 100, "number of trees to build")
	cmd.Flags().IntVarP(&size, "size", "n", 200, "values per tree")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "rounds to run at once")
	cmd.Flags().Int64Var(&seed, "seed", 0, "first round's seed (default: current time)")

	return cmd
}

// stressRound inserts and removes random values drawn from [0, 2*size)
// and compares the tree against a map after every operation.
func stressRound(ctx context.Context, seed int64, size int) error {
	rd := rand.New(rand.NewSource(seed))
	tr := avl.New[int]()
	ref := make(map[int]bool)

	for i := 0; i < size*4; i++ {
		if i%size == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		v := rd.Intn(size * 2)
		var (
			res avl.Result[int]
			err error
			op  string
		)
		if rd.Intn(3) < 2 {
			op = "insert"
			res, err = tr.Insert(v)
			if err == nil && res.OK == ref[v] {
				err = fmt.Errorf("ok is %v but present is %v", res.OK, ref[v])
			}
			ref[v] = true
		} else {
			op = "delete"
			res, err = tr.Remove(v)
			if err == nil && res.OK != ref[v] {
				err = fmt.Errorf("ok is %v but present is %v", res.OK, ref[v])
			}
			delete(ref, v)
		}
		if err == nil {
			err = tr.Check()
		}
		if err == nil && tr.Size() != len(ref) {
			err = fmt.Errorf("size is %d, want %d", tr.Size(), len(ref))
		}
		if err != nil {
			return fmt.Errorf("op %d (%s %d): %w", i+1, op, v, err)
		}
	}

	return nil
}
