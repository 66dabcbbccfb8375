package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/avltrace/script"
	"go.lepak.sg/avltrace/tree/avl"
)

func newTraverseCmd() *cobra.Command {
	var (
		order string
		pace  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "traverse [values...]",
		Short: "Build a tree and play a traversal back one node at a time",
		Long: "Build a tree from the given values (or a small demo tree) and\n" +
			"print its nodes in the chosen order, waiting between nodes.\n" +
			"Interrupt to stop part way.",
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := avl.ParseTraversal(order)
			if err != nil {
				return err
			}

			values := script.DemoSeed
			if len(args) > 0 {
				values = make([]int, len(args))
				for i, a := range args {
					values[i], err = strconv.Atoi(a)
					if err != nil {
						return fmt.Errorf("value %d: %w", i+1, err)
					}
				}
			}

			tr := avl.New[int]()
			if err := tr.InsertAll(values...); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprint(w, tr.String())

			co, err := tr.TraverseCoroutine(o)
			if err != nil {
				return err
			}
			defer co.Stop()

			var tick <-chan time.Time
			if pace > 0 {
				ticker := time.NewTicker(pace)
				defer ticker.Stop()
				tick = ticker.C
			}

			ctx := cmd.Context()
			fmt.Fprintf(w, "%s:", o)
			for v := range co.Items() {
				fmt.Fprintf(w, " %d", v)
				if tick == nil {
					if ctx.Err() != nil {
						fmt.Fprintln(w, " (stopped)")
						return nil
					}
					continue
				}
				select {
				case <-tick:
				case <-ctx.Done():
					fmt.Fprintln(w, " (stopped)")
					return nil
				}
			}
			fmt.Fprintln(w)

			return nil
		},
	}
	cmd.Flags().StringVarP(&order, "order", "o", avl.InOrder.String(),
		"inorder, preorder, postorder or levelorder")
	cmd.Flags().DurationVarP(&pace, "pace", "p", 300*time.Millisecond,
		"time between nodes (0 for no wait)")

	return cmd
}
