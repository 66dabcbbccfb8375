package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.lepak.sg/avltrace/script"
	"go.lepak.sg/avltrace/tree/avl"
)

func newRunCmd() *cobra.Command {
	var showLayout bool

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay an operation script, printing every decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}

			tr := avl.New[int]()
			out, err := script.Play(tr, s)
			w := cmd.OutOrStdout()
			for _, o := range out {
				printOutcome(w, o)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "tree (size %d, height %d):\n", tr.Size(), tr.Height())
			fmt.Fprint(w, tr.String())

			if showLayout {
				printLayout(w, tr.Layout())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showLayout, "layout", false, "also print the layout of the final tree")

	return cmd
}

func printOutcome(w io.Writer, o script.Outcome) {
	fmt.Fprintf(w, "== %s\n", o.Step)

	if o.Step.Op == script.OpTraverse {
		fmt.Fprintln(w, "visited:", o.Visited)
		return
	}

	for _, e := range o.Result.Logs {
		fmt.Fprintln(w, e)
	}
	fmt.Fprintln(w, "path:", o.Result.Path)
}

func printLayout(w io.Writer, layout []avl.LayoutNode[int]) {
	fmt.Fprintln(w, "layout:")
	for _, n := range layout {
		fmt.Fprintf(w, "  id=%d value=%d rank=%d depth=%d left=%d right=%d\n",
			n.ID, n.Value, n.Rank, n.Depth, n.Left, n.Right)
	}
}
