// Command avlplay drives an avl.Tree from the command line: it replays
// operation scripts, plays traversals back at a set pace, and stress
// tests the tree's invariants.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("avlplay: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := &cobra.Command{
		Use:           "avlplay",
		Short:         "Step through AVL tree operations",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(newRunCmd(), newTraverseCmd(), newStressCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
