package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoad/asynclist/internal/catalog"
)

func seedCmd() *cobra.Command {
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the catalog with generated sample books",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}
			if err := catalog.Seed(cmd.Context(), books, count, seed); err != nil {
				return err
			}
			fmt.Printf("Seeded %d books into %s\n", count, cfg.Database.Path)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 500, "number of books to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "generator seed; the same seed regenerates the same catalog")
	return cmd
}
