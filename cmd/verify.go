package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/seeder"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the seeded records are stored unchanged",
	Long: `
Read every seeded order and shoe back by its primary key and compare it with
the dataset. Missing or changed records are listed and the command fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		report, err := seeder.New(s.orders, s.shoes).Verify(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d orders and %d shoes verified\n", report.Orders, report.Shoes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
