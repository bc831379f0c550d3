package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/config"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/database/factory"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/model"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/seeder"
)

const successMessage = "Tables seeded successfully!"

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample order and the shoe catalog",
	Long: `
Upsert the sample order into the orders table, then every shoe into the shoes
table. Both tables must already exist. A failure stops the run; orders already
written are left in place.

Examples:
  shoeseed seed
  shoeseed seed --strict
  SHOESEED_DATABASE_ENDPOINT=http://localhost:8000 shoeseed seed`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	report, err := seeder.New(s.orders, s.shoes, seeder.WithStrict(s.cfg.Seed.Strict)).Seed(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d orders, %d shoes in %s\n", report.Orders, report.Shoes, report.Duration.Round(time.Millisecond))
	fmt.Fprintln(out, successMessage)
	return nil
}

// session holds an open client and the two tables seeded through it.
type session struct {
	cfg    *config.Config
	client database.Client
	orders database.Table
	shoes  database.Table
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	client, err := factory.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	orders, err := client.Table(cfg.Tables.Orders, model.OrderKey)
	if err != nil {
		client.Close()
		return nil, err
	}
	shoes, err := client.Table(cfg.Tables.Shoes, model.ShoeKey)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &session{cfg: cfg, client: client, orders: orders, shoes: shoes}, nil
}

func (s *session) Close() error {
	return s.client.Close()
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("strict", false, "Fail if an order references a shoe missing from the catalog")
	viper.BindPFlag("seed.strict", seedCmd.Flags().Lookup("strict"))
}
