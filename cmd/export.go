package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/dataset"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the shoe catalog as storefront data",
	Long: `
Write the shoe catalog in the shape the storefront reads, with prices as
decimal strings. No database connection is needed.
Supported formats: json (default), yaml

Examples:
  shoeseed export
  shoeseed export --out public/data.json
  shoeseed export --format yaml --out data.yaml
  shoeseed export --out -`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.ExportPath
		}

		if out == "-" {
			return export.Write(cmd.OutOrStdout(), dataset.Shoes(), format)
		}
		if err := export.ToFile(out, dataset.Shoes(), format); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Export completed: %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("format", "json", "Output format (json, yaml)")
	exportCmd.Flags().StringP("out", "o", "", "Output file, - for stdout (default is export_path)")
}
