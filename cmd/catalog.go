package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/catalog"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/dataset"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/model"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query the shoe catalog",
	Long: `
Browse the compiled-in shoe catalog the way the storefront does.

Examples:
  shoeseed catalog list
  shoeseed catalog list --brand Nike
  shoeseed catalog brands
  shoeseed catalog show 923e0c42-c180-4fc0-9796-bcd4902ffdfe
  shoeseed catalog top -n 3 --cheapest`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shoes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.New(dataset.Shoes())
		shoes := c.All()
		if brand, _ := cmd.Flags().GetString("brand"); brand != "" {
			shoes = c.ByBrand(brand)
			if len(shoes) == 0 {
				return fmt.Errorf("no shoes found for brand %s", brand)
			}
		}
		printShoes(cmd.OutOrStdout(), shoes)
		return nil
	},
}

var catalogBrandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List brands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, b := range catalog.New(dataset.Shoes()).Brands() {
			fmt.Fprintln(cmd.OutOrStdout(), b)
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <shoe-id>",
	Short: "Show one shoe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shoe, ok := catalog.New(dataset.Shoes()).ByID(args[0])
		if !ok {
			return fmt.Errorf("shoe not found: %s", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", color.CyanString(shoe.Name()))
		fmt.Fprintf(out, "  ID:     %s\n", shoe.ShoeID)
		fmt.Fprintf(out, "  Price:  £%s\n", shoe.Price.Display())
		fmt.Fprintf(out, "  Sizes:  %s\n", strings.Join(shoe.AvailableSizes, ", "))
		fmt.Fprintf(out, "  Image:  %s\n", shoe.Image)
		return nil
	},
}

var catalogTopCmd = &cobra.Command{
	Use:   "top",
	Short: "List the most expensive shoes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		if n <= 0 {
			return fmt.Errorf("--count must be positive, got %d", n)
		}

		c := catalog.New(dataset.Shoes())
		shoes := c.MostExpensive(n)
		if cheapest, _ := cmd.Flags().GetBool("cheapest"); cheapest {
			shoes = c.LeastExpensive(n)
		}
		printShoes(cmd.OutOrStdout(), shoes)
		return nil
	},
}

func printShoes(out io.Writer, shoes []model.Shoe) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tBRAND\tMODEL\tPRICE")
	fmt.Fprintln(w, "--\t-----\t-----\t-----")
	for _, s := range shoes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ShoeID, s.Brand, s.Model, s.Price.Display())
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogBrandsCmd, catalogShowCmd, catalogTopCmd)

	catalogListCmd.Flags().String("brand", "", "Only shoes of this brand")
	catalogTopCmd.Flags().IntP("count", "n", 5, "Number of shoes")
	catalogTopCmd.Flags().Bool("cheapest", false, "List the cheapest shoes instead")
}
