package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"pix_storefront/internal/domain/entities"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the configured price table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return printCatalog(cmd.OutOrStdout(), cfg.Catalog)
		},
	}
}

func printCatalog(out io.Writer, catalog *entities.Catalog) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tQUANTITY\tPRICE\tCALLBACK")
	for _, cat := range catalog.ListCategories() {
		for _, t := range cat.Tiers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.DisplayName(), t.Label, entities.FormatBRL(t.Price), entities.QuantityCallbackData(cat.ID, t.Label))
		}
	}
	return w.Flush()
}
