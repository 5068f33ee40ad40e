package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/vidriera"
)

const defaultCatalogPath = "data/products.json"

func newSearchCmd() *cobra.Command {
	var (
		catalogPath string
		limit       int
		asJSON      bool
	)

	c := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a search against a catalog file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := vidriera.New(vidriera.WithCatalogFile(catalogPath))
			if err != nil {
				return err
			}
			defer e.Close()

			query := strings.Join(args, " ")
			res, err := e.Search(contextOf(cmd), query, vidriera.Limit(limit))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, res)
			}

			printHeader(out, "%q → %s", query, res.Intent.Kind)
			if len(res.Intent.CategoryHint) > 0 {
				dimColor.Fprintf(out, "  hint: %s\n", strings.Join(res.Intent.CategoryHint, " > ")) //nolint:errcheck
			}
			if len(res.Fallbacks) > 0 {
				dimColor.Fprintf(out, "  fallbacks: %s\n", strings.Join(res.Fallbacks, ", ")) //nolint:errcheck
			}
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "  no results")
				return nil
			}
			for i := range res.Items {
				p := &res.Items[i]
				fmt.Fprintf(out, "  %d. [%s] %s\n", i+1, p.ID, p.Title)
			}
			if len(res.Breadcrumb) > 0 {
				dimColor.Fprintf(out, "  breadcrumb: %s\n", strings.Join(res.Breadcrumb, " > ")) //nolint:errcheck
			}
			return nil
		},
	}

	c.Flags().StringVarP(&catalogPath, "catalog", "c", envOr("CATALOG_PATH", defaultCatalogPath), "catalog JSON file")
	c.Flags().IntVarP(&limit, "limit", "n", vidriera.DefaultLimit, "maximum number of results")
	c.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return c
}

func newIntentCmd() *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "intent <query>",
		Short: "Show the intent detected for a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := vidriera.New(vidriera.WithProducts(nil))
			if err != nil {
				return err
			}
			defer e.Close()

			in, err := e.DetectIntent(strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, in)
			}
			rows := [][2]any{{"type", in.Kind}}
			if len(in.CategoryHint) > 0 {
				rows = append(rows, [2]any{"hint", strings.Join(in.CategoryHint, " > ")})
			}
			if in.Brand != "" {
				rows = append(rows, [2]any{"brand", in.Brand})
			}
			printCounts(out, rows)
			return nil
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "print the intent as JSON")
	return c
}
