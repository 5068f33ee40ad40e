package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	dbRedis "github.com/kailas-cloud/vidriera/internal/db/redis"
	catalogrepo "github.com/kailas-cloud/vidriera/internal/repository/catalog"
	cataloguc "github.com/kailas-cloud/vidriera/internal/usecase/catalog"
)

func newMergeDetailCmd() *cobra.Command {
	var opts cataloguc.MergeOptions

	c := &cobra.Command{
		Use:   "merge-detail <products.json> <productDetail.json>",
		Short: "Merge the detail store with the primary catalog",
		Long: "Removes detail records whose product left the catalog, syncs title, price, " +
			"category path and image, and creates records for new products.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := cataloguc.New(catalogrepo.NewFileStore(), nil)
			st, err := svc.MergeDetail(contextOf(cmd), args[0], args[1], opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "detail store merged: %s", args[1])
			printCounts(out, [][2]any{
				{"total", st.Total},
				{"added", st.Added},
				{"removed", st.Removed},
				{"updated", st.Updated},
				{"images", st.Images},
				{"titles", st.Titles},
				{"prices", st.Prices},
				{"categories", st.Categories},
				{"descriptions", st.Descriptions},
			})
			return nil
		},
	}

	c.Flags().BoolVar(&opts.RefreshDescription, "refresh-description", false,
		"regenerate descriptions of records whose title changed")
	c.Flags().BoolVar(&opts.RefreshCondition, "refresh-condition", false,
		"reset the condition of every record to \"new\"")
	return c
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <in.json> <out.json>",
		Short: "Sort a catalog by category path, then numeric id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := cataloguc.New(catalogrepo.NewFileStore(), nil)
			rep, err := svc.Sort(contextOf(cmd), args[0], args[1])
			if err != nil {
				return err
			}
			wrapper := rep.Wrapper
			if wrapper == "" {
				wrapper = "array"
			}
			printSuccess(cmd.OutOrStdout(), "sorted %d records (%s) into %s", rep.Count, wrapper, args[1])
			return nil
		},
	}
}

func newPushCmd() *cobra.Command {
	var (
		key      string
		addrs    string
		password string
	)

	c := &cobra.Command{
		Use:   "push <products.json>",
		Short: "Upload a catalog to Redis or Valkey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				return errors.New("--key is required")
			}
			store, err := dbRedis.NewStore(dbRedis.Config{
				Addrs:    splitAddrs(addrs),
				Password: password,
			})
			if err != nil {
				return err
			}
			defer store.Close()

			svc := cataloguc.New(catalogrepo.NewFileStore(), catalogrepo.NewRedisSource(store, key))
			n, err := svc.Push(contextOf(cmd), args[0], key)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "pushed %d products to %s", n, key)
			return nil
		},
	}

	c.Flags().StringVarP(&key, "key", "k", envOr("CATALOG_REDIS_KEY", ""), "destination key")
	c.Flags().StringVar(&addrs, "addr", envOr("REDIS_ADDR", "localhost:6379"), "comma-separated server addresses")
	c.Flags().StringVar(&password, "password", envOr("REDIS_PASSWORD", ""), "server password")
	return c
}

func splitAddrs(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
