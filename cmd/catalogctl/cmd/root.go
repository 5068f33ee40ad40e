package cmd

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/vidriera/internal/config"
	logpkg "github.com/kailas-cloud/vidriera/internal/logger"
	"github.com/kailas-cloud/vidriera/internal/version"
)

type rootFlags struct {
	noColor bool
	verbose bool
}

// NewRootCmd builds the catalogctl command tree.
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Catalog maintenance and local search",
		Long:          "Merge the detail store, sort and publish catalogs, and run searches against a catalog file.",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.noColor {
				color.NoColor = true
			}
			log := zap.NewNop()
			if flags.verbose {
				l, err := logpkg.NewLogger("local", "debug")
				if err != nil {
					return err
				}
				log = l
			}
			cmd.SetContext(logpkg.ContextWithLogger(contextOf(cmd), log))
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newSearchCmd())
	root.AddCommand(newIntentCmd())
	root.AddCommand(newMergeDetailCmd())
	root.AddCommand(newSortCmd())
	root.AddCommand(newPushCmd())
	return root
}

// Execute loads .env and runs the root command.
func Execute() error {
	if err := config.LoadDotEnv(); err != nil {
		printError(os.Stderr, err)
		return err
	}
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// envOr returns the environment variable or def.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
