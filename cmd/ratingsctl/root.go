package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jbeshir/content-ratings/internal/app"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "ratingsctl",
		Short: "Administer the content ratings store",
		Long: `ratingsctl works directly against the store named by STORAGE_DRIVER
(MYSQL_URI or SQLITE_PATH), without going through the HTTP server.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
			cmd.SetContext(domain.ContextWithLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newTokenCmd(),
		newTopCmd(),
	)
	return root
}

// withStore opens the configured store for the duration of fn.
func withStore(ctx context.Context, fn func(*app.Store) error) (err error) {
	store, err := app.OpenStore(ctx)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing store: %w", closeErr)
		}
	}()

	return fn(store)
}
