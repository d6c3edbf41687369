package main

import (
	"fmt"
	"os"

	"github.com/jbeshir/content-ratings/internal/app"
	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Import users, taxonomy, content and ratings from a YAML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening fixture: %w", err)
			}
			defer func() { _ = f.Close() }()

			fixture, err := command.ParseFixture(f)
			if err != nil {
				return err
			}

			return withStore(ctx, func(store *app.Store) error {
				if migrate {
					if err := store.Migrate(ctx); err != nil {
						return err
					}
				}

				importCmd := command.NewImportFixture(store, store, store, command.NewGetSettings(store))
				result, err := importCmd.Execute(ctx, fixture)
				if err != nil {
					return err
				}

				domain.LoggerFromContext(ctx).InfoContext(ctx, "fixture imported", "path", args[0])
				fmt.Fprintf(cmd.OutOrStdout(),
					"Imported %d users, %d categories, %d tags, %d items and %d ratings.\n",
					result.Users, result.Categories, result.Tags, result.Content, result.Ratings)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Create missing tables before importing")
	return cmd
}
