package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jbeshir/content-ratings/internal/app"
	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/jbeshir/content-ratings/internal/domain"
	"github.com/spf13/cobra"
)

func newTopCmd() *cobra.Command {
	var req command.TopRatedRequest

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List top-rated posts and pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withStore(ctx, func(store *app.Store) error {
				settings, err := command.NewGetSettings(store).Execute(ctx, command.Empty{})
				if err != nil {
					return err
				}

				entries, err := command.NewTopRated(store, store, store, app.DefaultTopRatedConfig()).Execute(ctx, req)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No top-rated posts found for the selected filters.")
					return nil
				}

				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tRATING\tTITLE\tCATEGORIES")
				for _, e := range entries {
					names := make([]string, 0, len(e.Item.Categories))
					for _, c := range e.Item.Categories {
						names = append(names, c.Name)
					}
					display := domain.NewRatedDisplay(e.Rating.Value, settings.Scale())
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
						e.Item.ID, display.Numeric, e.Item.Title, strings.Join(names, ", "))
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().Int64Var(&req.CategoryID, "category", 0, "Only include content in this category ID")
	cmd.Flags().StringVar(&req.Tag, "tag", "", "Only include content with this tag slug or name")
	cmd.Flags().IntVar(&req.Limit, "limit", 0, "Maximum number of entries (default 10)")
	return cmd
}
