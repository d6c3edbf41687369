package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/jbeshir/content-ratings/internal/app"
	"github.com/jbeshir/content-ratings/internal/command"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Manage API tokens",
	}
	token.AddCommand(newTokenCreateCmd(), newTokenListCmd(), newTokenRevokeCmd())
	return token
}

func newTokenListCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's API tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *app.Store) error {
				tokens, err := store.ListUserAPITokens(cmd.Context(), userID)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tPREFIX\tNAME\tACTIVE")
				for _, t := range tokens {
					name := ""
					if t.Name != nil {
						name = *t.Name
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", t.ID, t.Prefix, name, t.IsActive())
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "ID of the token owner")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newTokenRevokeCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "revoke <token-id>",
		Short: "Revoke one of a user's API tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(store *app.Store) error {
				if err := store.RevokeAPIToken(cmd.Context(), args[0], userID); err != nil {
					return fmt.Errorf("revoking token [%s]: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Token %s revoked.\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "ID of the token owner")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newTokenCreateCmd() *cobra.Command {
	var (
		userID    int64
		name      string
		expiresIn time.Duration
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API token for a user and print it once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if expiresIn < 0 {
				return fmt.Errorf("--expires-in must not be negative")
			}

			return withStore(cmd.Context(), func(store *app.Store) error {
				req := command.CreateAPITokenRequest{
					UserID:    userID,
					ExpiresIn: expiresIn,
				}
				if name != "" {
					req.Name = &name
				}

				res, err := command.NewCreateAPIToken(store, store, store).Execute(cmd.Context(), req)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Token ID: %s\n", res.TokenID)
				fmt.Fprintf(out, "Token:    %s\n", res.FullToken)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "ID of the user the token acts as")
	cmd.Flags().StringVar(&name, "name", "", "Label for the token")
	cmd.Flags().DurationVar(&expiresIn, "expires-in", 0, "Lifetime of the token, e.g. 720h (0 never expires)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
