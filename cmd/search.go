package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bnema/lets-share-cli/internal/ports"
)

func newSearchCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search posts by text or author name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(cmd.Context(), ports.RouteFeed); err != nil {
				return err
			}

			err := runFeedFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Searching posts...", func(ctx context.Context) error {
				return app.feed.Search(ctx, args[0])
			})
			if err != nil {
				return app.loginHint(err)
			}

			if jsonOutput {
				return printFeedJSON(cmd, app)
			}
			return app.renderFeed(cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print matches as JSON")

	return cmd
}
