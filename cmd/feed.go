package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	feedrender "github.com/bnema/lets-share-cli/internal/adapters/render/feed"
	"github.com/bnema/lets-share-cli/internal/ports"
)

func newFeedCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the latest posts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireAuth(cmd.Context(), ports.RouteFeed); err != nil {
				return err
			}

			if err := runFeedFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching the feed...", app.feed.FetchAll); err != nil {
				return app.loginHint(err)
			}

			if jsonOutput {
				return printFeedJSON(cmd, app)
			}
			return app.renderFeed(cmd, "")
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the feed as JSON")

	return cmd
}

func printFeedJSON(cmd *cobra.Command, app *app) error {
	payload, err := json.MarshalIndent(app.feed.Snapshot().Posts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return err
}

func (a *app) renderFeed(cmd *cobra.Command, query string) error {
	snap := a.feed.Snapshot()
	output, err := a.feedRenderer(snap.Posts, feedrender.RenderOptions{Now: a.clock.Now(), Query: query})
	if err != nil {
		return fmt.Errorf("render feed: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}
