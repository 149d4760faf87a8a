package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/lets-share-cli/internal/domain"
	"github.com/bnema/lets-share-cli/internal/ports"
)

func newPostCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create or edit posts",
	}

	cmd.AddCommand(newPostCreateCmd(app), newPostEditCmd(app))

	return cmd
}

func newPostCreateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <description>",
		Short: "Publish a new post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireAuth(cmd.Context(), ports.RouteFeed); err != nil {
				return err
			}

			var post domain.Post
			err := runFeedFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Publishing post...", func(ctx context.Context) error {
				var createErr error
				post, createErr = app.feed.Create(ctx, domain.PostDraft{Description: args[0]})
				return createErr
			})
			if err != nil {
				return app.loginHint(err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Posted #%d.\n", post.ID)
			return nil
		},
	}
}

func newPostEditCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <description>",
		Short: "Edit one of your posts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}

			if err := app.requireAuth(cmd.Context(), ports.RouteFeed); err != nil {
				return err
			}

			var post domain.Post
			err = runFeedFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Updating post...", func(ctx context.Context) error {
				var editErr error
				post, editErr = app.feed.Edit(ctx, id, domain.PostDraft{Description: args[1]})
				return editErr
			})
			if err != nil {
				return app.loginHint(err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated post #%d.\n", post.ID)
			return nil
		},
	}
}
