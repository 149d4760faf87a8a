package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lets-share-cli/internal/application"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.auth.Initialize(cmd.Context())

			snap := app.auth.Snapshot()
			if snap.State != application.StateAuthenticated {
				return errNotSignedIn
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (id %d)\n", snap.User.FullName, snap.User.Email, snap.User.ID)
			return nil
		},
	}
}
