package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lets-share-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := app.promptPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			if err := app.auth.Login(cmd.Context(), domain.Credentials{
				Email:    email,
				Password: password,
			}); err != nil {
				return err
			}

			snap := app.auth.Snapshot()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", snap.User.FullName, snap.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin instead of prompting")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
