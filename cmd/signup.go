package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lets-share-cli/internal/domain"
)

func newSignupCmd(app *app) *cobra.Command {
	var fullName, email string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := app.promptPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			user, err := app.auth.SignUp(cmd.Context(), domain.SignUpRequest{
				FullName: fullName,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}

			notice := app.auth.Snapshot().Notice
			if notice == "" {
				notice = "Account created."
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), notice)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Next: share login --email %s\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Full name shown on your posts")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "Read the password from stdin instead of prompting")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
