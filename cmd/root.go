package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "share",
		Short:         "Share CLI: post and browse the shared feed from the terminal",
		Long:          "share talks to the Share API: create an account, sign in, publish posts, and browse or search the feed without leaving the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSignupCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newFeedCmd(app),
		newPostCmd(app),
		newSearchCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
