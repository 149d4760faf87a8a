package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const maxPasswordBytes = 4096

// promptPassword reads the password without echoing it. --password-stdin
// bypasses the terminal prompt for scripting and tests.
func (a *app) promptPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxPasswordBytes))
		if err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	defer func() { _, _ = fmt.Fprintln(cmd.ErrOrStderr()) }()

	raw, err := a.readPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
