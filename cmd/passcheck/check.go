package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Ahmad007-lin/PasswordChecker/internal/tui"
)

var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Analyze the strength of a password",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strengthSvc, _, _, err := newServices()
		if err != nil {
			return err
		}

		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			password, err = readPassword(cmd)
			if err != nil {
				return err
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(strengthSvc.Evaluate(password)))
		return nil
	},
}

// readPassword prompts with terminal echo disabled, or reads a single
// line when stdin is a pipe.
func readPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.OutOrStdout(), "Enter password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
