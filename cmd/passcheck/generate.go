package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ahmad007-lin/PasswordChecker/internal/tui"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/clipboard"
)

var (
	generateLength       int
	generateCount        int
	generateAllowSimilar bool
	generateCopy         bool
	generateCheck        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate strong random passwords",
	RunE: func(cmd *cobra.Command, args []string) error {
		strengthSvc, generatorSvc, cfg, err := newServices()
		if err != nil {
			return err
		}

		length := generateLength
		if !cmd.Flags().Changed("length") {
			length = cfg.Generator.DefaultLength
		}
		length = clampLength(length, cfg.Generator.MaxLength)

		count := generateCount
		if count < 1 {
			count = 1
		}

		var last string
		for i := 0; i < count; i++ {
			password, err := generatorSvc.Generate(length, !generateAllowSimilar)
			if err != nil {
				return err
			}
			last = password

			if generateCheck {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderGenerated(password, strengthSvc.Evaluate(password)))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), password)
			}
		}

		if generateCopy {
			copyPassword(cmd, last)
		}
		return nil
	},
}

// copyPassword reports clipboard problems without failing the command;
// the password is already on stdout.
func copyPassword(cmd *cobra.Command, password string) {
	clip, err := clipboard.System()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "No clipboard utility found. Copy the password manually.")
		return
	}
	if err := clip.Copy(password); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Copy failed: %v. Copy the password manually.\n", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Password copied to clipboard!")
}

func clampLength(length, max int) int {
	if length < 8 {
		return 8
	}
	if length > max {
		return max
	}
	return length
}

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 16, "Password length (clamped to 8-50)")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "Number of passwords to generate")
	generateCmd.Flags().BoolVar(&generateAllowSimilar, "allow-similar", false, "Keep visually similar characters (l, i, I, O, 0, 1, |)")
	generateCmd.Flags().BoolVarP(&generateCopy, "copy", "c", false, "Copy the generated password to the clipboard")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "Analyze each generated password")
	rootCmd.AddCommand(generateCmd)
}
