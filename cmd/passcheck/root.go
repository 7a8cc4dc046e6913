package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Ahmad007-lin/PasswordChecker/internal/config"
	"github.com/Ahmad007-lin/PasswordChecker/internal/corpus"
	"github.com/Ahmad007-lin/PasswordChecker/internal/service/generator"
	"github.com/Ahmad007-lin/PasswordChecker/internal/service/strength"
	"github.com/Ahmad007-lin/PasswordChecker/internal/tui"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/clipboard"
)

var rootCmd = &cobra.Command{
	Use:   "passcheck",
	Short: "Password strength analysis and generation",
	Long: "passcheck analyzes password strength (score, entropy, estimated crack\n" +
		"time) and generates strong random passwords. Run it without arguments\n" +
		"on a terminal for the interactive menu.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return cmd.Help()
		}

		strengthSvc, generatorSvc, cfg, err := newServices()
		if err != nil {
			return err
		}

		// Degrades to a manual-copy hint inside the menu when no
		// clipboard utility is installed.
		clip, _ := clipboard.System()

		return tui.Run(tui.Options{
			Strength:      strengthSvc,
			Generator:     generatorSvc,
			Clipboard:     clip,
			DefaultLength: cfg.Generator.DefaultLength,
			MaxLength:     cfg.Generator.MaxLength,
		})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newServices wires the evaluator and generator the same way the API
// server does, minus the metrics registry.
func newServices() (*strength.Service, *generator.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	set := corpus.Default()
	if cfg.Strength.CorpusFile != "" {
		set, err = corpus.FromFile(cfg.Strength.CorpusFile)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	set.Add(cfg.Strength.ExtraBlocked...)

	return strength.NewService(set), generator.NewService(cfg.Generator.MinZxcvbnScore, nil), cfg, nil
}
