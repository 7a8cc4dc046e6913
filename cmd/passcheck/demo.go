package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ahmad007-lin/PasswordChecker/internal/service/generator"
	"github.com/Ahmad007-lin/PasswordChecker/internal/service/strength"
	"github.com/Ahmad007-lin/PasswordChecker/internal/tui"
)

var demoPasswords = []string{
	"123456",
	"password",
	"abc123",
	"MyPassword",
	"MyPassword123",
	"MyPassword123!",
	"Kj9#mN2$pL8vX4@qR7w",
	"P@ssw0rd!",
	"qwertyuiop",
	"admin123",
	"SecurePass2024!",
	"a",
	"",
}

var entropyExamples = []struct {
	password string
	charset  string
}{
	{"1234567890", "digits"},
	{"abcdefghij", "lowercase"},
	{"ABCDEFGHIJ", "uppercase"},
	{"!@#$%^&*()", "special"},
	{"abc123", "lowercase+digits"},
	{"ABC123", "uppercase+digits"},
	{"abcABC", "lowercase+uppercase"},
	{"abcABC123", "lowercase+uppercase+digits"},
	{"abcABC123!", "all classes"},
	{"abcABC123!@#", "all classes, longer"},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through analysis, generation and entropy examples",
	RunE: func(cmd *cobra.Command, args []string) error {
		strengthSvc, generatorSvc, _, err := newServices()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		demoAnalysis(out, strengthSvc)
		if err := demoGeneration(out, strengthSvc, generatorSvc); err != nil {
			return err
		}
		demoEntropy(out, strengthSvc)

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Demo completed. Run passcheck without arguments for the interactive menu.")
		return nil
	},
}

func demoAnalysis(out io.Writer, svc *strength.Service) {
	fmt.Fprintln(out, "Password Strength Checker - Demo")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	for i, password := range demoPasswords {
		fmt.Fprintf(out, "\n%2d. Testing: %q\n", i+1, password)
		fmt.Fprintln(out, strings.Repeat("-", 40))
		fmt.Fprint(out, tui.RenderReport(svc.Evaluate(password)))
	}
}

func demoGeneration(out io.Writer, strengthSvc *strength.Service, generatorSvc *generator.Service) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Password Generation Demo")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	for _, length := range []int{8, 12, 16, 20, 32} {
		password, err := generatorSvc.Generate(length, true)
		if err != nil {
			return err
		}
		report := strengthSvc.Evaluate(password)
		fmt.Fprintf(out, "\nGenerated %d-character password: %s\n", length, password)
		fmt.Fprintf(out, "Strength: %s | Entropy: %.2f bits | Crack time: %s\n",
			report.Strength, report.Entropy, report.CrackTime)
	}

	password, err := generatorSvc.Generate(16, false)
	if err != nil {
		return err
	}
	report := strengthSvc.Evaluate(password)
	fmt.Fprintf(out, "\nGenerated 16-character password (similar characters kept): %s\n", password)
	fmt.Fprintf(out, "Strength: %s | Entropy: %.2f bits\n", report.Strength, report.Entropy)
	return nil
}

func demoEntropy(out io.Writer, svc *strength.Service) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Entropy Comparison")
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintf(out, "%-20s %-28s %-10s %s\n", "Password", "Charset", "Entropy", "Crack time")
	fmt.Fprintln(out, strings.Repeat("-", 75))

	for _, e := range entropyExamples {
		entropy := svc.Entropy(e.password)
		fmt.Fprintf(out, "%-20s %-28s %-10.1f %s\n", e.password, e.charset, entropy, svc.CrackTime(entropy))
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
