package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ahmad007-lin/PasswordChecker/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	passStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	passwordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)

	tierStyles = map[model.Tier]lipgloss.Style{
		model.TierVeryWeak: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		model.TierWeak:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		model.TierModerate: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		model.TierStrong:   lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
	}
)

func renderTier(t model.Tier) string {
	if style, ok := tierStyles[t]; ok {
		return style.Render(t.String())
	}
	return t.String()
}

func checkLine(label string, ok bool) string {
	if ok {
		return passStyle.Render("  ✓ ") + label + "\n"
	}
	return failStyle.Render("  ✗ ") + label + "\n"
}

// RenderReport formats a strength report for terminal display. The
// same rendering backs the interactive menu and the check subcommand.
func RenderReport(r *model.StrengthReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Password Analysis") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Strength:"), renderTier(r.Strength)))
	b.WriteString(fmt.Sprintf("%s %d/%d\n", labelStyle.Render("Score:"), r.Score, model.MaxScore))
	b.WriteString(fmt.Sprintf("%s %.2f bits\n", labelStyle.Render("Entropy:"), r.Entropy))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Estimated crack time:"), r.CrackTime))

	b.WriteString("\n" + titleStyle.Render("Requirements") + "\n")
	b.WriteString(checkLine("Minimum length (8+ characters)", r.Checks.Length))
	b.WriteString(checkLine("Contains uppercase letters", r.Checks.Uppercase))
	b.WriteString(checkLine("Contains lowercase letters", r.Checks.Lowercase))
	b.WriteString(checkLine("Contains numbers", r.Checks.Numbers))
	b.WriteString(checkLine("Contains special characters", r.Checks.Special))

	if len(r.Issues) > 0 {
		b.WriteString("\n" + titleStyle.Render("Issues") + "\n")
		for _, issue := range r.Issues {
			b.WriteString("  • " + issue + "\n")
		}
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\n" + titleStyle.Render("Recommendations") + "\n")
		for _, rec := range r.Recommendations {
			b.WriteString("  • " + rec + "\n")
		}
	}

	if r.Strength == model.TierVeryWeak {
		b.WriteString("\n" + warnStyle.Render("WARNING: This password is extremely weak!") + "\n")
		b.WriteString("Using passwords like this makes you vulnerable to:\n")
		b.WriteString("  • Dictionary attacks\n")
		b.WriteString("  • Credential stuffing\n")
		b.WriteString("  • Social engineering\n")
	}

	return b.String()
}

// RenderGenerated formats a freshly generated password together with
// the analysis of the password itself.
func RenderGenerated(password string, r *model.StrengthReport) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Generated Password") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Password:"), passwordStyle.Render(password)))
	b.WriteString(fmt.Sprintf("%s %d characters\n", labelStyle.Render("Length:"), len([]rune(password))))
	if r != nil {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Strength:"), renderTier(r.Strength)))
		b.WriteString(fmt.Sprintf("%s %.2f bits\n", labelStyle.Render("Entropy:"), r.Entropy))
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("Estimated crack time:"), r.CrackTime))
	}

	return b.String()
}
