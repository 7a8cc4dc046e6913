// Package tui implements the interactive terminal interface: a menu
// that checks password strength and generates passwords, with report
// rendering shared by the non-interactive subcommands.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Ahmad007-lin/PasswordChecker/internal/model"
	"github.com/Ahmad007-lin/PasswordChecker/internal/service/generator"
	"github.com/Ahmad007-lin/PasswordChecker/internal/service/strength"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/clipboard"
)

type screen int

const (
	screenMenu screen = iota
	screenCheck
	screenReport
	screenLength
	screenSimilar
	screenGenerated
)

var menuChoices = []string{
	"Check password strength",
	"Generate strong password",
	"Exit",
}

// Options configures the interactive model. Clipboard may be nil when
// no clipboard utility is available; copying then reports a hint
// instead of failing.
type Options struct {
	Strength      *strength.Service
	Generator     *generator.Service
	Clipboard     clipboard.Writer
	DefaultLength int
	MaxLength     int
}

// Model is the bubbletea model for the interactive menu. Screens form
// a small state machine: menu -> password input -> report, and
// menu -> length input -> similar-characters prompt -> generated view.
type Model struct {
	strength  *strength.Service
	generator *generator.Service
	clip      clipboard.Writer

	defaultLength int
	maxLength     int

	screen screen
	cursor int
	input  []rune
	status string

	report    *model.StrengthReport
	generated string
	genLength int
	quitting  bool
}

func NewModel(opts Options) Model {
	if opts.DefaultLength <= 0 {
		opts.DefaultLength = 16
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = 50
	}
	return Model{
		strength:      opts.Strength,
		generator:     opts.Generator,
		clip:          opts.Clipboard,
		defaultLength: opts.DefaultLength,
		maxLength:     opts.MaxLength,
	}
}

// Run starts the interactive program on the current terminal.
func Run(opts Options) error {
	_, err := tea.NewProgram(NewModel(opts)).Run()
	return err
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(key)
	case screenCheck:
		return m.updateCheck(key)
	case screenReport:
		return m.updateReport(key)
	case screenLength:
		return m.updateLength(key)
	case screenSimilar:
		return m.updateSimilar(key)
	case screenGenerated:
		return m.updateGenerated(key)
	}
	return m, nil
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		return m.selectMenu(m.cursor)
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyRunes:
		switch string(key.Runes) {
		case "1":
			return m.selectMenu(0)
		case "2":
			return m.selectMenu(1)
		case "3", "q":
			return m.selectMenu(2)
		}
	}
	return m, nil
}

func (m Model) selectMenu(choice int) (tea.Model, tea.Cmd) {
	m.cursor = choice
	m.input = nil
	m.status = ""

	switch choice {
	case 0:
		m.screen = screenCheck
	case 1:
		m.screen = screenLength
	case 2:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateCheck(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		m.report = m.strength.Evaluate(string(m.input))
		m.input = nil
		m.screen = screenReport
	case tea.KeyEsc:
		m.input = nil
		m.screen = screenMenu
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}
	return m, nil
}

func (m Model) updateReport(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.screen = screenMenu
	case tea.KeyRunes:
		if string(key.Runes) == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		m.screen = screenMenu
	}
	return m, nil
}

func (m Model) updateLength(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		length, err := strconv.Atoi(string(m.input))
		m.input = nil
		if err != nil {
			// Invalid input falls back to the default and generates
			// right away with similar characters excluded.
			m.status = fmt.Sprintf("Invalid length. Using default length of %d.", m.defaultLength)
			return m.generate(m.defaultLength, true)
		}
		m.genLength = clampLength(length, m.maxLength)
		m.screen = screenSimilar
	case tea.KeyEsc:
		m.input = nil
		m.screen = screenMenu
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r >= '0' && r <= '9' {
				m.input = append(m.input, r)
			}
		}
	}
	return m, nil
}

func (m Model) updateSimilar(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		return m.generate(m.genLength, true)
	case tea.KeyEsc:
		m.screen = screenMenu
	case tea.KeyRunes:
		switch string(key.Runes) {
		case "y", "Y":
			return m.generate(m.genLength, true)
		case "n", "N":
			return m.generate(m.genLength, false)
		}
	}
	return m, nil
}

func (m Model) generate(length int, excludeSimilar bool) (tea.Model, tea.Cmd) {
	password, err := m.generator.Generate(length, excludeSimilar)
	if err != nil {
		m.status = fmt.Sprintf("Generation failed: %v", err)
		m.screen = screenMenu
		return m, nil
	}

	m.generated = password
	m.report = m.strength.Evaluate(password)
	m.screen = screenGenerated
	return m, nil
}

func (m Model) updateGenerated(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.status = ""
		m.screen = screenMenu
	case tea.KeyRunes:
		switch string(key.Runes) {
		case "c":
			m.status = m.copyGenerated()
		case "q":
			m.quitting = true
			return m, tea.Quit
		default:
			m.status = ""
			m.screen = screenMenu
		}
	}
	return m, nil
}

func (m Model) copyGenerated() string {
	if m.clip == nil {
		return "No clipboard utility found. Copy the password manually."
	}
	if err := m.clip.Copy(m.generated); err != nil {
		return fmt.Sprintf("Copy failed: %v. Copy the password manually.", err)
	}
	return "Password copied to clipboard!"
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

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye! Stay secure!\n"
	}

	switch m.screen {
	case screenCheck:
		return m.viewCheck()
	case screenReport:
		return m.viewReport()
	case screenLength:
		return m.viewLength()
	case screenSimilar:
		return m.viewSimilar()
	case screenGenerated:
		return m.viewGenerated()
	default:
		return m.viewMenu()
	}
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Password Strength Checker") + "\n\n")

	for i, choice := range menuChoices {
		line := fmt.Sprintf("%d. %s", i+1, choice)
		if i == m.cursor {
			line = passwordStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString(helpStyle.Render("up/down: move | enter: select | 1-3: quick select | q: quit"))
	return b.String()
}

func (m Model) viewCheck() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Check password strength") + "\n\n")
	b.WriteString("Enter password to check:\n")
	b.WriteString("> " + strings.Repeat("*", len(m.input)) + "\n")
	b.WriteString(helpStyle.Render("enter: analyze | esc: back"))
	return b.String()
}

func (m Model) viewReport() string {
	var b strings.Builder
	b.WriteString(RenderReport(m.report))
	b.WriteString(helpStyle.Render("enter: back to menu | q: quit"))
	return b.String()
}

func (m Model) viewLength() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Generate strong password") + "\n\n")
	b.WriteString(fmt.Sprintf("Password length (8-%d, default %d):\n", m.maxLength, m.defaultLength))
	b.WriteString("> " + string(m.input) + "\n")
	b.WriteString(helpStyle.Render("enter: continue | esc: back"))
	return b.String()
}

func (m Model) viewSimilar() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Generate strong password") + "\n\n")
	b.WriteString("Exclude similar characters (O/0, I/1, l/i)? [Y/n]\n")
	b.WriteString(helpStyle.Render("y/enter: exclude | n: keep | esc: back"))
	return b.String()
}

func (m Model) viewGenerated() string {
	var b strings.Builder
	b.WriteString(RenderGenerated(m.generated, m.report))
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString(helpStyle.Render("c: copy to clipboard | enter: back to menu | q: quit"))
	return b.String()
}
