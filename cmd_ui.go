package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/maelvls/dungeonname/namegen"
	"github.com/maelvls/undent"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Styles for the name form.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func uiCmd(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Pick a dungeon name interactively",
		Long: undent.Undent(`
			Open a small form with a name field. Press enter or ctrl+n to fill
			the field with a new name, edit it if you like, then press esc to
			print it and quit.

			When stdout or stdin is not a terminal, a single name is printed
			instead.
		`),
		Args:          cobra.NoArgs,
		GroupID:       groupID,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := getToolConfig(cmd)
			if err != nil {
				return err
			}
			g, err := newGenerator(conf)
			if err != nil {
				return err
			}

			if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Fprintln(cmd.OutOrStdout(), g.Generate())
				return nil
			}

			p := tea.NewProgram(newUIModel(g),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(os.Stderr),
			)
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("while running the name form: %w", err)
			}

			if name := strings.TrimSpace(final.(uiModel).field.Value()); name != "" {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	return cmd
}

type uiModel struct {
	gen       *namegen.Generator
	field     textinput.Model
	generated int
	quitting  bool
}

func newUIModel(g *namegen.Generator) uiModel {
	field := textinput.New()
	field.Prompt = "Name: "
	field.Placeholder = "press enter to generate a name"
	field.CharLimit = 120
	field.Width = 50
	field.Focus()

	return uiModel{gen: g, field: field}
}

func (m uiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "ctrl+n":
			m.field.SetValue(m.gen.Generate())
			m.field.CursorEnd()
			m.generated++
			return m, nil
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m uiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Dungeon name"))
	b.WriteString("\n\n")
	b.WriteString(m.field.View())
	b.WriteString("\n\n")
	help := "enter/ctrl+n: new name • esc: done"
	if m.generated > 0 {
		help += fmt.Sprintf(" • %d generated", m.generated)
	}
	b.WriteString(subtleStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}
