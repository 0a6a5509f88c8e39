package cmd

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	config "github.com/denismitr/intset/configs"
	customLogger "github.com/denismitr/intset/internal/log"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate statements interactively",
	RunE:  RunRepl,
}

func RunRepl(cmd *cobra.Command, args []string) error {
	customLogger.Silence()

	s := newSession(config.Cfg.Sets.Strict, config.Cfg.History.Size)
	defer s.close()

	m := newReplModel(s, newReplStyles(config.Cfg.Render.Color))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "repl failed")
	}
	return nil
}

type replStyles struct {
	title  lipgloss.Style
	echo   lipgloss.Style
	err    lipgloss.Style
	border lipgloss.Style
	help   lipgloss.Style
}

func newReplStyles(color bool) replStyles {
	st := replStyles{
		title:  lipgloss.NewStyle().Bold(true),
		echo:   lipgloss.NewStyle(),
		err:    lipgloss.NewStyle(),
		border: lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		help:   lipgloss.NewStyle().Faint(true),
	}

	if color {
		st.title = st.title.Foreground(lipgloss.Color("205"))
		st.echo = st.echo.Foreground(lipgloss.Color("245"))
		st.err = st.err.Foreground(lipgloss.Color("196"))
		st.border = st.border.BorderForeground(lipgloss.Color("63"))
	}

	return st
}

type replModel struct {
	session *session
	styles  replStyles
	input   textinput.Model
	output  viewport.Model
	lines   []string
	// position while browsing the history, equal to its length otherwise
	browse int
}

func newReplModel(s *session, styles replStyles) replModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "{1 2 3} + {2 3 4}"
	input.Focus()

	output := viewport.New(80, 20)
	output.SetContent("Type :help for the syntax.")

	return replModel{
		session: s,
		styles:  styles,
		input:   input,
		output:  output,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, input, help and the viewport border
		m.output.Width = msg.Width - 2
		m.output.Height = msg.Height - 6
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submit()

		case tea.KeyUp:
			m.recall(-1)
			return m, nil

		case tea.KeyDown:
			m.recall(1)
			return m, nil

		case tea.KeyPgUp:
			m.output.HalfViewUp()
			return m, nil

		case tea.KeyPgDown:
			m.output.HalfViewDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	output, quit, err := m.session.run(line)
	if quit {
		return m, tea.Quit
	}

	m.lines = append(m.lines, m.styles.echo.Render("> "+line))
	switch {
	case err != nil:
		m.lines = append(m.lines, m.styles.err.Render("error: "+err.Error()))
	case output != "":
		m.lines = append(m.lines, output)
	}

	m.browse = m.session.history.Len()
	m.output.SetContent(strings.Join(m.lines, "\n"))
	m.output.GotoBottom()
	return m, nil
}

func (m *replModel) recall(step int) {
	n := m.session.history.Len()
	next := m.browse + step
	if next < 0 || next > n {
		return
	}

	m.browse = next
	if next == n {
		m.input.SetValue("")
		return
	}

	if line, err := m.session.history.At(next); err == nil {
		m.input.SetValue(line)
		m.input.CursorEnd()
	}
}

func (m replModel) View() string {
	return m.styles.title.Render("intset") + "\n" +
		m.styles.border.Render(m.output.View()) + "\n" +
		m.input.View() + "\n" +
		m.styles.help.Render("enter: evaluate • ↑/↓: history • pgup/pgdown: scroll • esc: quit")
}
