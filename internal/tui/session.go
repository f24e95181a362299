// Package tui runs an interactive terminal session that applies script
// commands to a DynamicArray and redraws it after each one.
package tui

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/script"
	"github.com/san-kum/dynarray/internal/viz"
)

const maxHistory = 8

type entry struct {
	input  string
	output string
	failed bool
}

type Model struct {
	runner  *script.Runner
	input   string
	history []entry
	width   int
}

func NewModel(arr *dynarray.DynamicArray[int]) Model {
	return Model{
		runner: script.NewRunner(arr, io.Discard),
		width:  80,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m = m.submit()
	case tea.KeyBackspace:
		_, size := utf8.DecodeLastRuneInString(m.input)
		m.input = m.input[:len(m.input)-size]
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m Model) submit() Model {
	line := strings.TrimSpace(m.input)
	m.input = ""
	if line == "" {
		return m
	}

	e := entry{input: line}
	cmd, ok, err := script.ParseLine(line)
	switch {
	case err != nil:
		e.output, e.failed = err.Error(), true
	case !ok:
		return m
	default:
		var out bytes.Buffer
		m.runner.SetOutput(&out)
		if err := m.runner.Apply(cmd); err != nil {
			e.output, e.failed = err.Error(), true
		} else {
			e.output = strings.TrimRight(out.String(), "\n")
		}
	}

	// history is shared with earlier copies of the model; copy on append.
	m.history = append(append([]entry(nil), m.history...), e)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	return m
}

func (m Model) Array() *dynarray.DynamicArray[int] {
	return m.runner.Array()
}

func (m Model) Report() script.Report {
	return m.runner.Report()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(viz.Title.Render("dynarray") + "\n\n")
	b.WriteString(viz.Array(m.runner.Array()) + "\n\n")

	for _, e := range m.history {
		b.WriteString(viz.Subtle.Render("> ") + e.input + "\n")
		if e.output == "" {
			continue
		}
		if e.failed {
			b.WriteString(viz.StatusFailed.Render(e.output) + "\n")
		} else {
			b.WriteString(e.output + "\n")
		}
	}

	r := m.runner.Report()
	b.WriteString("\n" + viz.RenderReport(r.Applied, r.Failed) + "\n")
	b.WriteString(viz.Separator(min(m.width, 60)) + "\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("> ") + m.input + "█\n")
	b.WriteString(viz.KeyHint.Render("add v · set i v · get i · insert i v · remove i · resize n [step] · shrink · clear · append v... · print · esc quit"))

	return b.String()
}

// Run blocks until the user quits.
func Run(arr *dynarray.DynamicArray[int]) error {
	_, err := tea.NewProgram(NewModel(arr), tea.WithAltScreen()).Run()
	return err
}
