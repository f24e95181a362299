package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dynarray/internal/dynarray"
)

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	for _, r := range line {
		var msg tea.KeyMsg
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func newModel(t *testing.T) Model {
	t.Helper()
	arr, err := dynarray.New[int](5, 3)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(arr)
}

func TestSession_AppliesCommands(t *testing.T) {
	m := newModel(t)
	for _, line := range []string{"add 10", "add 20", "add 30", "set 1 50", "insert 1 40", "remove 2"} {
		m = typeLine(t, m, line)
	}

	got := m.Array().Values()
	want := []int{10, 40, 30}
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
	if r := m.Report(); r.Applied != 6 || r.Failed != 0 {
		t.Errorf("Report() = %+v", r)
	}
	if m.input != "" {
		t.Errorf("input not cleared: %q", m.input)
	}
}

func TestSession_Errors(t *testing.T) {
	m := newModel(t)
	m = typeLine(t, m, "remove 3")
	m = typeLine(t, m, "bogus")

	if len(m.history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(m.history))
	}
	for _, e := range m.history {
		if !e.failed {
			t.Errorf("entry %q should have failed", e.input)
		}
	}
	if !strings.Contains(m.history[0].output, "index out of range") {
		t.Errorf("unexpected output %q", m.history[0].output)
	}
	if r := m.Report(); r.Failed != 1 {
		t.Errorf("expected 1 rejected command, got %+v", r)
	}
}

func TestSession_GetOutput(t *testing.T) {
	m := newModel(t)
	m = typeLine(t, m, "add 9")
	m = typeLine(t, m, "get 0")

	last := m.history[len(m.history)-1]
	if last.output != "9" || last.failed {
		t.Errorf("get output = %+v", last)
	}
}

func TestSession_BackspaceAndBlank(t *testing.T) {
	m := newModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ad")})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)
	if m.input != "a" {
		t.Errorf("input = %q, want a", m.input)
	}

	m.input = "   "
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if len(m.history) != 0 {
		t.Error("blank line recorded")
	}
}

func TestSession_BackspaceMultibyte(t *testing.T) {
	m := newModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("add é€")})
	for i := 0; i < 2; i++ {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = next.(Model)
	if m.input != "add " {
		t.Errorf("input = %q, want %q", m.input, "add ")
	}
	if !utf8.ValidString(m.input) {
		t.Errorf("input %q is not valid UTF-8", m.input)
	}

	m.input = ""
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := next.(Model).input; got != "" {
		t.Errorf("backspace on empty input = %q", got)
	}
}

func TestSession_Quit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestSession_View(t *testing.T) {
	m := newModel(t)
	m = typeLine(t, m, "add 42")
	view := m.View()
	for _, want := range []string{"dynarray", "42", "len=1 cap=5 step=3", "> add 42"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
