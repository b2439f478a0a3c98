package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"prockill/internal/proc"
)

// Model is the Bubble Tea state of the process picker.
type Model struct {
	procs    []proc.Process
	cursor   int
	selected map[int]bool // index into procs

	done    bool
	aborted bool
}

// New constructs a picker over the matched processes.
func New(procs []proc.Process) *Model {
	return &Model{
		procs:    procs,
		selected: make(map[int]bool),
	}
}

// Pick runs the picker on the given terminal streams and returns the chosen
// 1-based positions in list order. An aborted picker returns no positions.
func Pick(procs []proc.Process, in io.Reader, out io.Writer) ([]int, error) {
	m := New(procs)
	prog := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	picked, ok := final.(*Model)
	if !ok {
		return nil, nil
	}
	return picked.Selection(), nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Confirm):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.procs)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Select):
		m.toggle(m.cursor)
	case key.Matches(keyMsg, keys.SelectAll):
		m.toggleAll()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Found %d matching process(es)", len(m.procs))))
	b.WriteByte('\n')

	for i, p := range m.procs {
		box := checkboxUnchecked
		if m.selected[i] {
			box = checkboxChecked
		}
		line := fmt.Sprintf("%d. %s (PID: %d)", i+1, valueOrDash(p.Name), p.PID)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		fmt.Fprintf(&b, "%s %s\n", box, line)
	}

	help := "↑/k up • ↓/j down • space select • a select all • enter terminate • q cancel"
	if count := len(m.selected); count > 0 {
		help += fmt.Sprintf(" • selected=%d", count)
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

// Selection returns the chosen 1-based positions in ascending order, or nil
// when the picker was aborted or never confirmed.
func (m *Model) Selection() []int {
	if m.aborted || !m.done {
		return nil
	}
	var out []int
	for i := range m.procs {
		if m.selected[i] {
			out = append(out, i+1)
		}
	}
	return out
}

func (m *Model) toggle(i int) {
	if i < 0 || i >= len(m.procs) {
		return
	}
	if m.selected[i] {
		delete(m.selected, i)
		return
	}
	m.selected[i] = true
}

func (m *Model) toggleAll() {
	if len(m.selected) == len(m.procs) {
		m.selected = make(map[int]bool)
		return
	}
	for i := range m.procs {
		m.selected[i] = true
	}
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
