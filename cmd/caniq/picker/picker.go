// Package picker provides the interactive feature-ID selection TUI shown
// when a search matches several features and --pick is set.
package picker

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user quits without choosing.
var ErrCancelled = errors.New("selection cancelled")

type item string

func (i item) Title() string       { return string(i) }
func (i item) Description() string { return "caniuse.com feature" }
func (i item) FilterValue() string { return string(i) }

type model struct {
	list      list.Model
	choice    string
	chooseAll bool
	cancelled bool
}

func newModel(term string, ids []string) model {
	items := make([]list.Item, len(ids))
	for i, id := range ids {
		items[i] = item(id)
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("Features matching %q", term)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return model{list: l}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		frame := lipgloss.NewStyle().Margin(1, 2)
		h, v := frame.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		// Ignore shortcuts while the filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = string(it)
			}
			return m, tea.Quit
		case "a":
			m.chooseAll = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return lipgloss.NewStyle().Margin(1, 2).Render(m.list.View()) +
		"\n  enter: select · a: all · q: quit\n"
}

// Run shows the picker and returns the chosen feature IDs: one ID on
// enter, all of them on "a". ErrCancelled on quit.
func Run(term string, ids []string) ([]string, error) {
	if len(ids) <= 1 {
		return ids, nil
	}

	final, err := tea.NewProgram(newModel(term, ids), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	m := final.(model)
	switch {
	case m.cancelled:
		return nil, ErrCancelled
	case m.chooseAll:
		return ids, nil
	case m.choice != "":
		return []string{m.choice}, nil
	default:
		return nil, ErrCancelled
	}
}
