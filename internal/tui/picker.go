// Package tui provides terminal user interface components for javart-ctl
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/javart/internal/runtime"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action  Action
	Runtime *runtime.JavaRuntime
}

// runtimeItem implements list.Item for runtime display
type runtimeItem struct {
	runtime *runtime.JavaRuntime
}

func (i runtimeItem) Title() string {
	return "java " + i.runtime.VersionString()
}

func (i runtimeItem) Description() string {
	return fmt.Sprintf("%s | %s", i.runtime.OS(), truncatePath(i.runtime.Executable(), 60))
}

func (i runtimeItem) FilterValue() string {
	return i.runtime.VersionString() + " " + i.runtime.Executable()
}

func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the runtime picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new runtime picker
func NewPicker(runtimes []*runtime.JavaRuntime) Model {
	items := buildGroupedItems(runtimes)

	l := list.New(items, newGroupedDelegate(), 80, 20)
	l.Title = fmt.Sprintf("javart - Select Java Runtime (%d found)", len(items)-headerCount(items))
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	skipHeaders(&l, 1)

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// ctrl+c quits even while filtering
		if msg.Type == tea.KeyCtrlC {
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}

		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(runtimeItem); ok {
				m.result = PickerResult{
					Action:  ActionSelect,
					Runtime: item.runtime,
				}
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit

		case "up", "k", "down", "j":
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			if isHeaderSelected(&m.list) {
				skipHeaders(&m.list, navigationDirection(msg))
			}
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Select  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive runtime picker. The interface is drawn on
// stderr so the caller can print the selection on stdout.
func RunPicker(runtimes []*runtime.JavaRuntime) (PickerResult, error) {
	if len(runtimes) == 0 {
		return PickerResult{Action: ActionNone}, nil
	}

	m := NewPicker(runtimes)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker is a non-interactive picker that just lists runtimes
func SimplePicker(runtimes []*runtime.JavaRuntime) string {
	var sb strings.Builder

	sb.WriteString("javart - Java Runtimes\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(runtimes) == 0 {
		sb.WriteString("No java runtimes found.\n")
		sb.WriteString("Search deeper with: javart-ctl scan --depth 6 <dir>\n")
		return sb.String()
	}

	for i, rt := range runtimes {
		sb.WriteString(fmt.Sprintf("%d. java %s (%s)\n", i+1, rt.VersionString(), rt.OS()))
		sb.WriteString(fmt.Sprintf("   %s\n\n", rt.Executable()))
	}

	return sb.String()
}
