// Package tui provides terminal user interface components for javart-ctl.
//
// This package uses the Bubble Tea framework to create interactive terminal
// interfaces, primarily for the runtime picker behind `javart-ctl pick`.
//
// # Runtime Picker
//
// The picker displays detected runtimes grouped by feature release and
// allows selection:
//
//	result, err := tui.RunPicker(runtimes)
//	switch result.Action {
//	case tui.ActionSelect:
//	    // Use result.Runtime
//	case tui.ActionQuit, tui.ActionNone:
//	    // Nothing chosen
//	}
//
// # Picker Features
//
//   - Lists runtimes under "Java N" headers, newest release first
//   - Keyboard navigation (j/k or arrows), headers auto-skipped
//   - Filtering on version and path with /
//   - Drawn on stderr so stdout only carries the chosen path
//
// The picker applies no selection policy; the user chooses.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
