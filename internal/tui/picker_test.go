package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/javart/internal/runtime"
)

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path   string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"/usr/lib/jvm/jdk/bin", 20, "/usr/lib/jvm/jdk/bin"},
		{"/usr/lib/jvm/very/long/path/to/bin/java", 20, ".../path/to/bin/java"},
		{"", 10, ""},
		{"exactly10!", 10, "exactly10!"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := truncatePath(tt.path, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncatePath(%q, %d) = %q, want %q", tt.path, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestRuntimeItemMethods(t *testing.T) {
	item := runtimeItem{runtime: mustRuntime(t, "/usr/lib/jvm/jdk-17/bin/java", "17.0.4.1")}

	if got := item.Title(); got != "java 17.0.4.1" {
		t.Errorf("Title() = %q, want %q", got, "java 17.0.4.1")
	}

	desc := item.Description()
	if !strings.Contains(desc, "linux") {
		t.Error("Description should contain the OS tag")
	}
	if !strings.Contains(desc, "/usr/lib/jvm/jdk-17/bin/java") {
		t.Error("Description should contain the launcher path")
	}

	filter := item.FilterValue()
	if !strings.Contains(filter, "17.0.4.1") || !strings.Contains(filter, "jdk-17") {
		t.Errorf("FilterValue() = %q, should match version and path", filter)
	}
}

func TestModelKeyHandling(t *testing.T) {
	jdk21 := mustRuntime(t, "/jvm/jdk-21/bin/java", "21.0.3")
	jdk17 := mustRuntime(t, "/jvm/jdk-17/bin/java", "17.0.2")
	runtimes := []*runtime.JavaRuntime{jdk17, jdk21}

	t.Run("select first runtime with enter", func(t *testing.T) {
		m := NewPicker(runtimes)
		newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		model := newModel.(Model)

		if model.result.Action != ActionSelect {
			t.Fatalf("Action = %v, want ActionSelect", model.result.Action)
		}
		if model.result.Runtime != jdk21 {
			t.Errorf("Runtime = %v, want newest release first", model.result.Runtime)
		}
		if cmd == nil {
			t.Error("Should return tea.Quit command")
		}
	})

	t.Run("down skips header", func(t *testing.T) {
		m := NewPicker(runtimes)
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		newModel, _ = newModel.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
		model := newModel.(Model)

		if model.result.Runtime != jdk17 {
			t.Errorf("Runtime = %v, want %v", model.result.Runtime, jdk17)
		}
	})

	t.Run("quit with q", func(t *testing.T) {
		m := NewPicker(runtimes)
		newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		model := newModel.(Model)

		if model.result.Action != ActionQuit {
			t.Errorf("Action = %v, want ActionQuit", model.result.Action)
		}
		if !model.quitting {
			t.Error("Model should be quitting")
		}
		if cmd == nil {
			t.Error("Should return tea.Quit command")
		}
	})

	t.Run("quit with esc", func(t *testing.T) {
		m := NewPicker(runtimes)
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		model := newModel.(Model)

		if model.result.Action != ActionQuit {
			t.Errorf("Action = %v, want ActionQuit", model.result.Action)
		}
	})

	t.Run("ctrl+c quits", func(t *testing.T) {
		m := NewPicker(runtimes)
		newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		model := newModel.(Model)

		if model.result.Action != ActionQuit {
			t.Errorf("Action = %v, want ActionQuit", model.result.Action)
		}
		if cmd == nil {
			t.Error("Should return tea.Quit command")
		}
	})

	t.Run("ctrl+c quits while filtering", func(t *testing.T) {
		m := NewPicker(runtimes)
		newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
		newModel, _ = newModel.(Model).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		model := newModel.(Model)

		if model.result.Action != ActionQuit {
			t.Errorf("Action = %v, want ActionQuit", model.result.Action)
		}
	})

	t.Run("window size update", func(t *testing.T) {
		m := NewPicker(runtimes)
		newModel, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
		model := newModel.(Model)

		if model.width != 100 {
			t.Errorf("Width = %d, want 100", model.width)
		}
		if model.height != 50 {
			t.Errorf("Height = %d, want 50", model.height)
		}
		if cmd != nil {
			t.Error("Window size update should not return a command")
		}
	})
}

func TestModelInit(t *testing.T) {
	m := Model{}
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() should return nil")
	}
}

func TestModelView(t *testing.T) {
	runtimes := []*runtime.JavaRuntime{mustRuntime(t, "/jvm/jdk-17/bin/java", "17.0.2")}

	t.Run("normal view contains help", func(t *testing.T) {
		view := NewPicker(runtimes).View()

		if !strings.Contains(view, "[enter] Select") {
			t.Error("View should contain select help")
		}
		if !strings.Contains(view, "[q] Quit") {
			t.Error("View should contain quit help")
		}
	})

	t.Run("quitting view is empty", func(t *testing.T) {
		m := NewPicker(runtimes)
		m.quitting = true

		if view := m.View(); view != "" {
			t.Errorf("Quitting view should be empty, got %q", view)
		}
	})
}

func TestModelResult(t *testing.T) {
	rt := mustRuntime(t, "/jvm/jdk-17/bin/java", "17.0.2")
	m := Model{result: PickerResult{Action: ActionSelect, Runtime: rt}}

	result := m.Result()
	if result.Action != ActionSelect {
		t.Errorf("Action = %v, want ActionSelect", result.Action)
	}
	if result.Runtime != rt {
		t.Error("Result should carry the selected runtime")
	}
}

func TestRunPickerEmptyRuntimes(t *testing.T) {
	result, err := RunPicker(nil)
	if err != nil {
		t.Fatalf("RunPicker with no runtimes failed: %v", err)
	}
	if result.Action != ActionNone {
		t.Errorf("No runtimes should return ActionNone, got %v", result.Action)
	}
}

func TestSimplePicker(t *testing.T) {
	t.Run("empty runtimes", func(t *testing.T) {
		output := SimplePicker(nil)

		if !strings.Contains(output, "No java runtimes found") {
			t.Error("Should indicate no runtimes found")
		}
		if !strings.Contains(output, "javart-ctl scan") {
			t.Error("Should show how to search deeper")
		}
	})

	t.Run("with runtimes", func(t *testing.T) {
		output := SimplePicker([]*runtime.JavaRuntime{
			mustRuntime(t, "/jvm/jdk-17/bin/java", "17.0.2"),
			mustRuntime(t, "/jvm/jre-8/bin/java", "1.8.0_412"),
		})

		for _, want := range []string{"javart", "1. java 17.0.2", "2. java 1.8.0_412", "/jvm/jre-8/bin/java"} {
			if !strings.Contains(output, want) {
				t.Errorf("output should contain %q", want)
			}
		}
	})
}

func TestActionConstants(t *testing.T) {
	actions := []Action{ActionNone, ActionSelect, ActionQuit}
	seen := make(map[Action]bool)

	for _, a := range actions {
		if seen[a] {
			t.Errorf("Duplicate action value: %v", a)
		}
		seen[a] = true
	}
}
