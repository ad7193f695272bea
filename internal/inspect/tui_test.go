package inspect

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"drone-dataset/internal/annotation"
)

func testStats() []annotation.FrameStat {
	return []annotation.FrameStat{
		{File: "V_DRONE_001.txt", Frames: 300, Empty: 12},
		{File: "V_DRONE_002.txt", Frames: 250, Empty: 0},
	}
}

func TestModelRendersStats(t *testing.T) {
	m := newModel("annotations", testStats())
	mi, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	m = mi.(model)
	view := m.View()
	for _, want := range []string{"annotations", "V_DRONE_001.txt", "550 frames", "12 empty"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if got := m.table.Rows()[0][3]; got != "4.0" {
		t.Fatalf("empty percentage = %s, want 4.0", got)
	}
}

func TestToggleEmptyFilter(t *testing.T) {
	m := newModel("annotations", testStats())
	if len(m.table.Rows()) != 2 {
		t.Fatalf("expected 2 rows")
	}
	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = mi.(model)
	if len(m.table.Rows()) != 1 || m.table.Rows()[0][0] != "V_DRONE_001.txt" {
		t.Fatalf("filter should keep only files with empty frames: %v", m.table.Rows())
	}
	mi, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	m = mi.(model)
	if len(m.table.Rows()) != 2 {
		t.Fatalf("second toggle should show all files")
	}
}

func TestQuit(t *testing.T) {
	m := newModel("annotations", nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestHelpWraps(t *testing.T) {
	m := newModel("annotations", nil)
	mi, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 20})
	m = mi.(model)
	if !strings.Contains(m.renderHelp(), "\n") {
		t.Fatalf("help should wrap at narrow widths")
	}
}
