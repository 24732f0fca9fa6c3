package cli

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/archtower/pkg/dsl"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pick(t *testing.T, keys ...string) ViewListModel {
	t.Helper()
	ws, err := dsl.Load(factory)
	if err != nil {
		t.Fatal(err)
	}
	var m tea.Model = NewViewListModel(ws)
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m.(ViewListModel)
}

func TestViewListModel(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{"enter picks cursor", []string{"down", "enter"}, []string{"factory-containers"}},
		{"toggle several", []string{"x", "down", "down", "x", "enter"}, []string{"factory-context", "factory-deployment"}},
		{"toggle off", []string{"x", "x", "down", "enter"}, []string{"factory-containers"}},
		{"select all", []string{"a", "enter"}, []string{"factory-context", "factory-containers", "factory-deployment"}},
		{"cursor stays in range", []string{"up", "down", "down", "down", "down", "enter"}, []string{"factory-deployment"}},
		{"quit", []string{"x", "q"}, nil},
		{"escape", []string{"esc"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pick(t, tt.keys...).Selected(); !slices.Equal(got, tt.want) {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewListModelView(t *testing.T) {
	out := pick(t, "x").View()
	for _, want := range []string{"Select Views", "factory-context", "SystemContext", "[x]", "1 selected"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}
}
