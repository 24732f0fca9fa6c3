package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/archtower/pkg/workspace"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// ViewListModel - Interactive view selection
// =============================================================================

// viewRow is one selectable view.
type viewRow struct {
	Key           string
	Kind          string
	Title         string
	Elements      int
	Relationships int
}

// ViewListModel is the bubbletea model for picking the views to render.
type ViewListModel struct {
	Rows   []viewRow
	Cursor int
	Chosen map[int]bool
	Done   bool
	Height int
	Offset int
}

// NewViewListModel lists the views of ws in definition order.
func NewViewListModel(ws *workspace.Workspace) ViewListModel {
	m := ViewListModel{Chosen: make(map[int]bool), Height: 15}
	for _, v := range ws.Views.Views() {
		snap := v.Snapshot()
		m.Rows = append(m.Rows, viewRow{
			Key:           snap.Key,
			Kind:          snap.Kind.String(),
			Title:         snap.Title,
			Elements:      len(snap.Elements),
			Relationships: len(snap.Relationships),
		})
	}
	return m
}

// Selected returns the chosen view keys in list order, or nil when the
// picker was aborted.
func (m ViewListModel) Selected() []string {
	if !m.Done {
		return nil
	}
	var keys []string
	for i, r := range m.Rows {
		if m.Chosen[i] {
			keys = append(keys, r.Key)
		}
	}
	return keys
}

func (m ViewListModel) Init() tea.Cmd {
	return nil
}

func (m ViewListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space", "x":
			m.toggle(m.Cursor)
		case "a":
			all := len(m.Chosen) < len(m.Rows)
			for i := range m.Rows {
				m.Chosen[i] = all
				if !all {
					delete(m.Chosen, i)
				}
			}
		case "enter":
			if len(m.Rows) == 0 {
				return m, tea.Quit
			}
			if len(m.Chosen) == 0 {
				m.Chosen[m.Cursor] = true
			}
			m.Done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m ViewListModel) toggle(i int) {
	if i >= len(m.Rows) {
		return
	}
	if m.Chosen[i] {
		delete(m.Chosen, i)
	} else {
		m.Chosen[i] = true
	}
}

func (m ViewListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Views"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.Chosen[i] {
			mark = "[x]"
		}
		rows = append(rows, []string{cursor + mark, r.Key, r.Kind, r.Title,
			fmt.Sprint(r.Elements), fmt.Sprint(r.Relationships)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Key", "Kind", "Title", "Elements", "Relations").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			base := lipgloss.NewStyle()
			if col >= 4 {
				base = base.Foreground(colorDim)
			}
			switch {
			case idx == m.Cursor:
				return base.Foreground(colorCyan).Bold(true)
			case m.Chosen[idx]:
				return base.Foreground(colorGreen)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d selected", m.Cursor+1, len(m.Rows), len(m.Chosen))))

	return b.String()
}

// pickViews runs the view picker and returns the chosen keys. ok is false
// when the user quit without choosing.
func pickViews(ctx context.Context, ws *workspace.Workspace) (keys []string, ok bool, err error) {
	final, err := tea.NewProgram(NewViewListModel(ws), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, false, err
	}
	keys = final.(ViewListModel).Selected()
	return keys, len(keys) > 0, nil
}
