package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-drift/loom/pkg/paint"
	"github.com/go-drift/loom/pkg/style"
	"github.com/go-drift/loom/pkg/theme"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// entryKind distinguishes browse list entries.
type entryKind int

const (
	entryTheme entryKind = iota
	entryPreset
)

func (k entryKind) String() string {
	if k == entryPreset {
		return "preset"
	}
	return "theme"
}

// browseEntry is one row of the browse list.
type browseEntry struct {
	kind   entryKind
	name   string
	desc   string
	theme  *theme.Theme
	preset *style.Preset
}

// browseModel is the bubbletea model for the browse list. A nil Selected
// after the program exits means the user quit without choosing.
type browseModel struct {
	Entries  []browseEntry
	Cursor   int
	Offset   int
	Height   int
	Selected *browseEntry
}

// newBrowseModel creates a browse model over the given entries.
func newBrowseModel(entries []browseEntry) browseModel {
	return browseModel{
		Entries: entries,
		Height:  10,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Entries) > 0 {
				m.Selected = &m.Entries[m.Cursor]
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Themes & Presets"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, e.name, e.kind.String(), e.desc})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Kind", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 2 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.detailView())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

// detailView renders a one-line summary of the entry under the cursor.
func (m browseModel) detailView() string {
	if len(m.Entries) == 0 {
		return ""
	}
	e := m.Entries[m.Cursor]

	var b strings.Builder
	b.WriteString("  ")
	switch e.kind {
	case entryTheme:
		scheme := e.theme.ColorScheme
		for _, slot := range []struct {
			label string
			c     paint.Color
		}{
			{"primary", scheme.Primary},
			{"surface", scheme.Surface},
			{"error", scheme.Error},
		} {
			b.WriteString(swatch(slot.c))
			b.WriteString(" " + listDimStyle.Render(slot.label+" "+slot.c.Hex()) + "  ")
		}
	case entryPreset:
		s := e.preset.Style
		var parts []string
		if s.BorderWidth > 0 {
			parts = append(parts, "border "+formatFloat(s.BorderWidth))
		}
		if s.Radius > 0 {
			parts = append(parts, "radius "+formatFloat(s.Radius))
		}
		if !s.Padding.IsZero() {
			parts = append(parts, fmt.Sprintf("padding %s/%s", formatFloat(s.Padding.Left), formatFloat(s.Padding.Top)))
		}
		if len(parts) == 0 {
			parts = append(parts, "no styling")
		}
		b.WriteString(listDimStyle.Render(strings.Join(parts, " · ")))
	}
	return b.String()
}
