package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderContent renders the right pane: the rendered key/value pairs of
// the selected table, one entry per line.
func renderContent(m *Model, width, height int) string {
	selected, hasSelection := m.cur.current()

	title := panelTitleStyle.Render("Contents")
	if hasSelection {
		title = panelTitleStyle.Render(
			fmt.Sprintf("Table: %s", m.tables[selected]))
	}

	if !hasSelection {
		return title + "\n\n" +
			emptyStateStyle.Render("Nothing selected.")
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	if len(m.entries) == 0 {
		lines = append(lines, emptyStateStyle.Render("(empty table)"))
		return strings.Join(lines, "\n")
	}

	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}

	shown := minInt(len(m.entries), contentHeight)
	for _, e := range m.entries[:shown] {
		line := renderEntry(e.Key, e.Value, width)
		lines = append(lines, line)
	}

	if len(m.entries) > shown {
		lines = append(lines, tableDimStyle.Render(
			fmt.Sprintf(" … %d more entries", len(m.entries)-shown)))
	}

	return strings.Join(lines, "\n")
}

// renderEntry formats one key/value pair as "key: value". Sentinel rows
// from unreadable tables are drawn in the error color.
func renderEntry(key, value string, width int) string {
	if key == "Error" {
		return entryErrorStyle.Render(truncate(key+": "+value, width))
	}
	sep := entrySepStyle.Render(": ")
	k := entryKeyStyle.Render(key)
	// Display cells, not bytes: multibyte text renderings must not eat
	// into the value's budget.
	v := entryValueStyle.Render(truncate(value, width-lipgloss.Width(key)-2))
	return k + sep + v
}

// renderContentPanel wraps the content view in a styled panel.
func renderContentPanel(m *Model, width, height int) string {
	content := renderContent(m, width-2, height-1)
	return panelStyle.Width(width).Height(height).Render(content)
}
