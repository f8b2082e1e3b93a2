package tui

import (
	"fmt"
	"strings"
)

// renderTableList renders the left pane: every table name with the
// current selection highlighted.
func renderTableList(m *Model, width, height int) string {
	title := panelTitleStyle.Render("Tables")
	title += tableDimStyle.Render(fmt.Sprintf("  %d", len(m.tables)))

	if len(m.tables) == 0 {
		return title + "\n\n" +
			emptyStateStyle.Render("No tables in this\ndatabase.")
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	selected, hasSelection := m.cur.current()

	// Scroll so the selection stays visible.
	contentHeight := height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	start := 0
	if hasSelection && selected >= contentHeight {
		start = selected - contentHeight + 1
	}
	end := minInt(start+contentHeight, len(m.tables))

	for i := start; i < end; i++ {
		name := truncate(m.tables[i], width-4)
		if hasSelection && i == selected {
			lines = append(lines, tableSelectedStyle.Width(width-2).Render(name))
		} else {
			lines = append(lines, tableItemStyle.Width(width-2).Render(name))
		}
	}

	return strings.Join(lines, "\n")
}

// renderTableListPanel wraps the table list in a styled panel.
func renderTableListPanel(m *Model, width, height int) string {
	content := renderTableList(m, width-2, height-1)
	return panelStyle.Width(width).Height(height).Render(content)
}
