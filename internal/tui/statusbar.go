package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/boltscope/boltscope/pkg/bytefmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	BOLTSCOPE  |  sample.db
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("BOLTSCOPE")
	sep := headerSepStyle.Render(" │ ")
	name := headerMetaStyle.Render(filepath.Base(m.dbPath))

	return headerBarStyle.Width(m.width).Render(brand + sep + name)
}

// renderFooter produces the bottom status line: table count, file size,
// and the five statistics fields, with keyboard hints on the right.
func renderFooter(m *Model) string {
	var left string
	switch {
	case m.err != nil:
		left = statusErrStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.stats != nil:
		left = statusStyle.Render(fmt.Sprintf(
			"%d tables │ %s │ height %d │ pages %d │ stored %s │ meta %s │ frag %s",
			len(m.tables),
			bytefmt.Format(m.fileSize),
			m.stats.TreeHeight,
			m.stats.AllocatedPages,
			bytefmt.Format(int64(m.stats.StoredBytes)),
			bytefmt.Format(int64(m.stats.MetadataBytes)),
			bytefmt.Format(int64(m.stats.FragmentedBytes)),
		))
	default:
		left = statusStyle.Render("Loading statistics...")
	}

	right := renderHints([]hint{
		{"↑↓", "navigate"},
		{"q", "quit"},
	})

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
