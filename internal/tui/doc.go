// Package tui implements the Boltscope terminal user interface.
//
// Built with Charmbracelet's BubbleTea and Lipgloss libraries.
//
// Component architecture:
//
//	model.go     — root model, message routing, Init/Update
//	cursor.go    — table selection state machine (wraparound navigation)
//	theme.go     — centralized color + style definitions
//	statusbar.go — header bar and the statistics status line
//	tablelist.go — left pane: table names with cursor highlight
//	content.go   — right pane: rendered key/value pairs
//	helpers.go   — truncation and small utilities
package tui
