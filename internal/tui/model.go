package tui

import (
	"time"

	"github.com/boltscope/boltscope/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statsInterval is how often statistics are re-read while idle, so
// writes from other processes show up without a keypress.
const statsInterval = time.Second

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for Boltscope. It owns the open
// store for the session; rendering is delegated to component functions
// in separate files.
type Model struct {
	store  storage.Store
	dbPath string

	// Data
	tables   []string
	entries  []storage.Entry
	stats    *storage.Stats
	fileSize int64

	// UI state
	cur    cursor
	width  int
	height int

	// Status
	err error
}

// NewModel creates a new TUI model backed by the given store. dbPath is
// shown in the header; it is display-only.
func NewModel(store storage.Store, dbPath string) Model {
	return Model{
		store:  store,
		dbPath: dbPath,
	}
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type tablesLoadedMsg []string

// contentLoadedMsg carries the snapshot together with the table it was
// read from, so a reload that raced a later navigation can be dropped.
type contentLoadedMsg struct {
	table   string
	entries []storage.Entry
}

type statsMsg struct {
	stats    *storage.Stats
	fileSize int64
}

type tickMsg time.Time

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Commands
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTables(), m.refreshStats(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(statsInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadTables discovers the table names once at startup. The order the
// engine yields is kept for the whole session.
func (m Model) loadTables() tea.Cmd {
	return func() tea.Msg {
		names, err := m.store.TableNames()
		if err != nil {
			return errMsg{err}
		}
		return tablesLoadedMsg(names)
	}
}

// loadContent reads the currently selected table. Table-level failures
// surface as a sentinel row inside the snapshot; only transaction
// failure becomes an error message.
func (m Model) loadContent() tea.Cmd {
	idx, ok := m.cur.current()
	if !ok {
		return nil
	}
	name := m.tables[idx]
	return func() tea.Msg {
		entries, err := m.store.ReadTable(name)
		if err != nil {
			return errMsg{err}
		}
		return contentLoadedMsg{table: name, entries: entries}
	}
}

// refreshStats re-reads the statistics snapshot and file size. The store
// may be written by another process, so every refresh hits the live file.
func (m Model) refreshStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.store.Stats()
		if err != nil {
			return errMsg{err}
		}
		size, err := m.store.FileSize()
		if err != nil {
			return errMsg{err}
		}
		return statsMsg{stats: stats, fileSize: size}
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tablesLoadedMsg:
		m.tables = []string(msg)
		m.cur.advance(len(m.tables)) // initial selection: Some(0) when non-empty
		return m, m.loadContent()

	case contentLoadedMsg:
		if idx, ok := m.cur.current(); ok && m.tables[idx] == msg.table {
			m.entries = msg.entries
		}
		return m, nil

	case statsMsg:
		m.stats = msg.stats
		m.fileSize = msg.fileSize
		m.err = nil
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.refreshStats(), tick())

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input. Selection changes force an immediate
// content reload so the snapshot never lags the cursor.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "down", "j":
		m.cur.advance(len(m.tables))
		return m, tea.Batch(m.loadContent(), m.refreshStats())

	case "up", "k":
		m.cur.retreat(len(m.tables))
		return m, tea.Batch(m.loadContent(), m.refreshStats())
	}

	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	bodyHeight := m.height - 2 // header + footer
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	// 30/70 horizontal split: table list on the left, contents right.
	leftWidth := m.width * 30 / 100
	if leftWidth < 16 {
		leftWidth = minInt(16, m.width)
	}
	rightWidth := m.width - leftWidth

	list := renderTableListPanel(&m, leftWidth, bodyHeight)
	content := renderContentPanel(&m, rightWidth, bodyHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
