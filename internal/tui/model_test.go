package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/boltscope/boltscope/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestModel opens a seeded database in a temp dir and loads the
// table list, leaving the model in its post-startup state.
func newTestModel(t *testing.T) Model {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	s, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.Seed(); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	m := NewModel(s, path)
	return deliver(t, m, m.loadTables())
}

// deliver executes a command and feeds the resulting messages back into
// Update until the model settles. Quit is left unexecuted.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = deliver(t, m, c)
		}
		return m
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		return m
	}
	next, followUp := m.Update(msg)
	return deliver(t, next.(Model), followUp)
}

func press(t *testing.T, m Model, key tea.KeyType) Model {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg(tea.Key{Type: key}))
	return deliver(t, next.(Model), cmd)
}

// TestStartupSelectsFirstTable verifies the initial state: both sample
// tables discovered in engine order, the first one selected, and its
// snapshot loaded.
func TestStartupSelectsFirstTable(t *testing.T) {
	m := newTestModel(t)

	want := []string{"products", "users"}
	if len(m.tables) != 2 || m.tables[0] != want[0] || m.tables[1] != want[1] {
		t.Fatalf("tables = %v, want %v", m.tables, want)
	}

	idx, ok := m.cur.current()
	if !ok || idx != 0 {
		t.Fatalf("initial selection = (%d, %t), want (0, true)", idx, ok)
	}
	if len(m.entries) != 6 {
		t.Errorf("expected 6 product entries loaded, got %d", len(m.entries))
	}
}

// TestNavigationRefreshesContent verifies that moving the selection
// reloads the snapshot for the newly selected table.
func TestNavigationRefreshesContent(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyDown) // products → users
	idx, _ := m.cur.current()
	if idx != 1 {
		t.Fatalf("after down: index = %d, want 1", idx)
	}
	if len(m.entries) != 3 {
		t.Errorf("expected 3 user entries after selecting users, got %d", len(m.entries))
	}
	if m.entries[0].Key != "String: Alice" {
		t.Errorf("first user entry = %+v", m.entries[0])
	}
}

// TestNavigationWraps verifies wraparound with two tables: two downs
// return to index 0, one up from index 0 lands on index 1.
func TestNavigationWraps(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyDown)
	if idx, _ := m.cur.current(); idx != 0 {
		t.Errorf("two downs from index 0: index = %d, want 0", idx)
	}

	m = press(t, m, tea.KeyUp)
	if idx, _ := m.cur.current(); idx != 1 {
		t.Errorf("one up from index 0: index = %d, want 1", idx)
	}
	if len(m.entries) != 3 {
		t.Errorf("expected users snapshot after wrap, got %d entries", len(m.entries))
	}
}

// TestQuitKeys verifies that q and ctrl+c produce the quit command from
// any navigation state.
func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyDown)

	for _, key := range []tea.KeyMsg{
		tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}}),
		tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC}),
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("key %q: expected quit command, got nil", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q: expected QuitMsg, got %T", key.String(), cmd())
		}
	}
}

// TestStaleContentDropped verifies that a snapshot for a table that is
// no longer selected does not overwrite the current one.
func TestStaleContentDropped(t *testing.T) {
	m := newTestModel(t)

	before := len(m.entries) // products snapshot
	next, _ := m.Update(contentLoadedMsg{
		table:   "users",
		entries: []storage.Entry{{Key: "stale", Value: "stale"}},
	})
	m = next.(Model)
	if len(m.entries) != before {
		t.Errorf("stale snapshot applied: %d entries, want %d", len(m.entries), before)
	}
}

// TestViewRendersStatus verifies that, once sized and populated with a
// statistics snapshot, the view includes the status line fields.
func TestViewRendersStatus(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	m = deliver(t, m, m.refreshStats())

	if m.stats == nil {
		t.Fatal("stats snapshot not loaded")
	}
	view := m.View()
	if !strings.Contains(view, "2 tables") {
		t.Errorf("view missing table count status")
	}
	if !strings.Contains(view, "products") {
		t.Errorf("view missing table list")
	}
}
