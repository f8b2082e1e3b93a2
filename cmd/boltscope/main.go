// Boltscope — interactive terminal browser for bbolt database files.
//
// Usage:
//
//	boltscope <database-file>
//
// Flags:
//
//	--log   Write a debug log to this file (stdout belongs to the UI)
//
// When the database file does not exist it is created and seeded with
// two sample tables, so a first run always has something to browse.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/boltscope/boltscope/internal/storage"
	"github.com/boltscope/boltscope/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "boltscope <database-file>",
		Short: "Browse the tables of a bbolt database file",
		Long: `Boltscope is an interactive browser for bbolt database files.

It lists the tables stored in the file, renders each table's raw
key/value pairs with best-guess typed interpretations, and shows
live storage statistics while you navigate.`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], logPath)
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "write a debug log to this file")
	return cmd
}

func run(dbPath, logPath string) error {
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		// The terminal is owned by the TUI; without a log file,
		// stray log output would corrupt the screen.
		log.SetOutput(io.Discard)
	}

	_, statErr := os.Stat(dbPath)
	fresh := errors.Is(statErr, os.ErrNotExist)

	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if fresh {
		if err := store.Seed(); err != nil {
			return err
		}
		log.Printf("created sample database at %s", dbPath)
	}

	// Bubble Tea enters raw mode and the alternate screen here and
	// restores both on every exit path, panics included.
	p := tea.NewProgram(tui.NewModel(store, dbPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
