package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tnotes/internal/config"
	"tnotes/internal/logs"
	"tnotes/internal/notes"
	"tnotes/internal/tui"
)

func main() {
	storageFlag := flag.String("storage", "", "Storage directory (default ~/.terminal_notes)")
	flag.StringVar(storageFlag, "s", "", "Storage directory (shorthand)")
	flag.Parse()

	storageDir, err := config.ResolveStorageDir(config.CLIFlags{Storage: *storageFlag})
	if err != nil {
		log.Fatalf("Failed to resolve storage directory: %v", err)
	}

	// First-run setup, then a single immutable config load.
	if err := config.EnsureConfigFile(storageDir); err != nil {
		log.Fatalf("Failed to create config file: %v", err)
	}
	cfg, err := config.Load(storageDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store := notes.NewStore(cfg.Storage, cfg.DateFormat, cfg.MaxNotes)
	if err := store.Initialize(); err != nil {
		log.Fatalf("Failed to initialize note storage: %v", err)
	}

	if err := logs.Initialize(cfg.Storage); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	// An unreadable index is fatal before the UI loop ever starts.
	records, err := store.ListNotes()
	if err != nil {
		log.Fatalf("Failed to read note index: %v", err)
	}

	logs.Logger.Printf("session start: %d notes in %s", len(records), cfg.Storage)

	app := tui.NewAppModel(cfg, store, records)
	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
	if app, ok := final.(tui.AppModel); ok && app.FatalErr() != nil {
		fmt.Fprintln(os.Stderr, "Session ended:", app.FatalErr())
		os.Exit(1)
	}
}
