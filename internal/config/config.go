// Package config loads the per-storage config.json. Configuration is read
// once at startup and is immutable for the session's lifetime.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configFile = "config.json"

// Theme names the four color roles of the list view. Values are the eight
// basic terminal color names.
type Theme struct {
	HighlightFg string `json:"highlight_fg"`
	HighlightBg string `json:"highlight_bg"`
	NormalFg    string `json:"normal_fg"`
	NormalBg    string `json:"normal_bg"`
}

// Config holds the application configuration.
type Config struct {
	Editor     string `json:"editor"`
	PreviewCmd string `json:"preview_cmd"`
	DateFormat string `json:"date_format"`
	Theme      Theme  `json:"theme"`
	MaxNotes   int    `json:"max_notes"`
	Storage    string `json:"storage"`
}

// CLIFlags holds parsed CLI flags.
type CLIFlags struct {
	Storage string
}

// PreviewBuiltin selects the in-app markdown preview instead of an
// external pager.
const PreviewBuiltin = "builtin"

// defaultConfig builds the first-run configuration. The editor is sourced
// from $EDITOR here, at config generation time only.
func defaultConfig(storageDir string) Config {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "nano"
	}
	return Config{
		Editor:     editor,
		PreviewCmd: PreviewBuiltin,
		DateFormat: "2006-01-02_15-04-05",
		Theme: Theme{
			HighlightFg: "black",
			HighlightBg: "cyan",
			NormalFg:    "white",
			NormalBg:    "black",
		},
		MaxNotes: 100,
		Storage:  storageDir,
	}
}

// ResolveStorageDir picks the storage directory with priority:
// CLI flag > TNOTES_DIR env var > ~/.terminal_notes.
func ResolveStorageDir(flags CLIFlags) (string, error) {
	if flags.Storage != "" {
		return expandPath(flags.Storage), nil
	}
	if env := os.Getenv("TNOTES_DIR"); env != "" {
		return expandPath(env), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".terminal_notes"), nil
}

// EnsureConfigFile creates config.json with defaults if it doesn't exist.
func EnsureConfigFile(storageDir string) error {
	path := filepath.Join(storageDir, configFile)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(storageDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(defaultConfig(storageDir), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads config.json from the storage directory. Missing fields fall
// back to defaults; a missing or corrupt file is an error, since the
// session cannot safely guess the storage contract.
func Load(storageDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(storageDir, configFile))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := defaultConfig(storageDir)
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("corrupt config: %w", err)
	}

	if cfg.Storage == "" {
		cfg.Storage = storageDir
	} else {
		cfg.Storage = expandPath(cfg.Storage)
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = "2006-01-02_15-04-05"
	}
	if cfg.MaxNotes <= 0 {
		cfg.MaxNotes = 100
	}

	return &cfg, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
