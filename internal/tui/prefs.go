package tui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const prefsFileName = "prefs.json"

// Prefs are the terminal client settings that survive restarts: which
// server to talk to and which storage mode to pin requests to.
type Prefs struct {
	ServerURL string `json:"serverUrl"`
	Mode      string `json:"mode"`
}

// DefaultPrefs returns the settings used when no prefs file exists.
func DefaultPrefs() Prefs {
	return Prefs{ServerURL: "http://localhost:8080", Mode: ""}
}

func prefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "todoswitch", prefsFileName), nil
}

// LoadPrefs reads the prefs file, returning defaults when it is absent.
func LoadPrefs() (Prefs, error) {
	p, err := prefsPath()
	if err != nil {
		return DefaultPrefs(), err
	}
	return loadPrefsFrom(p)
}

func loadPrefsFrom(path string) (Prefs, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPrefs(), nil
		}
		return DefaultPrefs(), fmt.Errorf("read prefs: %w", err)
	}
	prefs := DefaultPrefs()
	if err := json.Unmarshal(b, &prefs); err != nil {
		return DefaultPrefs(), fmt.Errorf("parse prefs: %w", err)
	}
	return prefs, nil
}

// SavePrefs writes the prefs file, creating the directory if needed.
func SavePrefs(prefs Prefs) error {
	p, err := prefsPath()
	if err != nil {
		return err
	}
	return savePrefsTo(p, prefs)
}

func savePrefsTo(path string, prefs Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	b, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
