// Package localstore persists CLI-side state: the configured server URL
// and the session token for it.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/zalando/go-keyring"
)

// keyringService is the service name tokens are filed under.
const keyringService = "sefinote"

// Settings holds the non-secret CLI state.
type Settings struct {
	ServerURL string `json:"server_url"`
	Email     string `json:"email,omitempty"`
}

// ConfigDir returns the config directory (~/.config/sefinote/ or platform equivalent).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Preferences", "sefinote"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "sefinote"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "sefinote"), nil
	default:
		return filepath.Join(home, ".config", "sefinote"), nil
	}
}

// settingsPath returns the path to settings.json.
func settingsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// LoadSettings reads CLI settings from disk. Returns zero settings if not found.
func LoadSettings() (*Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return &s, nil
}

// SaveSettings writes CLI settings to disk.
func SaveSettings(s *Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// SaveToken stores the session token for a server in the system keyring.
func SaveToken(serverURL, token string) error {
	if err := keyring.Set(keyringService, serverURL, token); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}
	return nil
}

// LoadToken reads the session token for a server. Returns "" when absent.
func LoadToken(serverURL string) (string, error) {
	token, err := keyring.Get(keyringService, serverURL)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading token: %w", err)
	}
	return token, nil
}

// DeleteToken removes the stored session token for a server.
func DeleteToken(serverURL string) error {
	err := keyring.Delete(keyringService, serverURL)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("deleting token: %w", err)
	}
	return nil
}
