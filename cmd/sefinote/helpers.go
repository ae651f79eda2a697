package main

import (
	"fmt"

	"github.com/sefinote/sefinote/internal/cliclient"
	"github.com/sefinote/sefinote/internal/localstore"
)

// apiClient builds an authenticated client from the saved server URL and token.
func apiClient() (*cliclient.Client, error) {
	settings, err := localstore.LoadSettings()
	if err != nil {
		return nil, err
	}
	if settings.ServerURL == "" {
		return nil, fmt.Errorf("not logged in, run 'sefinote login <server-url>' first")
	}

	token, err := localstore.LoadToken(settings.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("loading token: %w", err)
	}
	if token == "" {
		return nil, fmt.Errorf("no saved session for %s, run 'sefinote login' again", settings.ServerURL)
	}

	return cliclient.New(settings.ServerURL, token), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
