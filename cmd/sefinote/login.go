package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sefinote/sefinote/internal/cliclient"
	"github.com/sefinote/sefinote/internal/localstore"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login <server-url>",
	Short: "Connect to a Sefinote server",
	Long: `Sets the server URL and authenticates with a Sefinote server.

Examples:
  sefinote login https://notes.example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogin(cmd *cobra.Command, args []string) error {
	serverURL := strings.TrimRight(args[0], "/")

	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		return fmt.Errorf("server URL must start with http:// or https://")
	}

	fmt.Print("Email: ")
	var email string
	if _, err := fmt.Scanln(&email); err != nil {
		return fmt.Errorf("reading email: %w", err)
	}

	fmt.Print("Password: ")
	passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	client := cliclient.NewWithoutAuth(serverURL)
	resp, err := client.Login(context.Background(), email, string(passBytes))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := localstore.SaveSettings(&localstore.Settings{ServerURL: serverURL, Email: email}); err != nil {
		return err
	}
	if err := localstore.SaveToken(serverURL, resp.Token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Logged in to %s as %s\n", serverURL, email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	settings, err := localstore.LoadSettings()
	if err != nil {
		return err
	}
	if settings.ServerURL == "" {
		fmt.Fprintln(os.Stderr, "Not logged in")
		return nil
	}

	if err := localstore.DeleteToken(settings.ServerURL); err != nil {
		return fmt.Errorf("removing token: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Logged out of %s\n", settings.ServerURL)
	return nil
}
