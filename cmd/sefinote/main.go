package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "sefinote",
	Short: "Sefinote - Tree-of-life note taking",
	Long:  `Sefinote stores personal notes as ten-node tree diagrams and serves them over a web UI and API.`,
	Example: `  # Run a server
  sefinote serve

  # Connect to a server and browse your trees
  sefinote login https://notes.example.com
  sefinote tree list
  sefinote tree show <tree-id>`,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "notes", Title: "Note Commands:"},
		&cobra.Group{ID: "server", Title: "Server Commands:"},
		&cobra.Group{ID: "admin", Title: "Admin Commands:"},
	)

	treeCmd.GroupID = "notes"
	nodeCmd.GroupID = "notes"
	templateCmd.GroupID = "notes"

	loginCmd.GroupID = "server"
	logoutCmd.GroupID = "server"

	serveCmd.GroupID = "admin"
	configCmd.GroupID = "admin"

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
