package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Edit tree nodes",
}

var (
	nodeUpdateTitle   string
	nodeUpdateDetails string
)

var nodeUpdateCmd = &cobra.Command{
	Use:   "update <node-id>",
	Short: "Update a node's title and details",
	Long: `Update one node of a tree.

Examples:
  sefinote node update <node-id> --title "Crown" --details "First thoughts"
  sefinote node update <node-id> --title ""        # clear the title`,
	Args: cobra.ExactArgs(1),
	RunE: runNodeUpdate,
}

func init() {
	nodeUpdateCmd.Flags().StringVar(&nodeUpdateTitle, "title", "", "New title")
	nodeUpdateCmd.Flags().StringVar(&nodeUpdateDetails, "details", "", "New details")

	nodeCmd.AddCommand(nodeUpdateCmd)
}

func runNodeUpdate(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	var details *string
	if cmd.Flags().Changed("details") {
		details = &nodeUpdateDetails
	}

	node, err := client.UpdateNode(context.Background(), args[0], nodeUpdateTitle, details)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Updated node %d of tree %s\n", node.Position, node.TreeID)
	return nil
}
