package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Manage your trees",
}

var treeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your trees",
	Args:    cobra.NoArgs,
	RunE:    runTreeList,
}

var treeShowCmd = &cobra.Command{
	Use:   "show <tree-id>",
	Short: "Show a tree with its ten nodes",
	Args:  cobra.ExactArgs(1),
	RunE:  runTreeShow,
}

var treeCreateTemplate string

var treeCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a tree with ten blank nodes",
	Long: `Create a tree. Nodes start blank; pass --template to associate a
template whose node titles are shown as placeholders.

Examples:
  sefinote tree create "Project Alpha"
  sefinote tree create "Project Alpha" --template <template-id>`,
	Args: cobra.ExactArgs(1),
	RunE: runTreeCreate,
}

var treeDeleteCmd = &cobra.Command{
	Use:     "delete <tree-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a tree and its nodes",
	Args:    cobra.ExactArgs(1),
	RunE:    runTreeDelete,
}

func init() {
	treeCreateCmd.Flags().StringVarP(&treeCreateTemplate, "template", "t", "", "Template ID to associate")

	treeCmd.AddCommand(treeListCmd)
	treeCmd.AddCommand(treeShowCmd)
	treeCmd.AddCommand(treeCreateCmd)
	treeCmd.AddCommand(treeDeleteCmd)
}

func runTreeList(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	trees, err := client.ListTrees(context.Background())
	if err != nil {
		return err
	}

	if len(trees) == 0 {
		fmt.Println("No trees yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED")
	for _, t := range trees {
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.ID, truncate(t.Title, 40), t.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runTreeShow(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	tree, err := client.GetTree(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n\n", tree.Title, tree.ID)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tID\tTITLE\tDETAILS")
	for _, n := range tree.Nodes {
		details := ""
		if n.Details != nil {
			details = truncate(*n.Details, 50)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", n.Position, n.ID, truncate(n.Title, 30), details)
	}
	return w.Flush()
}

func runTreeCreate(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	tree, err := client.CreateTree(context.Background(), args[0], treeCreateTemplate)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created tree %s (%s)\n", tree.Title, tree.ID)
	return nil
}

func runTreeDelete(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	if err := client.DeleteTree(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Tree deleted")
	return nil
}
