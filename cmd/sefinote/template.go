package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tmpl"},
	Short:   "Manage tree templates",
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available templates",
	Args:    cobra.NoArgs,
	RunE:    runTemplateList,
}

var templateDeleteCmd = &cobra.Command{
	Use:     "delete <template-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a template (admin only)",
	Args:    cobra.ExactArgs(1),
	RunE:    runTemplateDelete,
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateDeleteCmd)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	templates, err := client.ListTemplates(context.Background())
	if err != nil {
		return err
	}

	if len(templates) == 0 {
		fmt.Println("No templates")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tNODES\tDESCRIPTION")
	for _, t := range templates {
		desc := ""
		if t.Description != nil {
			desc = truncate(*t.Description, 50)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", t.ID, truncate(t.Name, 30), len(t.TemplateNodes), desc)
	}
	return w.Flush()
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}

	if err := client.DeleteTemplate(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Template deleted")
	return nil
}
