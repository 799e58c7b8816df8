// Prompt commands: add, list, show, update, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	promptTitle       string
	promptDescription string
	promptContent     string
	promptSection     int64
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage prompts within a section",
}

var promptAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new prompt under a section",
	Long: `Add creates a new prompt at the end of its section's display order.

Example:
  promptdeck prompt add --title "Follow-up" --content "Hi, just checking in..." --section 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.AddPrompt(promptTitle, promptDescription, promptContent, promptSection)
		if err != nil {
			return fmt.Errorf("add prompt: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]int64{"id": id})
		}
		fmt.Printf("Created prompt %d: %s\n", id, promptTitle)
		return nil
	},
}

var promptListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a section's prompts in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ps, err := store.Prompts(promptSection)
		if err != nil {
			return fmt.Errorf("list prompts: %w", err)
		}

		if flagJSON {
			return printJSON(ps)
		}
		for _, p := range ps {
			fmt.Printf("%d\t%s\t%s\n", p.ID, p.Title, p.Description)
		}
		return nil
	},
}

var promptShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a single prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		p, err := store.GetPrompt(id)
		if err != nil {
			return fmt.Errorf("get prompt: %w", err)
		}

		if flagJSON {
			return printJSON(p)
		}
		fmt.Printf("Title:       %s\n", p.Title)
		if p.Description != "" {
			fmt.Printf("Description: %s\n", p.Description)
		}
		fmt.Println(p.Content)
		return nil
	},
}

var promptUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a prompt's title, description, and content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdatePrompt(id, promptTitle, promptDescription, promptContent); err != nil {
			return fmt.Errorf("update prompt: %w", err)
		}
		fmt.Printf("Updated prompt %d\n", id)
		return nil
	},
}

var promptDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeletePrompt(id); err != nil {
			return fmt.Errorf("delete prompt: %w", err)
		}
		fmt.Printf("Deleted prompt %d\n", id)
		return nil
	},
}

func init() {
	promptAddCmd.Flags().StringVar(&promptTitle, "title", "", "prompt title (required)")
	promptAddCmd.Flags().StringVar(&promptDescription, "description", "", "short description")
	promptAddCmd.Flags().StringVar(&promptContent, "content", "", "prompt content (required)")
	promptAddCmd.Flags().Int64Var(&promptSection, "section", 0, "owning section id (required)")
	_ = promptAddCmd.MarkFlagRequired("title")
	_ = promptAddCmd.MarkFlagRequired("content")
	_ = promptAddCmd.MarkFlagRequired("section")

	promptListCmd.Flags().Int64Var(&promptSection, "section", 0, "owning section id (required)")
	_ = promptListCmd.MarkFlagRequired("section")

	promptUpdateCmd.Flags().StringVar(&promptTitle, "title", "", "new title (required)")
	promptUpdateCmd.Flags().StringVar(&promptDescription, "description", "", "new description")
	promptUpdateCmd.Flags().StringVar(&promptContent, "content", "", "new content")
	_ = promptUpdateCmd.MarkFlagRequired("title")

	promptCmd.AddCommand(promptAddCmd)
	promptCmd.AddCommand(promptListCmd)
	promptCmd.AddCommand(promptShowCmd)
	promptCmd.AddCommand(promptUpdateCmd)
	promptCmd.AddCommand(promptDeleteCmd)
}
