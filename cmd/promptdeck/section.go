// Section commands: add, list, update, color, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sectionName     string
	sectionCategory int64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Manage sections within a category",
}

var sectionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new section under a category",
	Long: `Add creates a new section at the end of its category's display order.

Example:
  promptdeck section add --name "Email" --category 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.AddSection(sectionName, sectionCategory)
		if err != nil {
			return fmt.Errorf("add section: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]int64{"id": id})
		}
		fmt.Printf("Created section %d: %s\n", id, sectionName)
		return nil
	},
}

var sectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a category's sections in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		secs, err := store.Sections(sectionCategory)
		if err != nil {
			return fmt.Errorf("list sections: %w", err)
		}

		if flagJSON {
			return printJSON(secs)
		}
		for _, sec := range secs {
			fmt.Printf("%d\t%s\t%s\n", sec.ID, sec.Name, sec.Color)
		}
		return nil
	},
}

var sectionUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Rename a section",
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

		if err := store.UpdateSection(id, sectionName); err != nil {
			return fmt.Errorf("update section: %w", err)
		}
		fmt.Printf("Updated section %d\n", id)
		return nil
	},
}

var sectionColorCmd = &cobra.Command{
	Use:   "color ID COLOR",
	Short: "Set a section's color",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := checkColorFlag(args[1]); err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdateSectionColor(id, args[1]); err != nil {
			return fmt.Errorf("update section color: %w", err)
		}
		fmt.Printf("Updated section %d color to %s\n", id, args[1])
		return nil
	},
}

var sectionDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a section and its prompts",
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

		if err := store.DeleteSection(id); err != nil {
			return fmt.Errorf("delete section: %w", err)
		}
		fmt.Printf("Deleted section %d\n", id)
		return nil
	},
}

func init() {
	sectionAddCmd.Flags().StringVar(&sectionName, "name", "", "section name (required)")
	sectionAddCmd.Flags().Int64Var(&sectionCategory, "category", 0, "owning category id (required)")
	_ = sectionAddCmd.MarkFlagRequired("name")
	_ = sectionAddCmd.MarkFlagRequired("category")

	sectionListCmd.Flags().Int64Var(&sectionCategory, "category", 0, "owning category id (required)")
	_ = sectionListCmd.MarkFlagRequired("category")

	sectionUpdateCmd.Flags().StringVar(&sectionName, "name", "", "new section name (required)")
	_ = sectionUpdateCmd.MarkFlagRequired("name")

	sectionCmd.AddCommand(sectionAddCmd)
	sectionCmd.AddCommand(sectionListCmd)
	sectionCmd.AddCommand(sectionUpdateCmd)
	sectionCmd.AddCommand(sectionColorCmd)
	sectionCmd.AddCommand(sectionDeleteCmd)
}
