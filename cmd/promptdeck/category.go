// Category commands: add, list, update, color, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	categoryName  string
	categoryColor string
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new category",
	Long: `Add creates a new category at the end of the display order.

Example:
  promptdeck category add --name "Work"
  promptdeck category add --name "Personal" --color "#ffcc00"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkColorFlag(categoryColor); err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.AddCategory(categoryName, categoryColor)
		if err != nil {
			return fmt.Errorf("add category: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]int64{"id": id})
		}
		fmt.Printf("Created category %d: %s\n", id, categoryName)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		cats, err := store.Categories()
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}

		if flagJSON {
			return printJSON(cats)
		}
		for _, c := range cats {
			fmt.Printf("%d\t%s\t%s\n", c.ID, c.Name, c.Color)
		}
		return nil
	},
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Rename a category, optionally changing its color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := checkColorFlag(categoryColor); err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdateCategory(id, categoryName, categoryColor); err != nil {
			return fmt.Errorf("update category: %w", err)
		}
		fmt.Printf("Updated category %d\n", id)
		return nil
	},
}

var categoryColorCmd = &cobra.Command{
	Use:   "color ID COLOR",
	Short: "Set a category's color",
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

		if err := store.UpdateCategoryColor(id, args[1]); err != nil {
			return fmt.Errorf("update category color: %w", err)
		}
		fmt.Printf("Updated category %d color to %s\n", id, args[1])
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a category and everything under it",
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

		if err := store.DeleteCategory(id); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		fmt.Printf("Deleted category %d\n", id)
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryName, "name", "", "category name (required)")
	categoryAddCmd.Flags().StringVar(&categoryColor, "color", "", "display color (default #e0e0e0)")
	_ = categoryAddCmd.MarkFlagRequired("name")

	categoryUpdateCmd.Flags().StringVar(&categoryName, "name", "", "new category name (required)")
	categoryUpdateCmd.Flags().StringVar(&categoryColor, "color", "", "new display color (unchanged if omitted)")
	_ = categoryUpdateCmd.MarkFlagRequired("name")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryUpdateCmd)
	categoryCmd.AddCommand(categoryColorCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}
