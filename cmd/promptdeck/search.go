// Search command: case-insensitive title substring search across the
// whole tree.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search TERM",
	Short: "Search prompts by title substring",
	Long: `Search finds prompts whose title contains TERM (case-insensitive)
and prints each match with its category and section.

Example:
  promptdeck search "follow"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		results, err := store.SearchPrompts(args[0])
		if err != nil {
			return fmt.Errorf("search prompts: %w", err)
		}

		if flagJSON {
			return printJSON(results)
		}
		for _, r := range results {
			fmt.Printf("%d\t%s > %s > %s\n", r.PromptID, r.CategoryName, r.SectionName, r.Title)
		}
		return nil
	},
}
