// Move commands: swap an item with its neighbor in the display order.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

var (
	moveCategoryID int64
	moveSectionID  int64
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move an item up or down among its siblings",
}

var moveCategoryCmd = &cobra.Command{
	Use:   "category ID up|down",
	Short: "Move a category in the display order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, dir, err := parseMoveArgs(args)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		moved, err := store.MoveCategory(id, dir)
		return reportMove(moved, err, "category", id, dir)
	},
}

var moveSectionCmd = &cobra.Command{
	Use:   "section ID up|down",
	Short: "Move a section within its category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, dir, err := parseMoveArgs(args)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		moved, err := store.MoveSection(id, moveCategoryID, dir)
		return reportMove(moved, err, "section", id, dir)
	},
}

var movePromptCmd = &cobra.Command{
	Use:   "prompt ID up|down",
	Short: "Move a prompt within its section",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, dir, err := parseMoveArgs(args)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		moved, err := store.MovePrompt(id, moveSectionID, dir)
		return reportMove(moved, err, "prompt", id, dir)
	},
}

// parseMoveArgs extracts the ID and direction from positional args.
func parseMoveArgs(args []string) (int64, types.Direction, error) {
	id, err := parseID(args[0])
	if err != nil {
		return 0, "", err
	}
	dir, err := types.ParseDirection(args[1])
	if err != nil {
		return 0, "", err
	}
	return id, dir, nil
}

// reportMove prints the outcome of a move. A boundary no-op is reported,
// not treated as a failure.
func reportMove(moved bool, err error, kind string, id int64, dir types.Direction) error {
	if err != nil {
		return fmt.Errorf("move %s: %w", kind, err)
	}
	if !moved {
		fmt.Printf("Cannot move %s %d further %s\n", kind, id, dir)
		return nil
	}
	fmt.Printf("Moved %s %d %s\n", kind, id, dir)
	return nil
}

func init() {
	moveSectionCmd.Flags().Int64Var(&moveCategoryID, "category", 0, "owning category id (required)")
	_ = moveSectionCmd.MarkFlagRequired("category")

	movePromptCmd.Flags().Int64Var(&moveSectionID, "section", 0, "owning section id (required)")
	_ = movePromptCmd.MarkFlagRequired("section")

	moveCmd.AddCommand(moveCategoryCmd)
	moveCmd.AddCommand(moveSectionCmd)
	moveCmd.AddCommand(movePromptCmd)
}
