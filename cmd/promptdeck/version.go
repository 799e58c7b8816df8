// Version command for the promptdeck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/promptdeck/pkg/promptdeck"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the promptdeck version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("promptdeck", promptdeck.Version)
	},
}
