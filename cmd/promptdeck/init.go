// Init command for the promptdeck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize promptdeck storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if err := ensureConfigDir(configDir); err != nil {
			return err
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			return err
		}

		// Opening the store creates the data directory and the database,
		// and runs the schema migration.
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		fmt.Println("Promptdeck initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
