// Shared helpers for promptdeck CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/promptdeck/internal/logging"
	"github.com/mesh-intelligence/promptdeck/pkg/sqlite"
	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// openStore resolves the data directory and opens the store. The caller
// must defer store.Close().
func openStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	log, err := logging.New(flagVerbose)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	store, err := sqlite.Open(types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// parseID converts a positional argument into an entity ID.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// checkColorFlag validates a user-supplied color value. The store treats
// colors as opaque strings, so the shape check lives here at the display
// boundary.
func checkColorFlag(color string) error {
	if color != "" && !types.ValidHexColor(color) {
		return fmt.Errorf("invalid color %q: expected #rgb or #rrggbb", color)
	}
	return nil
}
