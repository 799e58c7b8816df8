// Package sqlite provides the public entry point for the SQLite-backed
// promptdeck store, keeping implementation details internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/promptdeck/internal/sqlite"
	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// Open opens (or creates) the store described by config and migrates its
// schema. A nil logger disables logging.
//
// Example:
//
//	store, err := sqlite.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".promptdeck-db",
//	}, nil)
//	if err != nil { ... }
//	defer store.Close()
func Open(config types.Config, log *zap.SugaredLogger) (types.Store, error) {
	return sqlite.Open(config, log)
}
