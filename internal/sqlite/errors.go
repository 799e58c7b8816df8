package sqlite

import (
	"errors"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// translateErr converts raw driver errors into the store's error taxonomy.
// Unique-constraint violations become ErrDuplicateName, any other
// integrity failure becomes ErrConstraint, and everything else passes
// through for the caller to wrap.
func translateErr(err error) error {
	if err == nil {
		return nil
	}

	var serr *sqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		switch {
		case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return types.ErrDuplicateName
		case code&0xff == sqlite3.SQLITE_CONSTRAINT:
			// The driver sometimes reports only the primary code; the
			// message still names the violated constraint kind.
			if strings.Contains(serr.Error(), "UNIQUE constraint failed") {
				return types.ErrDuplicateName
			}
			return types.ErrConstraint
		}
		return err
	}

	// Some driver paths surface plain errors carrying the canonical
	// SQLite message instead of a coded error.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return types.ErrDuplicateName
	case strings.Contains(msg, "constraint failed"):
		return types.ErrConstraint
	}
	return err
}
