package sqlite

import (
	"database/sql"
	"fmt"
)

// Base table DDL. Tables are created in their original minimal shape;
// later columns (color, order_index) are added by ensureColumn so that a
// fresh database and a legacy one converge through the same path.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);`

	createSections = `CREATE TABLE IF NOT EXISTS sections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    category_id INTEGER NOT NULL,
    FOREIGN KEY (category_id) REFERENCES categories (id) ON DELETE CASCADE
);`

	createPrompts = `CREATE TABLE IF NOT EXISTS prompts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    content TEXT NOT NULL,
    section_id INTEGER NOT NULL,
    FOREIGN KEY (section_id) REFERENCES sections (id) ON DELETE CASCADE
);`
)

// Index DDL. The unique sibling-order indexes make the three-step sentinel
// swap in move load-bearing: a direct two-statement swap would trip them.
const (
	idxSectionsCategory = `CREATE INDEX IF NOT EXISTS idx_sections_category ON sections(category_id);`
	idxPromptsSection   = `CREATE INDEX IF NOT EXISTS idx_prompts_section ON prompts(section_id);`
	idxCategoriesOrder  = `CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_order ON categories(order_index);`
	idxSectionsOrder    = `CREATE UNIQUE INDEX IF NOT EXISTS idx_sections_order ON sections(category_id, order_index);`
	idxPromptsOrder     = `CREATE UNIQUE INDEX IF NOT EXISTS idx_prompts_order ON prompts(section_id, order_index);`
)

// migration describes the ensured columns and backfill for one table.
type migration struct {
	table   string
	columns []ensuredColumn
}

type ensuredColumn struct {
	name       string
	columnType string
	defaultVal string // SQL literal; strings pre-quoted
}

var migrations = []migration{
	{
		table: "categories",
		columns: []ensuredColumn{
			{name: "color", columnType: "TEXT", defaultVal: "'#e0e0e0'"},
			{name: "order_index", columnType: "INTEGER", defaultVal: "0"},
		},
	},
	{
		table: "sections",
		columns: []ensuredColumn{
			{name: "color", columnType: "TEXT", defaultVal: "'#d0d0d0'"},
			{name: "order_index", columnType: "INTEGER", defaultVal: "0"},
		},
	},
	{
		table: "prompts",
		columns: []ensuredColumn{
			{name: "order_index", columnType: "INTEGER", defaultVal: "0"},
		},
	},
}

// migrate brings the schema to the current version. Safe to call on every
// startup: it creates missing tables, adds missing columns, backfills
// order_index from id for legacy rows, and creates indexes. Never drops
// data.
func migrate(db *sql.DB) error {
	for _, ddl := range []string{createCategories, createSections, createPrompts} {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}

	for _, m := range migrations {
		for _, col := range m.columns {
			if err := ensureColumn(db, m.table, col.name, col.columnType, col.defaultVal); err != nil {
				return err
			}
		}
		// Backfill order_index from id. Row ids are unique and monotonic
		// with insertion order, so this yields a valid ordering for rows
		// that predate the column.
		backfill := fmt.Sprintf(
			"UPDATE %s SET order_index = id WHERE order_index IS NULL OR order_index = 0", m.table)
		if _, err := db.Exec(backfill); err != nil {
			return fmt.Errorf("backfilling order_index on %s: %w", m.table, err)
		}
	}

	for _, ddl := range []string{
		idxSectionsCategory,
		idxPromptsSection,
		idxCategoriesOrder,
		idxSectionsOrder,
		idxPromptsOrder,
	} {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	return nil
}

// ensureColumn adds a column with a default if the table does not already
// have it. No-op when the column exists.
func ensureColumn(db *sql.DB, table, column, columnType, defaultVal string) error {
	exists, err := columnExists(db, table, column)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, columnType)
	if defaultVal != "" {
		stmt += " DEFAULT " + defaultVal
	}
	if _, err := db.Exec(stmt); err != nil {
		return fmt.Errorf("adding column %s.%s: %w", table, column, err)
	}
	return nil
}

// columnExists inspects PRAGMA table_info for the column.
func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("inspecting %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name       string
			columnType string
			notNull    int
			dflt       sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &columnType, &notNull, &dflt, &pk); err != nil {
			return false, fmt.Errorf("scanning table_info for %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("iterating table_info for %s: %w", table, err)
	}
	return false, nil
}
