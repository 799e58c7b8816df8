// Section accessors. Sections sit under a category; their sibling order
// is scoped by category_id.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// AddSection inserts a section at the end of its category's display order.
func (s *Store) AddSection(name string, categoryID int64) (int64, error) {
	if name == "" {
		return 0, types.ErrInvalidName
	}

	db, err := s.database()
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	next, err := collSections.nextOrderIndex(tx, categoryID)
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec(
		"INSERT INTO sections (name, category_id, color, order_index) VALUES (?, ?, ?, ?)",
		name, categoryID, types.DefaultSectionColor, next,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting section %q: %w", name, translateErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading section id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing section: %w", err)
	}

	s.log.Debugw("added section", "id", id, "name", name, "category_id", categoryID)
	return id, nil
}

// Sections returns the category's sections in display order.
func (s *Store) Sections(categoryID int64) ([]types.Section, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id, name, category_id, color, order_index FROM sections WHERE category_id = ? ORDER BY order_index",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	var secs []types.Section
	for rows.Next() {
		var sec types.Section
		if err := rows.Scan(&sec.ID, &sec.Name, &sec.CategoryID, &sec.Color, &sec.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		secs = append(secs, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	return secs, nil
}

// GetSection retrieves a section by ID. Returns ErrNotFound when absent.
func (s *Store) GetSection(id int64) (*types.Section, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}

	var sec types.Section
	err = db.QueryRow(
		"SELECT id, name, category_id, color, order_index FROM sections WHERE id = ?", id,
	).Scan(&sec.ID, &sec.Name, &sec.CategoryID, &sec.Color, &sec.OrderIndex)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting section %d: %w", id, err)
	}
	return &sec, nil
}

// UpdateSection renames the section. A missing ID is a silent no-op.
func (s *Store) UpdateSection(id int64, name string) error {
	if name == "" {
		return types.ErrInvalidName
	}

	db, err := s.database()
	if err != nil {
		return err
	}

	if _, err := db.Exec(
		"UPDATE sections SET name = ? WHERE id = ?", name, id); err != nil {
		return fmt.Errorf("updating section %d: %w", id, translateErr(err))
	}
	return nil
}

// UpdateSectionColor sets only the section's color.
func (s *Store) UpdateSectionColor(id int64, color string) error {
	db, err := s.database()
	if err != nil {
		return err
	}

	if _, err := db.Exec(
		"UPDATE sections SET color = ? WHERE id = ?", color, id); err != nil {
		return fmt.Errorf("updating section %d color: %w", id, translateErr(err))
	}
	return nil
}

// DeleteSection removes the section and, via the cascade, its prompts.
// Safe to call on an ID that is already gone.
func (s *Store) DeleteSection(id int64) error {
	db, err := s.database()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM sections WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting section %d: %w", id, translateErr(err))
	}
	s.log.Debugw("deleted section", "id", id)
	return nil
}
