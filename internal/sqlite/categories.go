// Category accessors. Categories are the root of the tree; their sibling
// order is global and their names are unique across the store.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// AddCategory inserts a category at the end of the display order.
// An empty color falls back to the default. Returns ErrDuplicateName when
// the name is already taken; the store is unchanged in that case.
func (s *Store) AddCategory(name, color string) (int64, error) {
	if name == "" {
		return 0, types.ErrInvalidName
	}
	if color == "" {
		color = types.DefaultCategoryColor
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

	next, err := collCategories.nextOrderIndex(tx, 0)
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec(
		"INSERT INTO categories (name, color, order_index) VALUES (?, ?, ?)",
		name, color, next,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting category %q: %w", name, translateErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading category id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing category: %w", err)
	}

	s.log.Debugw("added category", "id", id, "name", name, "order_index", next)
	return id, nil
}

// Categories returns all categories in display order.
func (s *Store) Categories() ([]types.Category, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id, name, color, order_index FROM categories ORDER BY order_index",
	)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var cats []types.Category
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return cats, nil
}

// GetCategory retrieves a category by ID. Returns ErrNotFound when absent.
func (s *Store) GetCategory(id int64) (*types.Category, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}

	var c types.Category
	err = db.QueryRow(
		"SELECT id, name, color, order_index FROM categories WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.Color, &c.OrderIndex)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting category %d: %w", id, err)
	}
	return &c, nil
}

// UpdateCategory sets the category's name, and its color when one is
// supplied. Never touches order_index. A missing ID is a silent no-op.
func (s *Store) UpdateCategory(id int64, name, color string) error {
	if name == "" {
		return types.ErrInvalidName
	}

	db, err := s.database()
	if err != nil {
		return err
	}

	if color != "" {
		_, err = db.Exec(
			"UPDATE categories SET name = ?, color = ? WHERE id = ?", name, color, id)
	} else {
		_, err = db.Exec(
			"UPDATE categories SET name = ? WHERE id = ?", name, id)
	}
	if err != nil {
		return fmt.Errorf("updating category %d: %w", id, translateErr(err))
	}
	return nil
}

// UpdateCategoryColor sets only the category's color, so display code can
// restyle without resupplying the name.
func (s *Store) UpdateCategoryColor(id int64, color string) error {
	db, err := s.database()
	if err != nil {
		return err
	}

	if _, err := db.Exec(
		"UPDATE categories SET color = ? WHERE id = ?", color, id); err != nil {
		return fmt.Errorf("updating category %d color: %w", id, translateErr(err))
	}
	return nil
}

// DeleteCategory removes the category; sections and prompts underneath it
// go with it via the cascade. Safe to call on an ID that is already gone.
func (s *Store) DeleteCategory(id int64) error {
	db, err := s.database()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM categories WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting category %d: %w", id, translateErr(err))
	}
	s.log.Debugw("deleted category", "id", id)
	return nil
}
