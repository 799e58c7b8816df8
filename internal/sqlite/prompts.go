// Prompt accessors. Prompts are the leaves of the tree; their sibling
// order is scoped by section_id. Description is nullable in the schema,
// so reads go through sql.NullString.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// AddPrompt inserts a prompt at the end of its section's display order.
func (s *Store) AddPrompt(title, description, content string, sectionID int64) (int64, error) {
	if title == "" {
		return 0, types.ErrInvalidTitle
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

	next, err := collPrompts.nextOrderIndex(tx, sectionID)
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec(
		"INSERT INTO prompts (title, description, content, section_id, order_index) VALUES (?, ?, ?, ?, ?)",
		title, description, content, sectionID, next,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting prompt %q: %w", title, translateErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading prompt id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing prompt: %w", err)
	}

	s.log.Debugw("added prompt", "id", id, "title", title, "section_id", sectionID)
	return id, nil
}

// Prompts returns the section's prompts in display order.
func (s *Store) Prompts(sectionID int64) ([]types.Prompt, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id, title, description, content, section_id, order_index FROM prompts WHERE section_id = ? ORDER BY order_index",
		sectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying prompts: %w", err)
	}
	defer rows.Close()

	var ps []types.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, err
		}
		ps = append(ps, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prompts: %w", err)
	}
	return ps, nil
}

// GetPrompt retrieves a prompt by ID. Returns ErrNotFound when absent.
func (s *Store) GetPrompt(id int64) (*types.Prompt, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}

	var (
		p    types.Prompt
		desc sql.NullString
	)
	err = db.QueryRow(
		"SELECT id, title, description, content, section_id, order_index FROM prompts WHERE id = ?", id,
	).Scan(&p.ID, &p.Title, &desc, &p.Content, &p.SectionID, &p.OrderIndex)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting prompt %d: %w", id, err)
	}
	p.Description = desc.String
	return &p, nil
}

// UpdatePrompt sets the prompt's title, description, and content. Never
// touches order_index. A missing ID is a silent no-op.
func (s *Store) UpdatePrompt(id int64, title, description, content string) error {
	if title == "" {
		return types.ErrInvalidTitle
	}

	db, err := s.database()
	if err != nil {
		return err
	}

	if _, err := db.Exec(
		"UPDATE prompts SET title = ?, description = ?, content = ? WHERE id = ?",
		title, description, content, id); err != nil {
		return fmt.Errorf("updating prompt %d: %w", id, translateErr(err))
	}
	return nil
}

// DeletePrompt removes the prompt. Safe to call on an ID that is already
// gone, including one removed by a cascading parent delete.
func (s *Store) DeletePrompt(id int64) error {
	db, err := s.database()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM prompts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting prompt %d: %w", id, translateErr(err))
	}
	s.log.Debugw("deleted prompt", "id", id)
	return nil
}

// scanPrompt converts the current row of a prompt query into a Prompt.
func scanPrompt(rows *sql.Rows) (*types.Prompt, error) {
	var (
		p    types.Prompt
		desc sql.NullString
	)
	if err := rows.Scan(&p.ID, &p.Title, &desc, &p.Content, &p.SectionID, &p.OrderIndex); err != nil {
		return nil, fmt.Errorf("scanning prompt: %w", err)
	}
	p.Description = desc.String
	return &p, nil
}
