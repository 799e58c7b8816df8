package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// orderIndexSentinel is a temporary order_index written during a swap.
// It sits far above any realistic sibling count, so parking the moved row
// there never collides with a real value while the unique sibling-order
// index is in force.
const orderIndexSentinel = 999999999

// collection describes a table of siblings ordered by order_index,
// optionally scoped by a parent key column. One instance exists per
// entity kind; it replaces run-time table-name strings with a fixed set
// of descriptors.
type collection struct {
	table     string
	parentCol string // empty for the unscoped root table
}

var (
	collCategories = collection{table: "categories"}
	collSections   = collection{table: "sections", parentCol: "category_id"}
	collPrompts    = collection{table: "prompts", parentCol: "section_id"}
)

// scoped applies the parent filter to a select builder when the
// collection has one.
func (c collection) scoped(b squirrel.SelectBuilder, parentID int64) squirrel.SelectBuilder {
	if c.parentCol == "" {
		return b
	}
	return b.Where(squirrel.Eq{c.parentCol: parentID})
}

// nextOrderIndex returns max(order_index)+1 among the siblings under
// parentID, or 1 when there are none. New rows always append to the end.
func (c collection) nextOrderIndex(tx *sql.Tx, parentID int64) (int, error) {
	query, args, err := c.scoped(
		squirrel.Select("COALESCE(MAX(order_index), 0)").From(c.table), parentID,
	).ToSql()
	if err != nil {
		return 0, fmt.Errorf("building max order query for %s: %w", c.table, err)
	}

	var max int
	if err := tx.QueryRow(query, args...).Scan(&max); err != nil {
		return 0, fmt.Errorf("querying max order_index on %s: %w", c.table, err)
	}
	return max + 1, nil
}

// sibling is the slice of a row the reorder engine needs.
type sibling struct {
	id         int64
	orderIndex int
}

// siblings returns id and order_index for every row under parentID,
// ordered by order_index ascending.
func (c collection) siblings(tx *sql.Tx, parentID int64) ([]sibling, error) {
	query, args, err := c.scoped(
		squirrel.Select("id", "order_index").From(c.table).OrderBy("order_index"), parentID,
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building siblings query for %s: %w", c.table, err)
	}

	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying siblings on %s: %w", c.table, err)
	}
	defer rows.Close()

	var sibs []sibling
	for rows.Next() {
		var s sibling
		if err := rows.Scan(&s.id, &s.orderIndex); err != nil {
			return nil, fmt.Errorf("scanning sibling on %s: %w", c.table, err)
		}
		sibs = append(sibs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating siblings on %s: %w", c.table, err)
	}
	return sibs, nil
}

// setOrderIndex updates a single row's order_index inside the transaction.
func (c collection) setOrderIndex(tx *sql.Tx, id int64, orderIndex int) error {
	query, args, err := squirrel.Update(c.table).
		Set("order_index", orderIndex).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building order update for %s: %w", c.table, err)
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("updating order_index on %s: %w", c.table, translateErr(err))
	}
	return nil
}

// move swaps the item's order_index with its neighbor in the given
// direction. Returns (false, nil) when the item is already first (up) or
// last (down); that is a boundary no-op, not an error. Returns
// ErrNotFound when the item is not among the siblings under parentID.
//
// The swap runs as three updates in one transaction: target parks on the
// sentinel, neighbor takes the target's old index, target takes the
// neighbor's. Either all three commit or the transaction rolls back, so a
// crash mid-swap never leaves a lost or duplicated index.
func (s *Store) move(coll collection, id, parentID int64, dir types.Direction) (bool, error) {
	if !dir.Valid() {
		return false, types.ErrInvalidDirection
	}

	db, err := s.database()
	if err != nil {
		return false, err
	}

	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	sibs, err := coll.siblings(tx, parentID)
	if err != nil {
		return false, err
	}

	pos := -1
	for i, sib := range sibs {
		if sib.id == id {
			pos = i
			break
		}
	}
	if pos == -1 {
		return false, types.ErrNotFound
	}

	var swapPos int
	switch dir {
	case types.MoveUp:
		if pos == 0 {
			return false, nil
		}
		swapPos = pos - 1
	case types.MoveDown:
		if pos == len(sibs)-1 {
			return false, nil
		}
		swapPos = pos + 1
	}

	target, neighbor := sibs[pos], sibs[swapPos]

	if err := coll.setOrderIndex(tx, target.id, orderIndexSentinel); err != nil {
		return false, err
	}
	if err := coll.setOrderIndex(tx, neighbor.id, target.orderIndex); err != nil {
		return false, err
	}
	if err := coll.setOrderIndex(tx, target.id, neighbor.orderIndex); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing move: %w", err)
	}

	s.log.Debugw("moved item",
		"table", coll.table, "id", id, "direction", dir,
		"from", target.orderIndex, "to", neighbor.orderIndex)
	return true, nil
}

// MoveCategory moves a category one position among all categories.
func (s *Store) MoveCategory(id int64, dir types.Direction) (bool, error) {
	return s.move(collCategories, id, 0, dir)
}

// MoveSection moves a section one position among the sections of its
// category.
func (s *Store) MoveSection(id, categoryID int64, dir types.Direction) (bool, error) {
	return s.move(collSections, id, categoryID, dir)
}

// MovePrompt moves a prompt one position among the prompts of its section.
func (s *Store) MovePrompt(id, sectionID int64, dir types.Direction) (bool, error) {
	return s.move(collPrompts, id, sectionID, dir)
}
