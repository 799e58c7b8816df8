package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// SearchPrompts finds prompts whose title contains term, joined with their
// section and category names. SQLite LIKE is case-insensitive for ASCII,
// which is the intended matching here. An empty term matches every prompt.
//
// Results are ordered by category name, section name, then title: search
// is for findability, so alphabetical order wins over the manual
// order_index used for hierarchy browsing.
func (s *Store) SearchPrompts(term string) ([]types.SearchResult, error) {
	db, err := s.database()
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.Select(
		"p.id", "p.title", "p.description", "p.content", "s.name", "c.name",
	).
		From("prompts p").
		Join("sections s ON p.section_id = s.id").
		Join("categories c ON s.category_id = c.id").
		Where(squirrel.Like{"p.title": "%" + term + "%"}).
		OrderBy("c.name", "s.name", "p.title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building search query: %w", err)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching prompts: %w", err)
	}
	defer rows.Close()

	var results []types.SearchResult
	for rows.Next() {
		var (
			r    types.SearchResult
			desc sql.NullString
		)
		if err := rows.Scan(&r.PromptID, &r.Title, &desc, &r.Content, &r.SectionName, &r.CategoryName); err != nil {
			return nil, fmt.Errorf("scanning search result: %w", err)
		}
		r.Description = desc.String
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search results: %w", err)
	}
	return results, nil
}
