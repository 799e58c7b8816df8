package types

// Store is the persistence interface the display layer programs against.
// Every operation is a self-contained transaction against the backing
// database; no state is cached between calls, so each read reflects the
// latest committed state.
//
// Update and Delete operations on an absent ID are silent no-ops. Get
// operations on an absent ID return ErrNotFound. Move operations return
// (false, nil) when the item is already at the boundary for the requested
// direction, and ErrNotFound when the item is not among the siblings of
// the given parent.
type Store interface {
	// Categories.
	AddCategory(name, color string) (int64, error)
	Categories() ([]Category, error)
	GetCategory(id int64) (*Category, error)
	UpdateCategory(id int64, name, color string) error
	UpdateCategoryColor(id int64, color string) error
	DeleteCategory(id int64) error
	MoveCategory(id int64, dir Direction) (bool, error)

	// Sections.
	AddSection(name string, categoryID int64) (int64, error)
	Sections(categoryID int64) ([]Section, error)
	GetSection(id int64) (*Section, error)
	UpdateSection(id int64, name string) error
	UpdateSectionColor(id int64, color string) error
	DeleteSection(id int64) error
	MoveSection(id, categoryID int64, dir Direction) (bool, error)

	// Prompts.
	AddPrompt(title, description, content string, sectionID int64) (int64, error)
	Prompts(sectionID int64) ([]Prompt, error)
	GetPrompt(id int64) (*Prompt, error)
	UpdatePrompt(id int64, title, description, content string) error
	DeletePrompt(id int64) error
	MovePrompt(id, sectionID int64, dir Direction) (bool, error)

	// SearchPrompts finds prompts whose title contains term
	// (case-insensitive), with ancestor names inlined. An empty term
	// matches every prompt.
	SearchPrompts(term string) ([]SearchResult, error)

	// Close releases the backing database. Idempotent.
	Close() error
}
