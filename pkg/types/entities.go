package types

// Default display colors applied when a caller does not supply one.
const (
	DefaultCategoryColor = "#e0e0e0"
	DefaultSectionColor  = "#d0d0d0"
)

// Category is the root of the prompt tree. Names are globally unique.
type Category struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	OrderIndex int    `json:"order_index"`
}

// Section groups prompts under a category. OrderIndex is scoped to the
// owning category.
type Section struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CategoryID int64  `json:"category_id"`
	Color      string `json:"color"`
	OrderIndex int    `json:"order_index"`
}

// Prompt is a stored snippet. Content may carry rich text (HTML).
// OrderIndex is scoped to the owning section.
type Prompt struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	SectionID   int64  `json:"section_id"`
	OrderIndex  int    `json:"order_index"`
}

// SearchResult is a denormalized title-search match: the prompt row plus
// its ancestor names, so a display layer needs no further lookups.
type SearchResult struct {
	PromptID     int64  `json:"prompt_id"`
	Title        string `json:"prompt_title"`
	Description  string `json:"prompt_description"`
	Content      string `json:"prompt_content"`
	SectionName  string `json:"section_name"`
	CategoryName string `json:"category_name"`
}
