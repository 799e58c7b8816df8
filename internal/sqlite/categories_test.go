// Tests for category CRUD: append ordering, name uniqueness, cascade.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

func TestAddCategory_AppendsInCallOrder(t *testing.T) {
	store := newTestStore(t)

	names := []string{"Work", "Personal", "Archive"}
	for _, name := range names {
		_, err := store.AddCategory(name, "")
		require.NoError(t, err)
	}

	cats, err := store.Categories()
	require.NoError(t, err)
	require.Len(t, cats, 3)

	for i, c := range cats {
		assert.Equal(t, names[i], c.Name)
		if i > 0 {
			assert.Greater(t, c.OrderIndex, cats[i-1].OrderIndex,
				"order_index strictly increasing in call order")
		}
	}
}

func TestAddCategory_Defaults(t *testing.T) {
	store := newTestStore(t)

	id, err := store.AddCategory("Work", "")
	require.NoError(t, err)

	cat, err := store.GetCategory(id)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultCategoryColor, cat.Color)

	id, err = store.AddCategory("Personal", "#ffcc00")
	require.NoError(t, err)
	cat, err = store.GetCategory(id)
	require.NoError(t, err)
	assert.Equal(t, "#ffcc00", cat.Color)
}

func TestAddCategory_DuplicateName(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddCategory("Work", "")
	require.NoError(t, err)

	_, err = store.AddCategory("Work", "")
	assert.ErrorIs(t, err, types.ErrDuplicateName)

	cats, err := store.Categories()
	require.NoError(t, err)
	assert.Len(t, cats, 1, "failed insert must not change the store")
}

func TestAddCategory_EmptyName(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddCategory("", "")
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestGetCategory_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetCategory(42)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateCategory(t *testing.T) {
	store := newTestStore(t)

	id, err := store.AddCategory("Work", "#ffcc00")
	require.NoError(t, err)

	t.Run("rename keeps color when color omitted", func(t *testing.T) {
		require.NoError(t, store.UpdateCategory(id, "Office", ""))

		cat, err := store.GetCategory(id)
		require.NoError(t, err)
		assert.Equal(t, "Office", cat.Name)
		assert.Equal(t, "#ffcc00", cat.Color)
	})

	t.Run("rename and recolor together", func(t *testing.T) {
		require.NoError(t, store.UpdateCategory(id, "Work", "#00ff00"))

		cat, err := store.GetCategory(id)
		require.NoError(t, err)
		assert.Equal(t, "Work", cat.Name)
		assert.Equal(t, "#00ff00", cat.Color)
	})

	t.Run("never touches order_index", func(t *testing.T) {
		before, err := store.GetCategory(id)
		require.NoError(t, err)

		require.NoError(t, store.UpdateCategory(id, "Renamed", "#123456"))

		after, err := store.GetCategory(id)
		require.NoError(t, err)
		assert.Equal(t, before.OrderIndex, after.OrderIndex)
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		assert.NoError(t, store.UpdateCategory(9999, "Ghost", ""))
	})
}

func TestUpdateCategoryColor(t *testing.T) {
	store := newTestStore(t)

	id, err := store.AddCategory("Work", "")
	require.NoError(t, err)

	require.NoError(t, store.UpdateCategoryColor(id, "#abcdef"))

	cat, err := store.GetCategory(id)
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", cat.Color)
	assert.Equal(t, "Work", cat.Name, "color update must not touch other fields")
}

func TestDeleteCategory_Cascades(t *testing.T) {
	store := newTestStore(t)

	catID, err := store.AddCategory("Work", "")
	require.NoError(t, err)
	secID, err := store.AddSection("Email", catID)
	require.NoError(t, err)
	promptID, err := store.AddPrompt("Follow-up", "", "Hi...", secID)
	require.NoError(t, err)

	require.NoError(t, store.DeleteCategory(catID))

	_, err = store.GetCategory(catID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	secs, err := store.Sections(catID)
	require.NoError(t, err)
	assert.Empty(t, secs, "sections cascade away with the category")

	_, err = store.GetPrompt(promptID)
	assert.ErrorIs(t, err, types.ErrNotFound, "prompts cascade transitively")

	// The prompt's id has already cascaded away; deleting it again is safe.
	assert.NoError(t, store.DeletePrompt(promptID))
}

func TestDeleteCategory_MissingIsNoop(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.DeleteCategory(42))
}
