// Tests for the reorder engine: boundary no-ops, swap correctness,
// round-trip stability.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/promptdeck/pkg/types"
)

// sectionNames returns section names in display order.
func sectionNames(t *testing.T, store *Store, categoryID int64) []string {
	t.Helper()

	secs, err := store.Sections(categoryID)
	require.NoError(t, err)
	names := make([]string, len(secs))
	for i, s := range secs {
		names[i] = s.Name
	}
	return names
}

// newSectionFixture creates a category with sections S1..Sn and returns
// the category id and the section ids in insertion order.
func newSectionFixture(t *testing.T, store *Store, names ...string) (int64, []int64) {
	t.Helper()

	catID, err := store.AddCategory("A", "")
	require.NoError(t, err)

	ids := make([]int64, len(names))
	for i, name := range names {
		id, err := store.AddSection(name, catID)
		require.NoError(t, err)
		ids[i] = id
	}
	return catID, ids
}

func TestMoveSection_Up(t *testing.T) {
	store := newTestStore(t)
	catID, ids := newSectionFixture(t, store, "S1", "S2", "S3")

	moved, err := store.MoveSection(ids[1], catID, types.MoveUp)
	require.NoError(t, err)
	assert.True(t, moved)

	assert.Equal(t, []string{"S2", "S1", "S3"}, sectionNames(t, store, catID))

	// Exactly the two rows swapped index values; S3 kept its own.
	secs, err := store.Sections(catID)
	require.NoError(t, err)
	assert.Equal(t, 1, secs[0].OrderIndex)
	assert.Equal(t, 2, secs[1].OrderIndex)
	assert.Equal(t, 3, secs[2].OrderIndex)
}

func TestMoveSection_Down(t *testing.T) {
	store := newTestStore(t)
	catID, ids := newSectionFixture(t, store, "S1", "S2", "S3")

	moved, err := store.MoveSection(ids[1], catID, types.MoveDown)
	require.NoError(t, err)
	assert.True(t, moved)

	assert.Equal(t, []string{"S1", "S3", "S2"}, sectionNames(t, store, catID))
}

func TestMove_BoundaryNoop(t *testing.T) {
	store := newTestStore(t)
	catID, ids := newSectionFixture(t, store, "S1", "S2", "S3")

	t.Run("first up", func(t *testing.T) {
		moved, err := store.MoveSection(ids[0], catID, types.MoveUp)
		require.NoError(t, err)
		assert.False(t, moved)
		assert.Equal(t, []string{"S1", "S2", "S3"}, sectionNames(t, store, catID))
	})

	t.Run("last down", func(t *testing.T) {
		moved, err := store.MoveSection(ids[2], catID, types.MoveDown)
		require.NoError(t, err)
		assert.False(t, moved)
		assert.Equal(t, []string{"S1", "S2", "S3"}, sectionNames(t, store, catID))
	})
}

func TestMove_UpThenDownRestoresOrder(t *testing.T) {
	store := newTestStore(t)
	catID, ids := newSectionFixture(t, store, "S1", "S2", "S3", "S4")

	before := sectionNames(t, store, catID)

	moved, err := store.MoveSection(ids[2], catID, types.MoveUp)
	require.NoError(t, err)
	require.True(t, moved)

	moved, err = store.MoveSection(ids[2], catID, types.MoveDown)
	require.NoError(t, err)
	require.True(t, moved)

	assert.Equal(t, before, sectionNames(t, store, catID))
}

func TestMove_NotFound(t *testing.T) {
	store := newTestStore(t)
	catID, _ := newSectionFixture(t, store, "S1", "S2")

	_, err := store.MoveSection(9999, catID, types.MoveUp)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// An id that exists under a different parent is not a sibling here.
	otherCat, err := store.AddCategory("B", "")
	require.NoError(t, err)
	strayID, err := store.AddSection("X", otherCat)
	require.NoError(t, err)

	_, err = store.MoveSection(strayID, catID, types.MoveUp)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestMove_InvalidDirection(t *testing.T) {
	store := newTestStore(t)
	catID, ids := newSectionFixture(t, store, "S1", "S2")

	_, err := store.MoveSection(ids[0], catID, types.Direction("sideways"))
	assert.ErrorIs(t, err, types.ErrInvalidDirection)
}

func TestMoveCategory(t *testing.T) {
	store := newTestStore(t)

	var ids []int64
	for _, name := range []string{"C1", "C2", "C3"} {
		id, err := store.AddCategory(name, "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	moved, err := store.MoveCategory(ids[2], types.MoveUp)
	require.NoError(t, err)
	assert.True(t, moved)

	cats, err := store.Categories()
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "C1", cats[0].Name)
	assert.Equal(t, "C3", cats[1].Name)
	assert.Equal(t, "C2", cats[2].Name)
}

func TestMovePrompt(t *testing.T) {
	store := newTestStore(t)
	secID := newTestSection(t, store)

	var ids []int64
	for _, title := range []string{"P1", "P2"} {
		id, err := store.AddPrompt(title, "", "body", secID)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	moved, err := store.MovePrompt(ids[1], secID, types.MoveUp)
	require.NoError(t, err)
	assert.True(t, moved)

	ps, err := store.Prompts(secID)
	require.NoError(t, err)
	assert.Equal(t, "P2", ps[0].Title)
	assert.Equal(t, "P1", ps[1].Title)
}

// TestMove_RepeatedSwaps walks an item from the bottom to the top one
// step at a time and verifies each intermediate ordering.
func TestMove_RepeatedSwaps(t *testing.T) {
	store := newTestStore(t)
	catID, ids := newSectionFixture(t, store, "S1", "S2", "S3", "S4")

	last := ids[3]
	expected := [][]string{
		{"S1", "S2", "S4", "S3"},
		{"S1", "S4", "S2", "S3"},
		{"S4", "S1", "S2", "S3"},
	}
	for _, want := range expected {
		moved, err := store.MoveSection(last, catID, types.MoveUp)
		require.NoError(t, err)
		require.True(t, moved)
		assert.Equal(t, want, sectionNames(t, store, catID))
	}

	// Now at the top; one more up is a boundary no-op.
	moved, err := store.MoveSection(last, catID, types.MoveUp)
	require.NoError(t, err)
	assert.False(t, moved)
}
