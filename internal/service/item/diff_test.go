package item

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

func edges(itemID int64, tagIDs ...int64) []domain.ItemTag {
	result := make([]domain.ItemTag, len(tagIDs))
	for i, tagID := range tagIDs {
		result[i] = domain.ItemTag{ID: int64(100 + i), ItemID: itemID, TagID: tagID}
	}
	return result
}

func tagIDs(es []domain.ItemTag) []int64 {
	if len(es) == 0 {
		return nil
	}
	ids := make([]int64, len(es))
	for i, e := range es {
		ids[i] = e.TagID
	}
	return ids
}

func TestDiffTagEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		current    []domain.ItemTag
		desired    []int64
		wantRemove []int64
		wantAdd    []int64
	}{
		{
			name:       "overlap removes and adds",
			current:    edges(1, 1, 2),
			desired:    []int64{2, 4},
			wantRemove: []int64{1},
			wantAdd:    []int64{4},
		},
		{
			name:       "identical sets yield empty delta",
			current:    edges(1, 2, 4),
			desired:    []int64{4, 2},
			wantRemove: nil,
			wantAdd:    nil,
		},
		{
			name:       "create degenerates to all adds",
			current:    nil,
			desired:    []int64{1, 3},
			wantRemove: nil,
			wantAdd:    []int64{1, 3},
		},
		{
			name:       "empty desired removes everything",
			current:    edges(1, 5, 6),
			desired:    nil,
			wantRemove: []int64{5, 6},
			wantAdd:    nil,
		},
		{
			name:       "duplicate desired ids collapse",
			current:    edges(1, 2),
			desired:    []int64{2, 4, 4, 4},
			wantRemove: nil,
			wantAdd:    []int64{4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			toRemove, toAdd := diffTagEdges(1, tt.current, tt.desired)

			assert.Equal(t, tt.wantRemove, tagIDs(toRemove))
			assert.Equal(t, tt.wantAdd, tagIDs(toAdd))

			for _, e := range toAdd {
				assert.Equal(t, int64(1), e.ItemID, "new edges must reference the item")
				assert.Zero(t, e.ID, "new edges must not carry an id")
			}
			for _, e := range toRemove {
				assert.NotZero(t, e.ID, "removed edges must be existing rows")
			}
		})
	}
}

// Applying the delta once must make a second diff against the same desired
// set empty, and the delta size must equal the symmetric difference.
func TestDiffTagEdges_IdempotentAndMinimal(t *testing.T) {
	t.Parallel()

	current := edges(1, 1, 2, 3)
	desired := []int64{2, 4, 5}

	toRemove, toAdd := diffTagEdges(1, current, desired)

	// Symmetric difference of {1,2,3} and {2,4,5} is {1,3,4,5}.
	assert.Len(t, toRemove, 2)
	assert.Len(t, toAdd, 2)

	// Apply the delta.
	removed := make(map[int64]bool, len(toRemove))
	for _, e := range toRemove {
		removed[e.TagID] = true
	}
	var next []domain.ItemTag
	for _, e := range current {
		if !removed[e.TagID] {
			next = append(next, e)
		}
	}
	next = append(next, toAdd...)

	toRemove2, toAdd2 := diffTagEdges(1, next, desired)
	assert.Empty(t, toRemove2)
	assert.Empty(t, toAdd2)
}
