package item

import "github.com/magadiflo/todo-list-backend/internal/domain"

// diffTagEdges computes the minimal edge delta that turns the current edge
// set into the desired tag-id set.
//
// toRemove holds existing edges whose tag id is absent from desired; toAdd
// holds new edges (id unset, assigned by the store on insert) for desired tag
// ids with no existing edge. Duplicate desired ids collapse; order of the
// inputs is irrelevant. Applying the delta once makes a second diff against
// the same desired set empty.
func diffTagEdges(itemID int64, current []domain.ItemTag, desired []int64) (toRemove, toAdd []domain.ItemTag) {
	desiredSet := make(map[int64]struct{}, len(desired))
	for _, tagID := range desired {
		desiredSet[tagID] = struct{}{}
	}

	currentSet := make(map[int64]struct{}, len(current))
	for _, edge := range current {
		currentSet[edge.TagID] = struct{}{}
		if _, keep := desiredSet[edge.TagID]; !keep {
			toRemove = append(toRemove, edge)
		}
	}

	seen := make(map[int64]struct{}, len(desired))
	for _, tagID := range desired {
		if _, dup := seen[tagID]; dup {
			continue
		}
		seen[tagID] = struct{}{}
		if _, exists := currentSet[tagID]; !exists {
			toAdd = append(toAdd, domain.ItemTag{ItemID: itemID, TagID: tagID})
		}
	}

	return toRemove, toAdd
}
