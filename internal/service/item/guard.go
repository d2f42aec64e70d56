package item

import "github.com/magadiflo/todo-list-backend/internal/domain"

// requireVersion rejects mutations attempted without a concurrency token.
// It runs before any store access: a missing token is a caller contract
// violation, not a conflict.
func requireVersion(expectedVersion *int64) (int64, error) {
	if expectedVersion == nil {
		return 0, domain.ErrVersionRequired
	}
	return *expectedVersion, nil
}

// guardVersion is the optimistic concurrency pre-check. It compares the
// stored version against the caller-supplied token and never mutates the
// item. The authoritative check is the compare-and-swap in the item
// repository; this guard exists to fail fast with the stored version in the
// error payload.
func guardVersion(item *domain.Item, expectedVersion int64) error {
	if item.Version != expectedVersion {
		return domain.NewVersionConflictError(expectedVersion, item.Version)
	}
	return nil
}
