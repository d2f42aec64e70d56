package item

import (
	"strings"
	"unicode/utf8"

	"github.com/magadiflo/todo-list-backend/internal/domain"
)

// MaxDescriptionLen is the longest accepted item description, in characters.
const MaxDescriptionLen = 4000

// CreateItemInput carries the fields for creating an item. Status is always
// TO_DO on creation; TagIDs is treated as a set (duplicates collapse).
type CreateItemInput struct {
	Description string
	AssigneeID  *int64
	TagIDs      []int64
}

// Validate checks the input against the domain rules.
func (in CreateItemInput) Validate() error {
	return validateDescription(in.Description)
}

// UpdateItemInput carries the full replacement state of an item's scalar
// fields plus the desired tag-id set.
type UpdateItemInput struct {
	Description string
	Status      domain.ItemStatus
	AssigneeID  *int64
	TagIDs      []int64
}

// Validate checks the input against the domain rules.
func (in UpdateItemInput) Validate() error {
	if err := validateDescription(in.Description); err != nil {
		return err
	}
	if !in.Status.IsValid() {
		return domain.NewValidationError("status", "must be one of TO_DO, IN_PROGRESS, DONE")
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return domain.NewValidationError("description", "must not be blank")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return domain.NewValidationError("description", "must be at most 4000 characters")
	}
	return nil
}
