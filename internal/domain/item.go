package domain

import "time"

// ItemStatus represents the workflow state of an item.
type ItemStatus string

const (
	ItemStatusToDo       ItemStatus = "TO_DO"
	ItemStatusInProgress ItemStatus = "IN_PROGRESS"
	ItemStatusDone       ItemStatus = "DONE"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusToDo, ItemStatusInProgress, ItemStatusDone:
		return true
	}
	return false
}

// Item is the task aggregate root. Assignee and Tags are derived relations:
// they are never stored on the items row and are populated on demand by the
// item service.
type Item struct {
	ID          int64
	Description string
	Status      ItemStatus
	AssigneeID  *int64

	Assignee *Person
	Tags     []Tag

	Version          int64
	CreatedDate      time.Time
	LastModifiedDate time.Time
}

// ItemTag is one edge of the item<->tag many-to-many relation. Edges have no
// lifecycle of their own; they are created and deleted only as a side effect
// of item mutation.
type ItemTag struct {
	ID     int64
	ItemID int64
	TagID  int64
}
