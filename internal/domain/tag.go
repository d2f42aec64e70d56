package domain

import "time"

// Tag is a label attachable to items. Read-only from this service's
// perspective: tags are managed elsewhere.
type Tag struct {
	ID   int64
	Name string

	Version          int64
	CreatedDate      time.Time
	LastModifiedDate time.Time
}
