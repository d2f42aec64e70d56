package domain

import "time"

// Person is a potential item assignee. Read-only from this service's
// perspective: persons are managed elsewhere.
type Person struct {
	ID        int64
	FirstName string
	LastName  string

	Version          int64
	CreatedDate      time.Time
	LastModifiedDate time.Time
}
