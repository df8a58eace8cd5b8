package domain

import "time"

// ActivityAction names a recorded item-state change.
type ActivityAction string

const (
	ActionCheck   ActivityAction = "check"
	ActionUncheck ActivityAction = "uncheck"
)

// ActivityEntry is one recorded check/uncheck against a stored document.
type ActivityEntry struct {
	ID         string
	DocumentID string
	ItemPath   string
	ItemText   string
	Action     ActivityAction
	CreatedAt  time.Time
}
