package tasklist

import "time"

// MaxNameLength is the maximum allowed length of a list name after trimming.
const MaxNameLength = 255

// TaskList is a named list owned by one user and optionally shared with others.
// Shared users get read access; rename, delete and share administration stay
// with the owner.
type TaskList struct {
	ID         string
	Name       string
	OwnerID    string
	CreatedAt  time.Time
	SharedWith []string
}

// IsAccessibleBy reports whether a user may read this list.
func (t *TaskList) IsAccessibleBy(userID string) bool {
	if t.OwnerID == userID {
		return true
	}
	for _, id := range t.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// SortDirection orders listings by creation time.
type SortDirection int

const (
	SortDescending SortDirection = iota
	SortAscending
)

// ParseSortDirection maps a query-string value to a SortDirection.
// Unrecognized or empty values fall back to descending (newest first).
func ParseSortDirection(s string) SortDirection {
	switch s {
	case "asc", "Asc", "ASC", "ascending", "Ascending":
		return SortAscending
	default:
		return SortDescending
	}
}

func (d SortDirection) String() string {
	if d == SortAscending {
		return "asc"
	}
	return "desc"
}
