package contracts

import (
	"context"

	"tasklists/domain/tasklist"
)

// TaskListRepository defines persistence operations for task lists.
//
// Mutating operations return a bool that reports whether the query filter
// matched a list. A false result deliberately does not distinguish "no such
// list" from "caller not authorized"; the service maps both to the same
// outcome so existence is never leaked.
type TaskListRepository interface {
	// Add inserts a new list. The caller assigns the ID and CreatedAt.
	Add(ctx context.Context, list *tasklist.TaskList) error

	// UpdateName renames a list the user can access (owner or shared user).
	UpdateName(ctx context.Context, listID, userID, name string) (bool, error)

	// Delete removes a list owned by the user, along with its shares.
	Delete(ctx context.Context, listID, userID string) (bool, error)

	// GetAccessible returns a list visible to the user with its share set
	// loaded, or nil when the list is absent or not accessible.
	GetAccessible(ctx context.Context, listID, userID string) (*tasklist.TaskList, error)

	// ListAccessible returns lists visible to the user ordered by creation
	// time, paginated with a 1-based page. Share sets are not loaded.
	ListAccessible(ctx context.Context, userID string, page, pageSize int, dir tasklist.SortDirection) ([]*tasklist.TaskList, error)

	// AddShare grants targetID read access to a list owned by the user.
	// Idempotent: granting an existing share still reports success.
	AddShare(ctx context.Context, listID, userID, targetID string) (bool, error)

	// RemoveShare revokes targetID's access to a list owned by the user.
	// Returns false when no share row was removed.
	RemoveShare(ctx context.Context, listID, userID, targetID string) (bool, error)

	// ListShares returns the share set of a list visible to the user. The
	// bool reports whether the list was accessible at all.
	ListShares(ctx context.Context, listID, userID string) ([]string, bool, error)
}
