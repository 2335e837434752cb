package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tasklists/database"
	"tasklists/domain/contracts"
	"tasklists/domain/tasklist"
)

// accessibleFilter is the visibility predicate shared by reads and renames:
// the caller is the owner or appears in the share set. Takes two parameters,
// owner user ID then shared user ID (always the same caller).
const accessibleFilter = `(owner_id = ? OR EXISTS (
	SELECT 1 FROM task_list_shares s
	WHERE s.list_id = task_lists.list_id AND s.user_id = ?
))`

// SqliteTaskListRepository implements contracts.TaskListRepository with
// read/write database separation. Every mutation is a single filtered
// statement, so authorization and the write apply atomically in one round
// trip; there is no read-then-decide window.
type SqliteTaskListRepository struct {
	*BaseRepository
}

// NewSqliteTaskListRepository creates a new task list repository.
func NewSqliteTaskListRepository(database *database.Database) contracts.TaskListRepository {
	return &SqliteTaskListRepository{
		BaseRepository: NewBaseRepository(database),
	}
}

// Add inserts a new list row.
func (r *SqliteTaskListRepository) Add(ctx context.Context, list *tasklist.TaskList) error {
	_, err := r.WriteDB().ExecContext(ctx,
		`INSERT INTO task_lists (list_id, name, owner_id, created_at) VALUES (?, ?, ?, ?)`,
		list.ID, list.Name, list.OwnerID, list.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert task list: %w", err)
	}
	return nil
}

// UpdateName renames a list the user can access.
func (r *SqliteTaskListRepository) UpdateName(ctx context.Context, listID, userID, name string) (bool, error) {
	res, err := r.WriteDB().ExecContext(ctx,
		`UPDATE task_lists SET name = ? WHERE list_id = ? AND `+accessibleFilter,
		name, listID, userID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update task list name: %w", err)
	}
	return oneRowAffected(res)
}

// Delete removes a list owned by the user together with its share rows.
// Both statements run in one write transaction so a half-deleted list can
// never be observed.
func (r *SqliteTaskListRepository) Delete(ctx context.Context, listID, userID string) (bool, error) {
	var deleted bool
	err := r.WithTx(func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM task_list_shares
			WHERE list_id IN (SELECT list_id FROM task_lists WHERE list_id = ? AND owner_id = ?)`,
			listID, userID,
		); err != nil {
			return fmt.Errorf("failed to delete task list shares: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			`DELETE FROM task_lists WHERE list_id = ? AND owner_id = ?`,
			listID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to delete task list: %w", err)
		}

		deleted, err = oneRowAffected(res)
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// GetAccessible returns a list visible to the user, or nil when the list is
// absent or the user has no access.
func (r *SqliteTaskListRepository) GetAccessible(ctx context.Context, listID, userID string) (*tasklist.TaskList, error) {
	row := r.ReadDB().QueryRowContext(ctx,
		`SELECT list_id, name, owner_id, created_at FROM task_lists
		WHERE list_id = ? AND `+accessibleFilter,
		listID, userID, userID,
	)

	var list tasklist.TaskList
	if err := row.Scan(&list.ID, &list.Name, &list.OwnerID, &list.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query task list: %w", err)
	}

	shares, err := r.loadShares(ctx, listID)
	if err != nil {
		return nil, err
	}
	list.SharedWith = shares

	return &list, nil
}

// ListAccessible returns lists visible to the user ordered by creation time.
// Pages are 1-based; out-of-range values are clamped rather than producing a
// negative offset. Share sets are not loaded for listings.
func (r *SqliteTaskListRepository) ListAccessible(ctx context.Context, userID string, page, pageSize int, dir tasklist.SortDirection) ([]*tasklist.TaskList, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	order := "DESC"
	if dir == tasklist.SortAscending {
		order = "ASC"
	}

	rows, err := r.ReadDB().QueryContext(ctx,
		`SELECT list_id, name, owner_id, created_at FROM task_lists
		WHERE `+accessibleFilter+`
		ORDER BY created_at `+order+`
		LIMIT ? OFFSET ?`,
		userID, userID, pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query task lists: %w", err)
	}
	defer rows.Close()

	var lists []*tasklist.TaskList
	for rows.Next() {
		var list tasklist.TaskList
		if err := rows.Scan(&list.ID, &list.Name, &list.OwnerID, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task list row: %w", err)
		}
		lists = append(lists, &list)
	}
	return lists, rows.Err()
}

// AddShare grants targetID access to a list owned by the user. Granting an
// existing share is a no-op that still reports success.
func (r *SqliteTaskListRepository) AddShare(ctx context.Context, listID, userID, targetID string) (bool, error) {
	res, err := r.WriteDB().ExecContext(ctx,
		`INSERT INTO task_list_shares (list_id, user_id)
		SELECT list_id, ? FROM task_lists WHERE list_id = ? AND owner_id = ?
		ON CONFLICT (list_id, user_id) DO NOTHING`,
		targetID, listID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add share: %w", err)
	}

	inserted, err := oneRowAffected(res)
	if err != nil {
		return false, err
	}
	if inserted {
		return true, nil
	}

	// Nothing inserted: either the share already existed (success) or the
	// filter matched no owned list (failure). One ownership probe settles it.
	var owned bool
	err = r.ReadDB().QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM task_lists WHERE list_id = ? AND owner_id = ?)`,
		listID, userID,
	).Scan(&owned)
	if err != nil {
		return false, fmt.Errorf("failed to check list ownership: %w", err)
	}
	return owned, nil
}

// RemoveShare revokes targetID's access to a list owned by the user.
func (r *SqliteTaskListRepository) RemoveShare(ctx context.Context, listID, userID, targetID string) (bool, error) {
	res, err := r.WriteDB().ExecContext(ctx,
		`DELETE FROM task_list_shares
		WHERE user_id = ?
		  AND list_id IN (SELECT list_id FROM task_lists WHERE list_id = ? AND owner_id = ?)`,
		targetID, listID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove share: %w", err)
	}
	return oneRowAffected(res)
}

// ListShares returns the share set of a list visible to the user.
func (r *SqliteTaskListRepository) ListShares(ctx context.Context, listID, userID string) ([]string, bool, error) {
	list, err := r.GetAccessible(ctx, listID, userID)
	if err != nil {
		return nil, false, err
	}
	if list == nil {
		return nil, false, nil
	}
	return list.SharedWith, true, nil
}

// loadShares fetches the share set for a list.
func (r *SqliteTaskListRepository) loadShares(ctx context.Context, listID string) ([]string, error) {
	rows, err := r.ReadDB().QueryContext(ctx,
		`SELECT user_id FROM task_list_shares WHERE list_id = ? ORDER BY user_id`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares: %w", err)
	}
	defer rows.Close()

	var shares []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan share row: %w", err)
		}
		shares = append(shares, userID)
	}
	return shares, rows.Err()
}

// oneRowAffected reports whether exactly one row was touched by a statement.
func oneRowAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}
