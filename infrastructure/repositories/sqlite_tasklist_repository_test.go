package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklists/database"
	"tasklists/domain/contracts"
	"tasklists/domain/tasklist"
	"tasklists/logging"
)

// newTestRepository opens a fresh on-disk database in a temp dir and returns
// a repository backed by it.
func newTestRepository(t *testing.T) contracts.TaskListRepository {
	t.Helper()

	cfg := database.Config{
		Path:            filepath.Join(t.TempDir(), "tasklists.db"),
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 15 * time.Minute,
		BusyTimeoutMs:   5000,
		EnableWAL:       true,
	}

	db, err := database.New(cfg, logging.NewLogger(logging.DefaultConfig()))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSqliteTaskListRepository(db)
}

func newList(name, ownerID string, createdAt time.Time) *tasklist.TaskList {
	return &tasklist.TaskList{
		ID:        uuid.NewString(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: createdAt,
	}
}

func TestSqliteTaskListRepository_AddAndGetAccessible(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner := uuid.NewString()
	stranger := uuid.NewString()
	list := newList("Groceries", owner, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, repo.Add(ctx, list))

	t.Run("owner_sees_list", func(t *testing.T) {
		got, err := repo.GetAccessible(ctx, list.ID, owner)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, list.ID, got.ID)
		assert.Equal(t, "Groceries", got.Name)
		assert.Equal(t, owner, got.OwnerID)
		assert.Empty(t, got.SharedWith)
	})

	t.Run("stranger_sees_nothing", func(t *testing.T) {
		got, err := repo.GetAccessible(ctx, list.ID, stranger)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown_id_sees_nothing", func(t *testing.T) {
		got, err := repo.GetAccessible(ctx, uuid.NewString(), owner)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestSqliteTaskListRepository_UpdateName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner := uuid.NewString()
	sharedUser := uuid.NewString()
	stranger := uuid.NewString()
	list := newList("Before", owner, time.Now().UTC())
	require.NoError(t, repo.Add(ctx, list))

	ok, err := repo.AddShare(ctx, list.ID, owner, sharedUser)
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("owner_renames", func(t *testing.T) {
		ok, err := repo.UpdateName(ctx, list.ID, owner, "After")
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := repo.GetAccessible(ctx, list.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, "After", got.Name)
	})

	t.Run("shared_user_renames", func(t *testing.T) {
		ok, err := repo.UpdateName(ctx, list.ID, sharedUser, "Shared rename")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("stranger_cannot_rename", func(t *testing.T) {
		ok, err := repo.UpdateName(ctx, list.ID, stranger, "Nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown_id_reports_no_match", func(t *testing.T) {
		ok, err := repo.UpdateName(ctx, uuid.NewString(), owner, "Nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSqliteTaskListRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner := uuid.NewString()
	sharedUser := uuid.NewString()
	list := newList("Doomed", owner, time.Now().UTC())
	require.NoError(t, repo.Add(ctx, list))

	ok, err := repo.AddShare(ctx, list.ID, owner, sharedUser)
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("shared_user_cannot_delete", func(t *testing.T) {
		ok, err := repo.Delete(ctx, list.ID, sharedUser)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("owner_deletes_with_shares", func(t *testing.T) {
		ok, err := repo.Delete(ctx, list.ID, owner)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := repo.GetAccessible(ctx, list.ID, owner)
		require.NoError(t, err)
		assert.Nil(t, got)

		// Share rows went with the list
		_, found, err := repo.ListShares(ctx, list.ID, sharedUser)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("second_delete_reports_no_match", func(t *testing.T) {
		ok, err := repo.Delete(ctx, list.ID, owner)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSqliteTaskListRepository_Shares(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner := uuid.NewString()
	target := uuid.NewString()
	stranger := uuid.NewString()
	list := newList("Shared", owner, time.Now().UTC())
	require.NoError(t, repo.Add(ctx, list))

	t.Run("add_share_grants_access", func(t *testing.T) {
		ok, err := repo.AddShare(ctx, list.ID, owner, target)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := repo.GetAccessible(ctx, list.ID, target)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{target}, got.SharedWith)
	})

	t.Run("add_share_is_idempotent", func(t *testing.T) {
		ok, err := repo.AddShare(ctx, list.ID, owner, target)
		require.NoError(t, err)
		assert.True(t, ok)

		shares, found, err := repo.ListShares(ctx, list.ID, owner)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []string{target}, shares)
	})

	t.Run("non_owner_cannot_share", func(t *testing.T) {
		ok, err := repo.AddShare(ctx, list.ID, target, stranger)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("share_on_unknown_list_reports_no_match", func(t *testing.T) {
		ok, err := repo.AddShare(ctx, uuid.NewString(), owner, target)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("shared_user_reads_share_list", func(t *testing.T) {
		shares, found, err := repo.ListShares(ctx, list.ID, target)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, []string{target}, shares)
	})

	t.Run("stranger_cannot_read_share_list", func(t *testing.T) {
		_, found, err := repo.ListShares(ctx, list.ID, stranger)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("remove_share_revokes_access", func(t *testing.T) {
		ok, err := repo.RemoveShare(ctx, list.ID, owner, target)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := repo.GetAccessible(ctx, list.ID, target)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("removing_absent_share_reports_no_match", func(t *testing.T) {
		ok, err := repo.RemoveShare(ctx, list.ID, owner, target)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non_owner_cannot_remove_share", func(t *testing.T) {
		ok, err := repo.AddShare(ctx, list.ID, owner, target)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = repo.RemoveShare(ctx, list.ID, target, target)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSqliteTaskListRepository_ListAccessible(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	owner := uuid.NewString()
	other := uuid.NewString()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	oldest := newList("oldest", owner, base)
	middle := newList("middle", owner, base.Add(time.Hour))
	newest := newList("newest", other, base.Add(2*time.Hour))
	unrelated := newList("unrelated", other, base.Add(3*time.Hour))

	for _, l := range []*tasklist.TaskList{oldest, middle, newest, unrelated} {
		require.NoError(t, repo.Add(ctx, l))
	}

	// owner can also see newest through a share
	ok, err := repo.AddShare(ctx, newest.ID, other, owner)
	require.NoError(t, err)
	require.True(t, ok)

	names := func(lists []*tasklist.TaskList) []string {
		out := make([]string, len(lists))
		for i, l := range lists {
			out[i] = l.Name
		}
		return out
	}

	t.Run("descending_includes_shared", func(t *testing.T) {
		lists, err := repo.ListAccessible(ctx, owner, 1, 10, tasklist.SortDescending)
		require.NoError(t, err)
		assert.Equal(t, []string{"newest", "middle", "oldest"}, names(lists))
	})

	t.Run("ascending", func(t *testing.T) {
		lists, err := repo.ListAccessible(ctx, owner, 1, 10, tasklist.SortAscending)
		require.NoError(t, err)
		assert.Equal(t, []string{"oldest", "middle", "newest"}, names(lists))
	})

	t.Run("first_page_window", func(t *testing.T) {
		lists, err := repo.ListAccessible(ctx, owner, 1, 2, tasklist.SortDescending)
		require.NoError(t, err)
		assert.Equal(t, []string{"newest", "middle"}, names(lists))
	})

	t.Run("second_page_window", func(t *testing.T) {
		lists, err := repo.ListAccessible(ctx, owner, 2, 2, tasklist.SortDescending)
		require.NoError(t, err)
		assert.Equal(t, []string{"oldest"}, names(lists))
	})

	t.Run("page_below_one_is_clamped", func(t *testing.T) {
		lists, err := repo.ListAccessible(ctx, owner, 0, 2, tasklist.SortDescending)
		require.NoError(t, err)
		assert.Equal(t, []string{"newest", "middle"}, names(lists))
	})

	t.Run("stranger_sees_nothing", func(t *testing.T) {
		lists, err := repo.ListAccessible(ctx, uuid.NewString(), 1, 10, tasklist.SortDescending)
		require.NoError(t, err)
		assert.Empty(t, lists)
	})
}
