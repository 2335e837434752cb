package presenters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklists/application"
)

func TestTaskListPresenter_ToTaskListView(t *testing.T) {
	presenter := NewTaskListPresenter()

	t.Run("maps_all_fields", func(t *testing.T) {
		created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		data := &application.TaskListData{
			ID:        "list-1",
			Name:      "Groceries",
			OwnerID:   "user-1",
			CreatedAt: created,
			SharedWith: []application.ShareInfoData{
				{UserID: "user-2"},
				{UserID: "user-3"},
			},
		}

		view := presenter.ToTaskListView(data)

		assert.Equal(t, "list-1", view.ID)
		assert.Equal(t, "Groceries", view.Name)
		assert.Equal(t, "user-1", view.OwnerID)
		assert.Equal(t, created, view.CreatedAt)
		require.Len(t, view.SharedWithUsers, 2)
		assert.Equal(t, "user-2", view.SharedWithUsers[0].UserID)
		assert.Equal(t, "user-3", view.SharedWithUsers[1].UserID)
	})

	t.Run("nil_data_yields_zero_view", func(t *testing.T) {
		view := presenter.ToTaskListView(nil)

		require.NotNil(t, view)
		assert.Empty(t, view.ID)
		assert.NotNil(t, view.SharedWithUsers)
	})

	t.Run("no_shares_encodes_as_empty_slice", func(t *testing.T) {
		view := presenter.ToTaskListView(&application.TaskListData{ID: "list-1"})

		assert.NotNil(t, view.SharedWithUsers)
		assert.Empty(t, view.SharedWithUsers)
	})
}

func TestTaskListPresenter_ToSummaryViews(t *testing.T) {
	presenter := NewTaskListPresenter()

	t.Run("maps_id_and_name", func(t *testing.T) {
		views := presenter.ToSummaryViews([]*application.TaskListSummaryData{
			{ID: "list-1", Name: "First"},
			{ID: "list-2", Name: "Second"},
		})

		require.Len(t, views, 2)
		assert.Equal(t, TaskListSummaryView{ID: "list-1", Name: "First"}, views[0])
		assert.Equal(t, TaskListSummaryView{ID: "list-2", Name: "Second"}, views[1])
	})

	t.Run("empty_input_yields_non_nil_slice", func(t *testing.T) {
		views := presenter.ToSummaryViews(nil)

		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestTaskListPresenter_ToShareViews(t *testing.T) {
	presenter := NewTaskListPresenter()

	t.Run("maps_user_ids", func(t *testing.T) {
		views := presenter.ToShareViews([]*application.ShareInfoData{
			{UserID: "user-1"},
		})

		require.Len(t, views, 1)
		assert.Equal(t, "user-1", views[0].UserID)
	})

	t.Run("empty_input_yields_non_nil_slice", func(t *testing.T) {
		views := presenter.ToShareViews(nil)

		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}
