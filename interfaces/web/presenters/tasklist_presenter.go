// Package presenters transforms service data into wire-ready view models.
package presenters

import (
	"time"

	"tasklists/application"
)

// TaskListView is the full JSON representation of a task list.
type TaskListView struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	OwnerID         string          `json:"ownerId"`
	CreatedAt       time.Time       `json:"createdAt"`
	SharedWithUsers []ShareInfoView `json:"sharedWithUsers"`
}

// TaskListSummaryView exposes only the id and name of a list.
type TaskListSummaryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShareInfoView identifies a user a list is shared with.
type ShareInfoView struct {
	UserID string `json:"userId"`
}

// TaskListPresenter converts task list service data to JSON view models.
type TaskListPresenter struct{}

// NewTaskListPresenter creates a task list presenter.
func NewTaskListPresenter() *TaskListPresenter {
	return &TaskListPresenter{}
}

// ToTaskListView converts a full task list to its JSON view.
// Returns a safe zero view if data is nil.
func (p *TaskListPresenter) ToTaskListView(data *application.TaskListData) *TaskListView {
	if data == nil {
		return &TaskListView{SharedWithUsers: []ShareInfoView{}}
	}

	shares := make([]ShareInfoView, len(data.SharedWith))
	for i, s := range data.SharedWith {
		shares[i] = ShareInfoView{UserID: s.UserID}
	}

	return &TaskListView{
		ID:              data.ID,
		Name:            data.Name,
		OwnerID:         data.OwnerID,
		CreatedAt:       data.CreatedAt,
		SharedWithUsers: shares,
	}
}

// ToSummaryViews converts list summaries. Always returns a non-nil slice so
// empty listings encode as [] rather than null.
func (p *TaskListPresenter) ToSummaryViews(data []*application.TaskListSummaryData) []TaskListSummaryView {
	views := make([]TaskListSummaryView, len(data))
	for i, d := range data {
		views[i] = TaskListSummaryView{ID: d.ID, Name: d.Name}
	}
	return views
}

// ToShareViews converts share info entries. Always returns a non-nil slice.
func (p *TaskListPresenter) ToShareViews(data []*application.ShareInfoData) []ShareInfoView {
	views := make([]ShareInfoView, len(data))
	for i, d := range data {
		views[i] = ShareInfoView{UserID: d.UserID}
	}
	return views
}
