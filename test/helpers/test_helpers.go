package helpers

import (
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tasklists/domain/tasklist"
	"tasklists/test/mocks"
)

// MockRepositories holds repository mocks for easy injection
type MockRepositories struct {
	TaskList *mocks.MockTaskListRepository
}

// NewMockRepositories creates a new set of repository mocks
func NewMockRepositories() *MockRepositories {
	return &MockRepositories{
		TaskList: &mocks.MockTaskListRepository{},
	}
}

// ExpectAccessibleList sets up expectations for a successful list retrieval
func (m *MockRepositories) ExpectAccessibleList(listID, userID string, list *tasklist.TaskList) {
	m.TaskList.On("GetAccessible", mock.Anything, listID, userID).Return(list, nil)
}

// ExpectInaccessibleList sets up expectations for an absent or forbidden list
func (m *MockRepositories) ExpectInaccessibleList(listID, userID string) {
	m.TaskList.On("GetAccessible", mock.Anything, listID, userID).Return((*tasklist.TaskList)(nil), nil)
}

// ExpectAdd sets up expectations for a successful insert
func (m *MockRepositories) ExpectAdd() {
	m.TaskList.On("Add", mock.Anything, mock.AnythingOfType("*tasklist.TaskList")).Return(nil)
}

// AssertAllExpectations verifies all mock expectations were met
func (m *MockRepositories) AssertAllExpectations(t mock.TestingT) {
	m.TaskList.AssertExpectations(t)
}

// TestData provides simple builders for test data
type TestData struct{}

// NewTestData creates a test data builder
func NewTestData() *TestData {
	return &TestData{}
}

// SimpleTaskList creates a basic task list for testing
func (td *TestData) SimpleTaskList(name, ownerID string, sharedWith ...string) *tasklist.TaskList {
	return &tasklist.TaskList{
		ID:         uuid.NewString(),
		Name:       name,
		OwnerID:    ownerID,
		CreatedAt:  time.Now().UTC(),
		SharedWith: sharedWith,
	}
}

// UserID creates a fresh user identifier
func (td *TestData) UserID() string {
	return uuid.NewString()
}
