package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tasklists/domain/tasklist"
)

// MockTaskListRepository implements contracts.TaskListRepository for testing
type MockTaskListRepository struct {
	mock.Mock
}

func (m *MockTaskListRepository) Add(ctx context.Context, list *tasklist.TaskList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockTaskListRepository) UpdateName(ctx context.Context, listID, userID, name string) (bool, error) {
	args := m.Called(ctx, listID, userID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskListRepository) Delete(ctx context.Context, listID, userID string) (bool, error) {
	args := m.Called(ctx, listID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskListRepository) GetAccessible(ctx context.Context, listID, userID string) (*tasklist.TaskList, error) {
	args := m.Called(ctx, listID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasklist.TaskList), args.Error(1)
}

func (m *MockTaskListRepository) ListAccessible(ctx context.Context, userID string, page, pageSize int, dir tasklist.SortDirection) ([]*tasklist.TaskList, error) {
	args := m.Called(ctx, userID, page, pageSize, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tasklist.TaskList), args.Error(1)
}

func (m *MockTaskListRepository) AddShare(ctx context.Context, listID, userID, targetID string) (bool, error) {
	args := m.Called(ctx, listID, userID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskListRepository) RemoveShare(ctx context.Context, listID, userID, targetID string) (bool, error) {
	args := m.Called(ctx, listID, userID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskListRepository) ListShares(ctx context.Context, listID, userID string) ([]string, bool, error) {
	args := m.Called(ctx, listID, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]string), args.Bool(1), args.Error(2)
}
