package application

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"tasklists/domain/contracts"
	"tasklists/domain/tasklist"
	"tasklists/logging"
)

// TaskListData is the service-level representation of a full task list,
// returned by Create and Get.
type TaskListData struct {
	ID         string
	Name       string
	OwnerID    string
	CreatedAt  time.Time
	SharedWith []ShareInfoData
}

// TaskListSummaryData exposes only the identifier and name of a list.
// Listings deliberately omit owner, dates and share data.
type TaskListSummaryData struct {
	ID   string
	Name string
}

// ShareInfoData identifies a user a list is shared with.
type ShareInfoData struct {
	UserID string
}

// TaskListService handles business logic for task list operations: input
// validation, translating the repository's "no match" results into
// tasklist.ErrForbiddenOrNotFound, and shaping response data.
type TaskListService struct {
	repo   contracts.TaskListRepository
	logger *logging.Logger
}

// NewTaskListService creates a new task list service.
func NewTaskListService(repo contracts.TaskListRepository) *TaskListService {
	return &TaskListService{
		repo:   repo,
		logger: logging.Default().WithComponent("tasklist_service"),
	}
}

// Create validates the name and persists a new list owned by the caller.
func (s *TaskListService) Create(ctx context.Context, name, userID string) (*TaskListData, error) {
	name, err := validateAndTrimName(name)
	if err != nil {
		return nil, err
	}

	list := &tasklist.TaskList{
		ID:        uuid.NewString(),
		Name:      name,
		OwnerID:   userID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Add(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info("Task list created", "list_id", list.ID, "owner_id", userID)

	return &TaskListData{
		ID:         list.ID,
		Name:       list.Name,
		OwnerID:    list.OwnerID,
		CreatedAt:  list.CreatedAt,
		SharedWith: []ShareInfoData{},
	}, nil
}

// Update renames a list the caller can access.
func (s *TaskListService) Update(ctx context.Context, listID, name, userID string) error {
	name, err := validateAndTrimName(name)
	if err != nil {
		return err
	}

	ok, err := s.repo.UpdateName(ctx, listID, userID, name)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Access("Rename refused", "list_id", listID, "user_id", userID)
		return tasklist.ErrForbiddenOrNotFound
	}
	return nil
}

// Delete removes a list owned by the caller.
func (s *TaskListService) Delete(ctx context.Context, listID, userID string) error {
	ok, err := s.repo.Delete(ctx, listID, userID)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Access("Delete refused", "list_id", listID, "user_id", userID)
		return tasklist.ErrForbiddenOrNotFound
	}

	s.logger.Info("Task list deleted", "list_id", listID, "owner_id", userID)
	return nil
}

// Get returns a list visible to the caller with its share set.
func (s *TaskListService) Get(ctx context.Context, listID, userID string) (*TaskListData, error) {
	list, err := s.repo.GetAccessible(ctx, listID, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, tasklist.ErrForbiddenOrNotFound
	}

	return &TaskListData{
		ID:         list.ID,
		Name:       list.Name,
		OwnerID:    list.OwnerID,
		CreatedAt:  list.CreatedAt,
		SharedWith: toShareInfo(list.SharedWith),
	}, nil
}

// List returns summaries of lists visible to the caller, ordered by creation
// time and paginated.
func (s *TaskListService) List(ctx context.Context, userID string, page, pageSize int, dir tasklist.SortDirection) ([]*TaskListSummaryData, error) {
	lists, err := s.repo.ListAccessible(ctx, userID, page, pageSize, dir)
	if err != nil {
		return nil, err
	}

	summaries := make([]*TaskListSummaryData, len(lists))
	for i, list := range lists {
		summaries[i] = &TaskListSummaryData{
			ID:   list.ID,
			Name: list.Name,
		}
	}
	return summaries, nil
}

// Share grants targetUserID access to a list owned by the caller.
func (s *TaskListService) Share(ctx context.Context, listID, userID, targetUserID string) error {
	ok, err := s.repo.AddShare(ctx, listID, userID, targetUserID)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Access("Share refused", "list_id", listID, "user_id", userID)
		return tasklist.ErrForbiddenOrNotFound
	}

	s.logger.Info("Task list shared", "list_id", listID, "target_user_id", targetUserID)
	return nil
}

// GetShares returns the share set of a list visible to the caller.
func (s *TaskListService) GetShares(ctx context.Context, listID, userID string) ([]*ShareInfoData, error) {
	users, ok, err := s.repo.ListShares(ctx, listID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, tasklist.ErrForbiddenOrNotFound
	}

	shares := make([]*ShareInfoData, len(users))
	for i, u := range users {
		shares[i] = &ShareInfoData{UserID: u}
	}
	return shares, nil
}

// RemoveShare revokes targetUserID's access to a list owned by the caller.
func (s *TaskListService) RemoveShare(ctx context.Context, listID, userID, targetUserID string) error {
	ok, err := s.repo.RemoveShare(ctx, listID, userID, targetUserID)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Access("Share removal refused", "list_id", listID, "user_id", userID)
		return tasklist.ErrForbiddenOrNotFound
	}
	return nil
}

// validateAndTrimName checks name constraints before any persistence call.
func validateAndTrimName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", tasklist.NewValidationError("Name is required.")
	}
	if utf8.RuneCountInString(name) > tasklist.MaxNameLength {
		return "", tasklist.NewValidationError(
			fmt.Sprintf("Name length must be <= %d.", tasklist.MaxNameLength))
	}
	return name, nil
}

func toShareInfo(userIDs []string) []ShareInfoData {
	shares := make([]ShareInfoData, len(userIDs))
	for i, u := range userIDs {
		shares[i] = ShareInfoData{UserID: u}
	}
	return shares
}
