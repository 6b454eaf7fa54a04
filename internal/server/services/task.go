package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/tasks"
)

// TaskService enforces the ownership rule on every operation that
// targets an existing task: the record is fetched first, then its owner
// is compared against the authenticated caller.
type TaskService struct {
	repo tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{repo: repo}
}

// Create stores a new task owned by callerID. The id is generated by the
// store.
func (s *TaskService) Create(ctx context.Context, callerID, name, dueDate string, priority int) (*models.Task, error) {

	task := &models.Task{
		Name:     name,
		DueDate:  dueDate,
		Priority: priority,
		UserID:   callerID,
	}

	return s.repo.Create(ctx, task)
}

// GetAll returns every task owned by callerID in store-native order.
func (s *TaskService) GetAll(ctx context.Context, callerID string) ([]*models.Task, error) {
	return s.repo.FindByUser(ctx, callerID)
}

// GetByID returns the task only to its owner. A task owned by someone
// else is reported as common.ErrNotFound, not as an authorization
// failure, so the response does not confirm that the id exists under
// another account.
func (s *TaskService) GetByID(ctx context.Context, callerID, taskID string) (*models.Task, error) {

	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.UserID != callerID {
		return nil, common.ErrNotFound
	}

	return task, nil
}

// Update applies a partial field replace after the ownership check. A
// task owned by someone else fails with common.ErrNotOwner: unlike
// GetByID the caller already knows the id they are targeting. A record
// deleted between the check and the write surfaces as
// common.ErrNotFound.
func (s *TaskService) Update(ctx context.Context, callerID, taskID string, upd *models.TaskUpdate) (*models.Task, error) {

	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.UserID != callerID {
		return nil, common.ErrNotOwner
	}

	return s.repo.Update(ctx, taskID, upd)
}

// Delete removes the task after the same ownership check as Update. The
// store-level delete of an id that vanished after the check is a no-op
// success.
func (s *TaskService) Delete(ctx context.Context, callerID, taskID string) error {

	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}

	if task.UserID != callerID {
		return common.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, taskID); err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}

	return nil
}
