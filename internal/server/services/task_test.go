package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

// --- helpers ---

type fakeTasksRepo struct {
	findOut *models.Task
	findErr error

	listOut []*models.Task
	listErr error

	updateOut *models.Task
	updateErr error

	deleteErr error

	updateCalled bool
	deleteCalled bool
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	task.ID = "generated-id"
	return task, nil
}

func (f *fakeTasksRepo) FindByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeTasksRepo) FindByID(ctx context.Context, id string) (*models.Task, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, id string, upd *models.TaskUpdate) (*models.Task, error) {
	f.updateCalled = true
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalled = true
	return f.deleteErr
}

func ownedTask(owner string) *models.Task {
	return &models.Task{ID: "t1", Name: "Buy milk", DueDate: "2025-01-01", Priority: 2, UserID: owner}
}

// --- tests ---

func TestTaskCreate_OwnerComesFromCaller(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{})

	task, err := s.Create(context.Background(), "u1", "Buy milk", "2025-01-01", 2)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.UserID != "u1" {
		t.Fatalf("owner must be the caller, got %q", task.UserID)
	}
	if task.ID == "" {
		t.Fatalf("expected store-generated id")
	}
	if task.Name != "Buy milk" || task.DueDate != "2025-01-01" || task.Priority != 2 {
		t.Fatalf("unexpected task: %+v", task)
	}
}

func TestTaskGetAll_PassesThrough(t *testing.T) {
	repo := &fakeTasksRepo{listOut: []*models.Task{ownedTask("u1")}}
	s := NewTaskService(repo)

	got, err := s.GetAll(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestTaskGetByID_Owner(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{findOut: ownedTask("u1")})

	got, err := s.GetByID(context.Background(), "u1", "t1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.ID != "t1" {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestTaskGetByID_ForeignTaskHiddenAsNotFound(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{findOut: ownedTask("owner")})

	_, err := s.GetByID(context.Background(), "intruder", "t1")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("foreign task must look like not-found, got %v", err)
	}
}

func TestTaskGetByID_Missing(t *testing.T) {
	s := NewTaskService(&fakeTasksRepo{findErr: common.ErrNotFound})

	_, err := s.GetByID(context.Background(), "u1", "ghost")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestTaskUpdate_ForeignTaskIsNotOwner(t *testing.T) {
	repo := &fakeTasksRepo{findOut: ownedTask("owner")}
	s := NewTaskService(repo)

	name := "hijacked"
	_, err := s.Update(context.Background(), "intruder", "t1", &models.TaskUpdate{Name: &name})
	if !errors.Is(err, common.ErrNotOwner) {
		t.Fatalf("want common.ErrNotOwner, got %v", err)
	}
	if repo.updateCalled {
		t.Fatalf("store update must not run after a failed ownership check")
	}
}

func TestTaskUpdate_MissingTask(t *testing.T) {
	repo := &fakeTasksRepo{findErr: common.ErrNotFound}
	s := NewTaskService(repo)

	name := "x"
	_, err := s.Update(context.Background(), "u1", "ghost", &models.TaskUpdate{Name: &name})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
	if repo.updateCalled {
		t.Fatalf("store update must not run for a missing task")
	}
}

func TestTaskUpdate_RaceDeletedBetweenCheckAndWrite(t *testing.T) {
	repo := &fakeTasksRepo{findOut: ownedTask("u1"), updateErr: common.ErrNotFound}
	s := NewTaskService(repo)

	name := "x"
	_, err := s.Update(context.Background(), "u1", "t1", &models.TaskUpdate{Name: &name})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestTaskUpdate_Success(t *testing.T) {
	updated := ownedTask("u1")
	updated.Name = "after"
	repo := &fakeTasksRepo{findOut: ownedTask("u1"), updateOut: updated}
	s := NewTaskService(repo)

	name := "after"
	got, err := s.Update(context.Background(), "u1", "t1", &models.TaskUpdate{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "after" {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestTaskDelete_ForeignTaskIsNotOwner(t *testing.T) {
	repo := &fakeTasksRepo{findOut: ownedTask("owner")}
	s := NewTaskService(repo)

	err := s.Delete(context.Background(), "intruder", "t1")
	if !errors.Is(err, common.ErrNotOwner) {
		t.Fatalf("want common.ErrNotOwner, got %v", err)
	}
	if repo.deleteCalled {
		t.Fatalf("store delete must not run after a failed ownership check")
	}
}

func TestTaskDelete_Success(t *testing.T) {
	repo := &fakeTasksRepo{findOut: ownedTask("u1")}
	s := NewTaskService(repo)

	if err := s.Delete(context.Background(), "u1", "t1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if !repo.deleteCalled {
		t.Fatalf("store delete must run for the owner")
	}
}

func TestTaskDelete_VanishedAfterCheckIsNoop(t *testing.T) {
	repo := &fakeTasksRepo{findOut: ownedTask("u1"), deleteErr: common.ErrNotFound}
	s := NewTaskService(repo)

	if err := s.Delete(context.Background(), "u1", "t1"); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
}
