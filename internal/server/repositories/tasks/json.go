package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/filex"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/google/uuid"
)

// JSONRepository persists tasks as one JSON array in one file. Every
// operation reads the whole file, mutates the collection in memory, and
// rewrites the whole file. The mutex is held for the full
// read-modify-write cycle so concurrent writers cannot lose updates.
type JSONRepository struct {
	path string
	mu   sync.Mutex
}

// NewJSONRepository prepares a file-backed task store at path, creating
// parent directories as needed. The file itself is created lazily on the
// first write.
func NewJSONRepository(path string) (*JSONRepository, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}
	return &JSONRepository{path: path}, nil
}

// read loads the collection. A missing or unparsable file yields an empty
// collection: corrupt state degrades to "no records" instead of failing
// every operation.
func (r *JSONRepository) read() []*models.Task {
	content, err := os.ReadFile(r.path)
	if err != nil {
		return []*models.Task{}
	}

	var items []*models.Task
	if err := json.Unmarshal(content, &items); err != nil {
		return []*models.Task{}
	}

	return items
}

func (r *JSONRepository) write(items []*models.Task) error {
	content, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling tasks: %w", err)
	}

	if err := os.WriteFile(r.path, content, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", r.path, err)
	}

	return nil
}

func (r *JSONRepository) Create(_ context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = uuid.NewString()

	items := r.read()
	items = append(items, task)

	if err := r.write(items); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *JSONRepository) FindByUser(_ context.Context, userID string) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*models.Task{}
	for _, t := range r.read() {
		if t.UserID == userID {
			result = append(result, t)
		}
	}

	return result, nil
}

func (r *JSONRepository) FindByID(_ context.Context, id string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.read() {
		if t.ID == id {
			return t, nil
		}
	}

	return nil, common.ErrNotFound
}

// Update replaces the supplied fields on the matching record. An absent
// id returns common.ErrNotFound without performing a write.
func (r *JSONRepository) Update(_ context.Context, id string, upd *models.TaskUpdate) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.read()

	for _, t := range items {
		if t.ID != id {
			continue
		}

		if upd.Name != nil {
			t.Name = *upd.Name
		}
		if upd.DueDate != nil {
			t.DueDate = *upd.DueDate
		}
		if upd.Priority != nil {
			t.Priority = *upd.Priority
		}

		if err := r.write(items); err != nil {
			return nil, err
		}
		return t, nil
	}

	return nil, common.ErrNotFound
}

// Delete filters out the matching id and always rewrites, so deleting an
// absent id behaves the same as deleting an existing one.
func (r *JSONRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.read()

	remaining := make([]*models.Task, 0, len(items))
	for _, t := range items {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}

	return r.write(remaining)
}
