// Package tasks provides the task store: a common Repository contract
// with PostgreSQL-backed and JSON-file-backed implementations.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	FindByUser(ctx context.Context, userID string) ([]*models.Task, error)
	FindByID(ctx context.Context, id string) (*models.Task, error)

	// Update applies a partial field replace keyed by id and returns the
	// updated record. An id with no matching record yields
	// common.ErrNotFound without any write.
	Update(ctx context.Context, id string, upd *models.TaskUpdate) (*models.Task, error)

	// Delete removes the record with the given id. Deleting an id with no
	// matching record is a no-op success.
	Delete(ctx context.Context, id string) error
}
