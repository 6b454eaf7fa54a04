// Package repomanager selects and owns the persistence backend. The
// choice between the JSON file stores and PostgreSQL is made once at
// startup from the configured storage mode; the selected backend is
// fixed for the process lifetime.
package repomanager

import (
	"github.com/dmitrijs2005/taskhub/internal/server/config"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/users"
)

// StorageModeJSON selects the file-backed stores. Any other mode value
// (including unset) selects PostgreSQL.
const StorageModeJSON = "json"

type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository
	Close() error
}

// NewRepositoryManager evaluates the storage mode once and constructs
// the matching backend for both stores.
func NewRepositoryManager(cfg *config.Config) (RepositoryManager, error) {
	if cfg.StorageMode == StorageModeJSON {
		return NewJSONRepositoryManager(cfg.UsersFilePath, cfg.TasksFilePath)
	}
	return NewPostgresRepositoryManager(cfg.DatabaseDSN)
}
