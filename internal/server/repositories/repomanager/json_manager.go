package repomanager

import (
	"fmt"

	"github.com/dmitrijs2005/taskhub/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskhub/internal/server/repositories/users"
)

type JSONRepositoryManager struct {
	users users.Repository
	tasks tasks.Repository
}

func (m *JSONRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *JSONRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

// Close is a no-op: the file stores hold no open handles between
// operations.
func (m *JSONRepositoryManager) Close() error {
	return nil
}

func NewJSONRepositoryManager(usersPath, tasksPath string) (*JSONRepositoryManager, error) {

	userRepo, err := users.NewJSONRepository(usersPath)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	taskRepo, err := tasks.NewJSONRepository(tasksPath)
	if err != nil {
		return nil, fmt.Errorf("task repo creation error: %w", err)
	}

	return &JSONRepositoryManager{users: userRepo, tasks: taskRepo}, nil
}
