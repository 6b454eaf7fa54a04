package users

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

// JSONRepository persists users as one JSON array in one file. Every
// operation reads the whole file, mutates the collection in memory, and
// rewrites the whole file. The mutex is held for the full
// read-modify-write cycle so concurrent writers cannot lose updates.
type JSONRepository struct {
	path string
	mu   sync.Mutex
}

// NewJSONRepository prepares a file-backed user store at path, creating
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
func (r *JSONRepository) read() []*models.User {
	content, err := os.ReadFile(r.path)
	if err != nil {
		return []*models.User{}
	}

	var items []*models.User
	if err := json.Unmarshal(content, &items); err != nil {
		return []*models.User{}
	}

	return items
}

func (r *JSONRepository) write(items []*models.User) error {
	content, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling users: %w", err)
	}

	if err := os.WriteFile(r.path, content, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", r.path, err)
	}

	return nil
}

func (r *JSONRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()

	items := r.read()
	items = append(items, user)

	if err := r.write(items); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *JSONRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.read() {
		if u.Email == email {
			return u, nil
		}
	}

	return nil, common.ErrNotFound
}

func (r *JSONRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.read() {
		if u.ID == id {
			return u, nil
		}
	}

	return nil, common.ErrNotFound
}
