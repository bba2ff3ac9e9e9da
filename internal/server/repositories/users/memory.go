package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
	"github.com/dmitrijs2005/feastkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in a map guarded by a mutex. Records are
// copied in and out so callers cannot mutate stored state.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) InsertUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return common.ErrorConflict
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.UserName] = *user
	return nil
}

func (r *MemoryRepository) GetUser(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) DeleteUser(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		return common.ErrorNotFound
	}
	delete(r.users, username)
	return nil
}
