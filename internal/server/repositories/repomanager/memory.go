package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/feastkeeper/internal/dbx"
	"github.com/dmitrijs2005/feastkeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager hands out one shared in-memory user store and
// ignores the database handle.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}
