package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophsecrets/internal/dbx"
	"github.com/dmitrijs2005/gophsecrets/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gophsecrets/internal/server/repositories/secrets"
	"github.com/dmitrijs2005/gophsecrets/internal/server/repositories/users"
)

// MemoryRepositoryManager serves every caller from one in-memory store; the
// DBTX argument is ignored and may be nil.
type MemoryRepositoryManager struct {
	store *memory.Store
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{store: memory.NewStore()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository { return m.store.Users() }

func (m *MemoryRepositoryManager) Secrets(dbx.DBTX) secrets.Repository { return m.store.Secrets() }
