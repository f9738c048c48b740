package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophsecrets/internal/dbx"
	"github.com/dmitrijs2005/gophsecrets/internal/server/repositories/secrets"
	"github.com/dmitrijs2005/gophsecrets/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX and owns schema setup.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Secrets(db dbx.DBTX) secrets.Repository
}
