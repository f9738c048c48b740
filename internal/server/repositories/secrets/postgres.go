// Package secrets provides the PostgreSQL-backed store for user notes.
package secrets

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophsecrets/internal/dbx"
	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
)

// PostgresRepository implements secret storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the secret and fills ID and CreatedAt.
func (r *PostgresRepository) Create(ctx context.Context, secret *models.Secret) (*models.Secret, error) {
	query := `
		INSERT INTO secrets (owner_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, secret.OwnerID, secret.Content).Scan(&secret.ID, &secret.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return secret, nil
}

// ListByOwner returns the owner's secrets, oldest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Secret, error) {
	query := `
		SELECT id, owner_id, content, created_at FROM secrets
		WHERE owner_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select secrets: %w", err)
	}
	defer rows.Close()

	var result []*models.Secret
	for rows.Next() {
		var item models.Secret
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Content, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
