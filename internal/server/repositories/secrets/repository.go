package secrets

import (
	"context"

	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
)

// Repository is the secret store: owner-scoped insert and list.
type Repository interface {
	Create(ctx context.Context, secret *models.Secret) (*models.Secret, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Secret, error)
}
