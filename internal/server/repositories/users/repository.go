package users

import (
	"context"

	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
)

// Repository is the account store. GetUserByEmail returns common.ErrorNotFound
// for an unknown email; Create returns common.ErrDuplicateKey when the email
// is already stored.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
