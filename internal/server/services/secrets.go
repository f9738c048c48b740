package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/dmitrijs2005/gophsecrets/internal/dbx"
	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
	"github.com/dmitrijs2005/gophsecrets/internal/server/repositories/repomanager"
)

// SecretService stores and lists secrets for a single owner at a time.
type SecretService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
}

func NewSecretService(db dbx.DBTX, m repomanager.RepositoryManager) *SecretService {
	return &SecretService{db: db, repomanager: m}
}

// List returns the owner's secrets, oldest first.
func (s *SecretService) List(ctx context.Context, ownerID string) ([]*models.Secret, error) {
	items, err := s.repomanager.Secrets(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return items, nil
}

// Create stores content for ownerID. Blank content is rejected with
// common.ErrEmptySecret.
func (s *SecretService) Create(ctx context.Context, ownerID, content string) (*models.Secret, error) {
	if strings.TrimSpace(content) == "" {
		return nil, common.ErrEmptySecret
	}

	item, err := s.repomanager.Secrets(s.db).Create(ctx, &models.Secret{OwnerID: ownerID, Content: content})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return item, nil
}
