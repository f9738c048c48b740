// Package memory provides in-process account and secret stores used when no
// database DSN is configured, and by tests. Data does not survive a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
	"github.com/google/uuid"
)

// Store holds users and secrets behind a single RWMutex.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	secrets map[string][]*models.Secret
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		byEmail: make(map[string]*models.User),
		secrets: make(map[string][]*models.Secret),
		now:     time.Now,
	}
}

// Users returns the account-store view of s.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Secrets returns the secret-store view of s.
func (s *Store) Secrets() *SecretRepository { return &SecretRepository{s: s} }

type UserRepository struct{ s *Store }

// Create fails with common.ErrDuplicateKey if the email is taken; the check
// and the insert happen under one lock, like a unique index.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.byEmail[user.Email]; ok {
		return nil, common.ErrDuplicateKey
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = r.s.now()
	r.s.byEmail[stored.Email] = &stored

	out := stored
	return &out, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

type SecretRepository struct{ s *Store }

func (r *SecretRepository) Create(ctx context.Context, secret *models.Secret) (*models.Secret, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *secret
	stored.ID = uuid.NewString()
	stored.CreatedAt = r.s.now()
	r.s.secrets[stored.OwnerID] = append(r.s.secrets[stored.OwnerID], &stored)

	out := stored
	return &out, nil
}

// ListByOwner returns copies in insertion order.
func (r *SecretRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Secret, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	src := r.s.secrets[ownerID]
	result := make([]*models.Secret, 0, len(src))
	for _, sec := range src {
		c := *sec
		result = append(result, &c)
	}
	return result, nil
}
