// Package services contains server-side business logic. This file implements
// AccountService, which handles registration and login and issues session
// tokens.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/dmitrijs2005/gophsecrets/internal/dbx"
	"github.com/dmitrijs2005/gophsecrets/internal/server/auth"
	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
	"github.com/dmitrijs2005/gophsecrets/internal/server/repositories/repomanager"
)

// AccountService provides authentication-related operations:
// - Register: validate credentials and create users
// - Login: verify credentials and mint a session token
type AccountService struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	tokens      auth.TokenIssuer
}

// NewAccountService constructs an AccountService. db may be nil when the
// repository manager does not need a connection.
func NewAccountService(db dbx.DBTX, m repomanager.RepositoryManager, h auth.PasswordHasher, t auth.TokenIssuer) *AccountService {
	return &AccountService{db: db, repomanager: m, hasher: h, tokens: t}
}

// Register validates the credentials, refuses an email that is already
// stored and persists the new account with a bcrypt hash of the password.
// The existence check and the insert are not atomic; a duplicate key from the
// store is reported as common.ErrEmailTaken as well.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := auth.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrEmailTaken
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateKey) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}
	return u, nil
}

// Login looks the account up by email, checks the password and, on success,
// returns a signed session token together with the account.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrAccountNotFound
		}
		return "", nil, fmt.Errorf("%w: %w", common.ErrPersistence, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return token, user, nil
}
