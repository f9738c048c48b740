package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/dmitrijs2005/gophsecrets/internal/dbx"
	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
	secretsrepo "github.com/dmitrijs2005/gophsecrets/internal/server/repositories/secrets"
	usersrepo "github.com/dmitrijs2005/gophsecrets/internal/server/repositories/users"
)

// --- helpers ---

type fakeUsersRepo struct {
	getOut *models.User
	getErr error

	createErr error
	created   *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *u
	out.ID = "u1"
	f.created = &out
	return &out, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return nil, common.ErrorNotFound
	}
	return f.getOut, nil
}

type fakeSecretsRepo struct {
	listOut []*models.Secret
	listErr error
	listFor string

	createErr error
	created   *models.Secret
}

func (f *fakeSecretsRepo) Create(ctx context.Context, s *models.Secret) (*models.Secret, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *s
	out.ID = "s1"
	f.created = &out
	return &out, nil
}

func (f *fakeSecretsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Secret, error) {
	f.listFor = ownerID
	return f.listOut, f.listErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	s *fakeSecretsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.u }
func (m *fakeRepoManager) Secrets(dbx.DBTX) secretsrepo.Repository      { return m.s }

// fakeHasher prefixes the password so hashes are predictable.
type fakeHasher struct {
	err error
}

func (h fakeHasher) Hash(p string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + p, nil
}

func (h fakeHasher) Verify(p, hash string) bool { return hash == "hashed:"+p }

type fakeIssuer struct {
	err  error
	last [3]string
}

func (f *fakeIssuer) Issue(id, email, name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.last = [3]string{id, email, name}
	return "tok-" + id, nil
}

var errBoom = errors.New("boom")
