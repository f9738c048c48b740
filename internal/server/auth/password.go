package auth

import (
	"fmt"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes passwords one way and checks candidates against
// stored hashes. Verify reports a mismatch as false, never as an error.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt (salt is embedded in the hash).
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using common.BcryptCost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: common.BcryptCost}
}

// NewBcryptHasherWithCost is meant for tests that want bcrypt.MinCost.
func NewBcryptHasherWithCost(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrHashing, err)
	}
	return string(b), nil
}

// Verify relies on bcrypt's constant-time comparison. A malformed hash is
// treated as a mismatch.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
