package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimsContext(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)

	c := &Claims{UserID: "u1", Email: "a@b.com", Name: "A"}
	got, ok := ClaimsFromContext(WithClaims(context.Background(), c))
	assert.True(t, ok)
	assert.Same(t, c, got)

	_, ok = ClaimsFromContext(WithClaims(context.Background(), nil))
	assert.False(t, ok)
}
