package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/dmitrijs2005/gophsecrets/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretService_List(t *testing.T) {
	r := &fakeSecretsRepo{listOut: []*models.Secret{{ID: "s1", OwnerID: "u1", Content: "a"}}}
	s := NewSecretService(nil, &fakeRepoManager{s: r})

	got, err := s.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "u1", r.listFor)
}

func TestSecretService_ListError(t *testing.T) {
	r := &fakeSecretsRepo{listErr: errBoom}
	s := NewSecretService(nil, &fakeRepoManager{s: r})

	_, err := s.List(context.Background(), "u1")
	assert.ErrorIs(t, err, common.ErrPersistence)
}

func TestSecretService_Create(t *testing.T) {
	r := &fakeSecretsRepo{}
	s := NewSecretService(nil, &fakeRepoManager{s: r})

	got, err := s.Create(context.Background(), "u1", "my note")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	require.NotNil(t, r.created)
	assert.Equal(t, "u1", r.created.OwnerID)
	assert.Equal(t, "my note", r.created.Content)
}

func TestSecretService_CreateRejectsBlank(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t"} {
		r := &fakeSecretsRepo{}
		s := NewSecretService(nil, &fakeRepoManager{s: r})

		_, err := s.Create(context.Background(), "u1", content)
		assert.ErrorIs(t, err, common.ErrEmptySecret)
		assert.Nil(t, r.created)
	}
}

func TestSecretService_CreateError(t *testing.T) {
	r := &fakeSecretsRepo{createErr: errBoom}
	s := NewSecretService(nil, &fakeRepoManager{s: r})

	_, err := s.Create(context.Background(), "u1", "x")
	assert.ErrorIs(t, err, common.ErrPersistence)
	assert.ErrorIs(t, err, errBoom)
}
