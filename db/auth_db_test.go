//go:build integration

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/Kotlang/accountGo/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
)

func newTestAuthDb(t *testing.T) *AuthDb {
	t.Helper()
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := Connect(ctx, uri)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	return NewAuthDb(client, "auth_test")
}

func TestAuthDb_DeleteById(t *testing.T) {
	ctx := context.Background()
	authDb := newTestAuthDb(t)
	login := authDb.Login().(*LoginRepository)
	users := authDb.Users().(*ProfileRepository)

	userId := uuid.NewString()
	require.NoError(t, <-login.Save(ctx, &models.LoginModel{UserId: userId, Email: "user@example.com", UserType: "default"}))
	require.NoError(t, <-users.Save(ctx, &models.ProfileModel{LoginId: userId, Name: "User"}))

	t.Run("deletes existing identity and profile", func(t *testing.T) {
		assert.NoError(t, <-login.DeleteById(ctx, userId))
		assert.NoError(t, <-users.DeleteById(ctx, userId))

		assert.False(t, login.IsExistsById(ctx, userId))
		assert.False(t, users.IsExistsById(ctx, userId))
	})

	t.Run("unknown identity fails", func(t *testing.T) {
		err := <-login.DeleteById(ctx, userId)
		assert.True(t, errors.Is(err, ErrIdentityNotFound))
	})

	t.Run("missing profile document is not an error", func(t *testing.T) {
		assert.NoError(t, <-users.DeleteById(ctx, userId))
	})
}
