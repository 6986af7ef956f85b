package usecase_test

import (
	"context"
	"testing"
	"time"

	"glint-backend/internal/domain"
	"glint-backend/internal/usecase"
	"glint-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "user1", Name: "Alex", Email: "alex@glint.dev", Role: domain.RoleCreator})

	sessions := auth.NewSessionManager("test-secret", time.Hour)
	authUC := usecase.NewAuthUsecase(e.userRepo, sessions)

	t.Run("Should issue a verifiable session token for a known email", func(t *testing.T) {
		user, token, err := authUC.Login(ctx, "alex@glint.dev")
		require.NoError(t, err)
		assert.Equal(t, "user1", user.ID)
		require.NotEmpty(t, token)

		claims, err := sessions.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user1", claims.Subject)
		assert.Equal(t, "Alex", claims.Name)
		assert.Equal(t, string(domain.RoleCreator), claims.Role)
	})

	t.Run("Should match the email case-insensitively", func(t *testing.T) {
		user, _, err := authUC.Login(ctx, "ALEX@Glint.Dev")
		require.NoError(t, err)
		assert.Equal(t, "user1", user.ID)
	})

	t.Run("Should fail for unknown emails", func(t *testing.T) {
		_, _, err := authUC.Login(ctx, "nobody@glint.dev")
		assert.Error(t, err)
	})

	t.Run("Should require an email", func(t *testing.T) {
		_, _, err := authUC.Login(ctx, "")
		assert.Error(t, err)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := auth.NewSessionManager("different-secret", time.Hour)
		token, err := other.Generate("user1", "Alex", "CREATOR")
		require.NoError(t, err)

		_, err = sessions.Verify(token)
		assert.Error(t, err)
	})
}
