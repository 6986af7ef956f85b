package usecase_test

import (
	"context"
	"testing"

	"glint-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUser(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "user1", Name: "Alex"})
	e.addUser(t, domain.User{ID: "user2", Name: "Sarah"})

	t.Run("Should link both sides and notify the target once", func(t *testing.T) {
		_, err := e.userUC.FollowUser(ctx, "user1", "user2")
		require.NoError(t, err)

		follower, err := e.userUC.GetUserByID(ctx, "user1")
		require.NoError(t, err)
		target, err := e.userUC.GetUserByID(ctx, "user2")
		require.NoError(t, err)

		assert.Contains(t, follower.Following, "user2")
		assert.Contains(t, target.Followers, "user1")

		ns := e.notificationsFor(t, "user2")
		require.Len(t, ns, 1)
		assert.Equal(t, domain.NotifFollow, ns[0].Type)
		assert.Equal(t, "Alex started following you", ns[0].Message)
		assert.False(t, ns[0].Read)
	})

	t.Run("Should be idempotent on repeat", func(t *testing.T) {
		_, err := e.userUC.FollowUser(ctx, "user1", "user2")
		require.NoError(t, err)

		follower, err := e.userUC.GetUserByID(ctx, "user1")
		require.NoError(t, err)
		target, err := e.userUC.GetUserByID(ctx, "user2")
		require.NoError(t, err)

		assert.Equal(t, []string{"user2"}, follower.Following)
		assert.Equal(t, []string{"user1"}, target.Followers)
		assert.Len(t, e.notificationsFor(t, "user2"), 1)
	})

	t.Run("Should reject self-follow", func(t *testing.T) {
		_, err := e.userUC.FollowUser(ctx, "user1", "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot follow yourself")
	})

	t.Run("Should unfollow both sides silently", func(t *testing.T) {
		_, err := e.userUC.UnfollowUser(ctx, "user1", "user2")
		require.NoError(t, err)

		follower, err := e.userUC.GetUserByID(ctx, "user1")
		require.NoError(t, err)
		target, err := e.userUC.GetUserByID(ctx, "user2")
		require.NoError(t, err)

		assert.NotContains(t, follower.Following, "user2")
		assert.NotContains(t, target.Followers, "user1")
		assert.Len(t, e.notificationsFor(t, "user2"), 1)
	})
}

func TestUpdateUser(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "user1", Name: "Alex", CreatedAt: 42, Following: []string{"user9"}})

	t.Run("Should keep CreatedAt and the follow graph", func(t *testing.T) {
		updated, err := e.userUC.UpdateUser(ctx, &domain.User{ID: "user1", Name: "Alexandra", Bio: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "Alexandra", updated.Name)
		assert.Equal(t, int64(42), updated.CreatedAt)
		assert.Equal(t, []string{"user9"}, updated.Following)
	})

	t.Run("Should reject a malformed email", func(t *testing.T) {
		_, err := e.userUC.UpdateUser(ctx, &domain.User{ID: "user1", Email: "not-an-email"})
		assert.Error(t, err)
	})

	t.Run("Should fail on unknown user", func(t *testing.T) {
		_, err := e.userUC.UpdateUser(ctx, &domain.User{ID: "ghost"})
		assert.Error(t, err)
	})
}

func TestSearchCreators(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "c1", Name: "Alex Rivera", Role: domain.RoleCreator, SkillTags: []string{"React", "Motion Design"}})
	e.addUser(t, domain.User{ID: "c2", Name: "Jordan Lee", Role: domain.RoleCreator, SkillTags: []string{"Go"}})
	e.addUser(t, domain.User{ID: "h1", Name: "Alexis Corp", Role: domain.RoleHirer, SkillTags: []string{"React"}})

	t.Run("Should only return creators", func(t *testing.T) {
		out, err := e.userUC.SearchCreators(ctx, "alex", nil)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "c1", out[0].ID)
	})

	t.Run("Should match skill tags case-insensitively in the query", func(t *testing.T) {
		out, err := e.userUC.SearchCreators(ctx, "motion", nil)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "c1", out[0].ID)
	})

	t.Run("Should filter by verbatim skill membership", func(t *testing.T) {
		out, err := e.userUC.SearchCreators(ctx, "", []string{"react"})
		require.NoError(t, err)
		assert.Empty(t, out) // tag comparison is exact

		out, err = e.userUC.SearchCreators(ctx, "", []string{"React"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "c1", out[0].ID)
	})

	t.Run("Should require both predicates when both given", func(t *testing.T) {
		out, err := e.userUC.SearchCreators(ctx, "jordan", []string{"React"})
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestAddReview(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "c1", Name: "Alex", Role: domain.RoleCreator})
	e.addUser(t, domain.User{ID: "h1", Name: "Sarah", Avatar: "s.png", Role: domain.RoleHirer})

	t.Run("Should reject out-of-range ratings", func(t *testing.T) {
		_, err := e.userUC.AddReview(ctx, "c1", &domain.Review{ReviewerID: "h1", Rating: 6, Comment: "great"})
		assert.Error(t, err)
	})

	t.Run("Should append the review with reviewer details filled", func(t *testing.T) {
		target, err := e.userUC.AddReview(ctx, "c1", &domain.Review{ReviewerID: "h1", Rating: 5, Comment: "great"})
		require.NoError(t, err)
		require.Len(t, target.Reviews, 1)

		rev := target.Reviews[0]
		assert.Equal(t, "Sarah", rev.ReviewerName)
		assert.Equal(t, "s.png", rev.ReviewerAvatar)
		assert.Equal(t, "c1", rev.TargetID)
		assert.NotEmpty(t, rev.ID)
	})
}
