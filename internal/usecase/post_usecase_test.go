package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"glint-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "c1", Name: "Alex", Avatar: "a.png"})

	t.Run("Should snapshot creator fields and initialize counters", func(t *testing.T) {
		post, err := e.postUC.CreatePost(ctx, &domain.Post{
			CreatorID: "c1",
			Type:      domain.PostImage,
			Title:     "Brand refresh",
		})
		require.NoError(t, err)

		assert.Equal(t, "Alex", post.CreatorName)
		assert.Equal(t, "a.png", post.CreatorAvatar)
		assert.Empty(t, post.Likes)
		assert.Empty(t, post.Saves)
		assert.Zero(t, post.CommentCount)
		assert.NotZero(t, post.Timestamp)
	})

	t.Run("Should reject unknown post types", func(t *testing.T) {
		_, err := e.postUC.CreatePost(ctx, &domain.Post{CreatorID: "c1", Type: "podcast", Title: "x"})
		assert.Error(t, err)
	})

	t.Run("Should require a title", func(t *testing.T) {
		_, err := e.postUC.CreatePost(ctx, &domain.Post{CreatorID: "c1", Type: domain.PostImage})
		assert.Error(t, err)
	})
}

func TestToggleLikePost(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "c1", Name: "Alex"})

	post, err := e.postUC.CreatePost(ctx, &domain.Post{CreatorID: "c1", Type: domain.PostImage, Title: "Brand refresh"})
	require.NoError(t, err)

	t.Run("Should add the like and notify the creator", func(t *testing.T) {
		updated, err := e.postUC.ToggleLikePost(ctx, post.ID, "fan1")
		require.NoError(t, err)
		assert.Equal(t, []string{"fan1"}, updated.Likes)

		ns := e.notificationsFor(t, "c1")
		require.Len(t, ns, 1)
		assert.Equal(t, domain.NotifLike, ns[0].Type)
		assert.Equal(t, "Someone liked your post: Brand refresh", ns[0].Message)
	})

	t.Run("Should remove the like silently on the second toggle", func(t *testing.T) {
		updated, err := e.postUC.ToggleLikePost(ctx, post.ID, "fan1")
		require.NoError(t, err)
		assert.Empty(t, updated.Likes)
		assert.Len(t, e.notificationsFor(t, "c1"), 1)
	})

	t.Run("Should fail on a missing post", func(t *testing.T) {
		_, err := e.postUC.ToggleLikePost(ctx, "post_missing", "fan1")
		assert.Error(t, err)
	})
}

func TestAddComment(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "c1", Name: "Alex"})
	e.addUser(t, domain.User{ID: "u2", Name: "Sarah", Avatar: "s.png"})

	post, err := e.postUC.CreatePost(ctx, &domain.Post{CreatorID: "c1", Type: domain.PostVideo, Title: "Reel"})
	require.NoError(t, err)

	t.Run("Should keep CommentCount in sync with the comment log", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			_, err := e.postUC.AddComment(ctx, post.ID, "u2", "Sarah", fmt.Sprintf("comment %d", i))
			require.NoError(t, err)
		}

		stored, err := e.postUC.GetPostByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.CommentCount)

		comments, err := e.postUC.GetComments(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "s.png", comments[0].UserAvatar)
	})

	t.Run("Should reject empty text", func(t *testing.T) {
		_, err := e.postUC.AddComment(ctx, post.ID, "u2", "Sarah", "")
		assert.Error(t, err)
	})

	t.Run("Should fail on a missing post", func(t *testing.T) {
		_, err := e.postUC.AddComment(ctx, "post_missing", "u2", "Sarah", "hi")
		assert.Error(t, err)
	})
}

func TestGetPostsRanking(t *testing.T) {
	e := newEngine()
	ctx := context.Background()

	// Saves count toward the public ranking alongside likes and comments.
	insert := func(id string, likes, saves []string, comments int, ts int64) {
		require.NoError(t, e.postRepo.Insert(ctx, &domain.Post{
			ID: id, CreatorID: "c1", Type: domain.PostImage, Title: id,
			Likes: likes, Saves: saves, CommentCount: comments, Timestamp: ts,
		}))
	}
	insert("p_low", nil, nil, 0, 3000)
	insert("p_high", []string{"a", "b"}, []string{"c"}, 2, 1000)
	insert("p_mid", []string{"a"}, nil, 1, 2000)
	insert("p_tie", []string{"b"}, nil, 1, 4000)

	posts, err := e.postUC.GetPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 4)

	ids := []string{posts[0].ID, posts[1].ID, posts[2].ID, posts[3].ID}
	// p_tie and p_mid share a score of 2; the newer one wins the tie.
	assert.Equal(t, []string{"p_high", "p_tie", "p_mid", "p_low"}, ids)
}

func TestGetFeedForUser(t *testing.T) {
	e := newEngine()
	ctx := context.Background()
	e.addUser(t, domain.User{ID: "me", Name: "Me", Following: []string{"friend"}})

	insert := func(id, creator string, likeCount int, ts int64) {
		var likes []string
		for i := 0; i < likeCount; i++ {
			likes = append(likes, fmt.Sprintf("fan%d", i))
		}
		require.NoError(t, e.postRepo.Insert(ctx, &domain.Post{
			ID: id, CreatorID: creator, Type: domain.PostImage, Title: id,
			Likes: likes, Timestamp: ts,
		}))
	}

	insert("friend_new", "friend", 0, 9000)
	insert("friend_old", "friend", 0, 1000)
	insert("own", "me", 0, 5000)
	// Fifteen stranger posts with ascending engagement; only the top ten
	// are eligible for the feed.
	for i := 1; i <= 15; i++ {
		insert(fmt.Sprintf("other%02d", i), fmt.Sprintf("stranger%02d", i), i, int64(i*100))
	}

	t.Run("Should merge following, own, and capped recommendations", func(t *testing.T) {
		feed, err := e.postUC.GetFeedForUser(ctx, "me")
		require.NoError(t, err)
		require.Len(t, feed, 13)

		got := make(map[string]bool, len(feed))
		for _, p := range feed {
			require.False(t, got[p.ID], "duplicate post %s", p.ID)
			got[p.ID] = true
		}
		assert.True(t, got["friend_new"])
		assert.True(t, got["friend_old"])
		assert.True(t, got["own"])
		assert.True(t, got["other15"])
		assert.True(t, got["other06"])
		assert.False(t, got["other05"], "low-engagement stranger posts stay out")

		for i := 1; i < len(feed); i++ {
			require.GreaterOrEqual(t, feed[i-1].Timestamp, feed[i].Timestamp,
				"feed must order by timestamp descending")
		}
		assert.Equal(t, "friend_new", feed[0].ID)
	})

	t.Run("Should fall back to the public ranking for unknown users", func(t *testing.T) {
		feed, err := e.postUC.GetFeedForUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Len(t, feed, 18)
		assert.Equal(t, "other15", feed[0].ID)
	})
}
