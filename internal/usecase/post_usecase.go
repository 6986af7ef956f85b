package usecase

import (
	"context"
	"fmt"
	"sort"

	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"
)

// recommendedLimit bounds how many high-engagement stranger posts are mixed
// into a personal feed.
const recommendedLimit = 10

type postUsecase struct {
	postRepo    domain.PostRepository
	commentRepo domain.CommentRepository
	userRepo    domain.UserRepository
	notifier    *Notifier
}

func NewPostUsecase(postRepo domain.PostRepository, commentRepo domain.CommentRepository, userRepo domain.UserRepository, notifier *Notifier) domain.PostUsecase {
	return &postUsecase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// GetPosts is the anonymous/public view: engagement score descending,
// newest first on ties.
func (u *postUsecase) GetPosts(ctx context.Context) ([]domain.Post, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	return u.rankedPosts(ctx)
}

func (u *postUsecase) rankedPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := u.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		si, sj := posts[i].EngagementScore(), posts[j].EngagementScore()
		if si != sj {
			return si > sj
		}
		return posts[i].Timestamp > posts[j].Timestamp
	})
	return posts, nil
}

func (u *postUsecase) GetPostByID(ctx context.Context, id string) (*domain.Post, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	return u.postRepo.GetByID(ctx, id)
}

func (u *postUsecase) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if post.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}
	if post.CreatorID == "" {
		return nil, apperror.BadRequest("CreatorID is required")
	}
	switch post.Type {
	case domain.PostImage, domain.PostVideo, domain.PostCaseStudy, domain.PostCode:
	default:
		return nil, apperror.BadRequest("Invalid post type")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	// Snapshot the creator's display fields. Denormalized at creation,
	// never refreshed after a profile edit.
	if creator, err := u.userRepo.GetByID(ctx, post.CreatorID); err == nil {
		post.CreatorName = creator.Name
		post.CreatorAvatar = creator.Avatar
	}

	post.ID = newID("post")
	post.Likes = []string{}
	post.Saves = []string{}
	post.CommentCount = 0
	post.Timestamp = nowMillis()

	if err := u.postRepo.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ToggleLikePost flips the caller's membership in the post's like set. The
// like notification fires only on the like-in transition.
func (u *postUsecase) ToggleLikePost(ctx context.Context, postID, userID string) (*domain.Post, error) {
	if userID == "" {
		return nil, apperror.BadRequest("UserID is required")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	posts, err := u.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if posts[i].ID != postID {
			continue
		}

		liked := false
		for _, id := range posts[i].Likes {
			if id == userID {
				liked = true
				break
			}
		}

		if liked {
			kept := posts[i].Likes[:0:0]
			for _, id := range posts[i].Likes {
				if id != userID {
					kept = append(kept, id)
				}
			}
			posts[i].Likes = kept
		} else {
			posts[i].Likes = append(posts[i].Likes, userID)
			if err := u.notifier.Emit(ctx, &domain.Notification{
				UserID:     posts[i].CreatorID,
				Type:       domain.NotifLike,
				Message:    fmt.Sprintf("Someone liked your post: %s", posts[i].Title),
				FromUserID: userID,
			}); err != nil {
				return nil, err
			}
		}

		if err := u.postRepo.SaveAll(ctx, posts); err != nil {
			return nil, err
		}
		updated := posts[i]
		return &updated, nil
	}

	return nil, apperror.NotFound("Post not found")
}

func (u *postUsecase) GetComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	comments, err := u.commentRepo.GetByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Timestamp > comments[j].Timestamp
	})
	return comments, nil
}

// AddComment appends and increments the parent post's comment counter in
// the same critical section.
func (u *postUsecase) AddComment(ctx context.Context, postID, userID, userName, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, apperror.BadRequest("Comment text is required")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	posts, err := u.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range posts {
		if posts[i].ID == postID {
			posts[i].CommentCount++
			found = true
			break
		}
	}
	if !found {
		return nil, apperror.NotFound("Post not found")
	}

	comment := &domain.Comment{
		ID:        newID("comm"),
		PostID:    postID,
		UserID:    userID,
		UserName:  userName,
		Timestamp: nowMillis(),
		Text:      text,
	}
	if user, err := u.userRepo.GetByID(ctx, userID); err == nil {
		comment.UserAvatar = user.Avatar
	}

	if err := u.commentRepo.Insert(ctx, comment); err != nil {
		return nil, err
	}
	if err := u.postRepo.SaveAll(ctx, posts); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetFeedForUser merges following-authored, self-authored and the top
// recommended stranger posts, deduplicates by id, and orders the result by
// timestamp descending. Engagement decides only which stranger posts are
// eligible, never the final ordering.
func (u *postUsecase) GetFeedForUser(ctx context.Context, userID string) ([]domain.Post, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	allPosts, err := u.rankedPosts(ctx)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		// Unknown user falls back to the public ranking.
		return allPosts, nil
	}

	following := make(map[string]bool, len(user.Following))
	for _, id := range user.Following {
		following[id] = true
	}

	var followingPosts, ownPosts, otherPosts []domain.Post
	for _, p := range allPosts {
		switch {
		case following[p.CreatorID]:
			followingPosts = append(followingPosts, p)
		case p.CreatorID == userID:
			ownPosts = append(ownPosts, p)
		default:
			otherPosts = append(otherPosts, p)
		}
	}

	// Recommendation pool ranks by likes + comments only (saves do not
	// count here) and is capped so stranger content cannot dominate.
	sort.SliceStable(otherPosts, func(i, j int) bool {
		return len(otherPosts[i].Likes)+otherPosts[i].CommentCount >
			len(otherPosts[j].Likes)+otherPosts[j].CommentCount
	})
	if len(otherPosts) > recommendedLimit {
		otherPosts = otherPosts[:recommendedLimit]
	}

	seen := make(map[string]bool)
	var feed []domain.Post
	for _, p := range append(append(followingPosts, ownPosts...), otherPosts...) {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		feed = append(feed, p)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp > feed[j].Timestamp
	})
	return feed, nil
}
