package domain

import "context"

type PostType string

const (
	PostImage     PostType = "image"
	PostVideo     PostType = "video"
	PostCaseStudy PostType = "case_study"
	PostCode      PostType = "code"
)

// Post is a portfolio item broadcast to the feed. CreatorName and
// CreatorAvatar are denormalized snapshots taken at creation time and are
// never refreshed after a profile edit. CommentCount mirrors the comment
// collection and is incremented by AddComment in the same mutation.
type Post struct {
	ID            string   `json:"id"`
	CreatorID     string   `json:"creatorId"`
	CreatorName   string   `json:"creatorName"`
	CreatorAvatar string   `json:"creatorAvatar,omitempty"`
	Type          PostType `json:"type"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	SkillTags     []string `json:"skillTags"`
	MediaURL      string   `json:"mediaUrl"`
	Likes         []string `json:"likes"`
	Saves         []string `json:"saves"`
	CommentCount  int      `json:"commentCount"`
	Timestamp     int64    `json:"timestamp"`
}

// EngagementScore ranks posts for the public view: likes, saves and
// comments all count once.
func (p *Post) EngagementScore() int {
	return len(p.Likes) + len(p.Saves) + p.CommentCount
}

type PostRepository interface {
	GetAll(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id string) (*Post, error)
	Insert(ctx context.Context, post *Post) error
	SaveAll(ctx context.Context, posts []Post) error
}

type PostUsecase interface {
	GetPosts(ctx context.Context) ([]Post, error)
	GetPostByID(ctx context.Context, id string) (*Post, error)
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	ToggleLikePost(ctx context.Context, postID, userID string) (*Post, error)
	GetComments(ctx context.Context, postID string) ([]Comment, error)
	AddComment(ctx context.Context, postID, userID, userName, text string) (*Comment, error)
	GetFeedForUser(ctx context.Context, userID string) ([]Post, error)
}
