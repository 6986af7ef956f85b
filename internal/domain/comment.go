package domain

import "context"

// Comment is append-only: comments are never edited or deleted, and each
// creation increments the parent post's CommentCount.
type Comment struct {
	ID         string `json:"id"`
	PostID     string `json:"postId"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar,omitempty"`
	Text       string `json:"text"`
	Timestamp  int64  `json:"timestamp"`
}

type CommentRepository interface {
	GetByPost(ctx context.Context, postID string) ([]Comment, error)
	Insert(ctx context.Context, comment *Comment) error
}
