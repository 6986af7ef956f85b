package kv

import (
	"context"

	"glint-backend/internal/domain"
)

type commentRepository struct {
	comments *Collection[domain.Comment]
}

func NewCommentRepository(store Store) domain.CommentRepository {
	return &commentRepository{comments: NewCollection[domain.Comment](store, "comments")}
}

func (r *commentRepository) GetByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	all, err := r.comments.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Comment
	for _, c := range all {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *commentRepository) Insert(ctx context.Context, comment *domain.Comment) error {
	all, err := r.comments.All(ctx)
	if err != nil {
		return err
	}
	return r.comments.Replace(ctx, append([]domain.Comment{*comment}, all...))
}
