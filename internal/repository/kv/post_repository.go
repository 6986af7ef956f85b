package kv

import (
	"context"

	"glint-backend/internal/domain"
)

type postRepository struct {
	posts *Collection[domain.Post]
}

func NewPostRepository(store Store) domain.PostRepository {
	return &postRepository{posts: NewCollection[domain.Post](store, "posts")}
}

func (r *postRepository) GetAll(ctx context.Context) ([]domain.Post, error) {
	return r.posts.All(ctx)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	all, err := r.posts.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Insert prepends so the stored document stays newest-first, matching the
// collection layout readers expect. Queries still sort explicitly.
func (r *postRepository) Insert(ctx context.Context, post *domain.Post) error {
	all, err := r.posts.All(ctx)
	if err != nil {
		return err
	}
	return r.posts.Replace(ctx, append([]domain.Post{*post}, all...))
}

func (r *postRepository) SaveAll(ctx context.Context, posts []domain.Post) error {
	return r.posts.Replace(ctx, posts)
}
