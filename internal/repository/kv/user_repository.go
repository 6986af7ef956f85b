package kv

import (
	"context"
	"strings"

	"glint-backend/internal/domain"
)

type userRepository struct {
	users *Collection[domain.User]
}

func NewUserRepository(store Store) domain.UserRepository {
	return &userRepository{users: NewCollection[domain.User](store, "users")}
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	return r.users.All(ctx)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	all, err := r.users.All(ctx)
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

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	all, err := r.users.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Email, email) {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Save replaces the record with the same id, or appends when the user is
// new.
func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	all, err := r.users.All(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range all {
		if all[i].ID == user.ID {
			all[i] = *user
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *user)
	}
	return r.users.Replace(ctx, all)
}

func (r *userRepository) SaveAll(ctx context.Context, users []domain.User) error {
	return r.users.Replace(ctx, users)
}
