package kv

import (
	"context"

	"glint-backend/internal/domain"
)

type hireRepository struct {
	hires *Collection[domain.Hire]
}

func NewHireRepository(store Store) domain.HireRepository {
	return &hireRepository{hires: NewCollection[domain.Hire](store, "hires")}
}

func (r *hireRepository) GetAll(ctx context.Context) ([]domain.Hire, error) {
	return r.hires.All(ctx)
}

func (r *hireRepository) Insert(ctx context.Context, hire *domain.Hire) error {
	all, err := r.hires.All(ctx)
	if err != nil {
		return err
	}
	return r.hires.Replace(ctx, append([]domain.Hire{*hire}, all...))
}

func (r *hireRepository) SaveAll(ctx context.Context, hires []domain.Hire) error {
	return r.hires.Replace(ctx, hires)
}
