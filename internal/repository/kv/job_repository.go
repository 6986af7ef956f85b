package kv

import (
	"context"

	"glint-backend/internal/domain"
)

type jobRepository struct {
	jobs *Collection[domain.Job]
}

func NewJobRepository(store Store) domain.JobRepository {
	return &jobRepository{jobs: NewCollection[domain.Job](store, "jobs")}
}

func (r *jobRepository) GetAll(ctx context.Context) ([]domain.Job, error) {
	return r.jobs.All(ctx)
}

func (r *jobRepository) Insert(ctx context.Context, job *domain.Job) error {
	all, err := r.jobs.All(ctx)
	if err != nil {
		return err
	}
	return r.jobs.Replace(ctx, append([]domain.Job{*job}, all...))
}
