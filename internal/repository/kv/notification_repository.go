package kv

import (
	"context"

	"glint-backend/internal/domain"
)

type notificationRepository struct {
	notifications *Collection[domain.Notification]
}

func NewNotificationRepository(store Store) domain.NotificationRepository {
	return &notificationRepository{
		notifications: NewCollection[domain.Notification](store, "notifications"),
	}
}

func (r *notificationRepository) GetAll(ctx context.Context) ([]domain.Notification, error) {
	return r.notifications.All(ctx)
}

func (r *notificationRepository) GetByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	all, err := r.notifications.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Notification
	for _, n := range all {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *notificationRepository) Insert(ctx context.Context, n *domain.Notification) error {
	all, err := r.notifications.All(ctx)
	if err != nil {
		return err
	}
	return r.notifications.Replace(ctx, append([]domain.Notification{*n}, all...))
}

func (r *notificationRepository) SaveAll(ctx context.Context, ns []domain.Notification) error {
	return r.notifications.Replace(ctx, ns)
}
