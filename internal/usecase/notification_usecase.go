package usecase

import (
	"context"
	"sort"

	"glint-backend/internal/domain"
	"glint-backend/pkg/apperror"
)

type notificationUsecase struct {
	notifRepo domain.NotificationRepository
	userRepo  domain.UserRepository
	notifier  *Notifier
}

func NewNotificationUsecase(notifRepo domain.NotificationRepository, userRepo domain.UserRepository, notifier *Notifier) domain.NotificationUsecase {
	return &notificationUsecase{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

func (u *notificationUsecase) GetNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	ns, err := u.notifRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(ns, func(i, j int) bool { return ns[i].Timestamp > ns[j].Timestamp })
	return ns, nil
}

func (u *notificationUsecase) AddNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if n.UserID == "" {
		return nil, apperror.BadRequest("UserID is required")
	}
	switch n.Type {
	case domain.NotifLike, domain.NotifFollow, domain.NotifView,
		domain.NotifJobMatch, domain.NotifMessage, domain.NotifHire:
	default:
		return nil, apperror.BadRequest("Invalid notification type")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	if err := u.notifier.Emit(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// MarkNotificationsAsRead flips the unread flag for the user's
// notifications. The filter selects the message category, the activity
// (non-message) category, or everything when empty.
func (u *notificationUsecase) MarkNotificationsAsRead(ctx context.Context, userID, typeFilter string) error {
	switch typeFilter {
	case "", domain.ReadFilterMessage, domain.ReadFilterActivity:
	default:
		return apperror.BadRequest("Invalid type filter")
	}

	storeMu.Lock()
	defer storeMu.Unlock()

	all, err := u.notifRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].UserID != userID {
			continue
		}
		switch typeFilter {
		case domain.ReadFilterMessage:
			if all[i].Type == domain.NotifMessage {
				all[i].Read = true
			}
		case domain.ReadFilterActivity:
			if all[i].Type != domain.NotifMessage {
				all[i].Read = true
			}
		default:
			all[i].Read = true
		}
	}

	if err := u.notifRepo.SaveAll(ctx, all); err != nil {
		return err
	}
	u.notifier.Ping(userID)
	return nil
}

// GetCounts derives the three badge counters from current state: unread
// message notifications, unread activity notifications, and the number of
// missing critical profile fields.
func (u *notificationUsecase) GetCounts(ctx context.Context, userID string) (*domain.NotificationCounts, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	counts := &domain.NotificationCounts{}

	ns, err := u.notifRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, n := range ns {
		if n.Read {
			continue
		}
		if n.Type == domain.NotifMessage {
			counts.MessageCount++
		} else {
			counts.ActivityCount++
		}
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return counts, nil
	}
	counts.ProfileCount = profileGaps(user)
	return counts, nil
}

// profileGaps counts the missing critical profile fields, one point each.
func profileGaps(user *domain.User) int {
	gaps := 0
	if user.Title == "" {
		gaps++
	}
	if user.Bio == "" {
		gaps++
	}
	if user.Location == "" {
		gaps++
	}
	if user.Avatar == "" {
		gaps++
	}
	if len(user.SkillTags) == 0 {
		gaps++
	}
	if len(user.Projects) == 0 {
		gaps++
	}
	return gaps
}
