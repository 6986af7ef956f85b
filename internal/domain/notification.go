package domain

import "context"

type NotificationType string

const (
	NotifLike     NotificationType = "like"
	NotifFollow   NotificationType = "follow"
	NotifView     NotificationType = "view"
	NotifJobMatch NotificationType = "job_match"
	NotifMessage  NotificationType = "message"
	NotifHire     NotificationType = "hire"
)

// Read filters accepted by MarkNotificationsAsRead. An empty filter marks
// every unread notification for the user.
const (
	ReadFilterMessage  = "message"
	ReadFilterActivity = "activity"
)

// Notification is fanned out to affected recipients as a side effect of
// mutating operations. Read defaults to false at creation.
type Notification struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	Type         NotificationType `json:"type"`
	Message      string           `json:"message"`
	FromUserID   string           `json:"fromUserId,omitempty"`
	FromUserName string           `json:"fromUserName,omitempty"`
	Timestamp    int64            `json:"timestamp"`
	Read         bool             `json:"read"`
}

// NotificationCounts are derived on demand, never stored. MessageCount and
// ActivityCount split unread notifications by type; ProfileCount is the
// number of missing critical profile fields.
type NotificationCounts struct {
	MessageCount  int `json:"messageCount"`
	ActivityCount int `json:"activityCount"`
	ProfileCount  int `json:"profileCount"`
}

type NotificationRepository interface {
	GetAll(ctx context.Context) ([]Notification, error)
	GetByUser(ctx context.Context, userID string) ([]Notification, error)
	Insert(ctx context.Context, n *Notification) error
	SaveAll(ctx context.Context, ns []Notification) error
}

type NotificationUsecase interface {
	GetNotifications(ctx context.Context, userID string) ([]Notification, error)
	AddNotification(ctx context.Context, n *Notification) (*Notification, error)
	MarkNotificationsAsRead(ctx context.Context, userID, typeFilter string) error
	GetCounts(ctx context.Context, userID string) (*NotificationCounts, error)
}
