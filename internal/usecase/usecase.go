package usecase

import (
	"context"
	"sync"
	"time"

	"glint-backend/internal/domain"

	"github.com/google/uuid"
)

// storeMu serializes data-engine mutations. The substrate has no
// transactions, and several operations are multi-step read-modify-write
// sequences (comment insert + count increment, bidirectional follow edits,
// status change + notification) whose invariants assume the steps are
// indivisible. Reads take the shared side.
var storeMu sync.RWMutex

func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// CounterPublisher is told which user's unread counters may have changed.
// Implementations must not block and must not touch the store
// synchronously; the caller still holds the write lock.
type CounterPublisher interface {
	NotifyUser(userID string)
}

// Notifier is the fan-out choke point: every notification emitted as a
// side effect of a mutation goes through Emit, which persists the record
// and pings the counter publisher.
type Notifier struct {
	repo      domain.NotificationRepository
	publisher CounterPublisher
}

func NewNotifier(repo domain.NotificationRepository, publisher CounterPublisher) *Notifier {
	return &Notifier{repo: repo, publisher: publisher}
}

// SetPublisher attaches the counter publisher after construction. The
// publisher consumes the notification usecase, which itself needs the
// notifier, so wiring happens in two steps.
func (n *Notifier) SetPublisher(p CounterPublisher) {
	n.publisher = p
}

// Emit persists a notification for its recipient. ID, timestamp and the
// unread flag are assigned here; callers fill the rest. Must be called
// with the store lock held.
func (n *Notifier) Emit(ctx context.Context, notif *domain.Notification) error {
	notif.ID = newID("notif")
	notif.Timestamp = nowMillis()
	notif.Read = false

	if err := n.repo.Insert(ctx, notif); err != nil {
		return err
	}
	if n.publisher != nil {
		n.publisher.NotifyUser(notif.UserID)
	}
	return nil
}

// Ping re-announces a user's counters without persisting anything, used
// after read-marking.
func (n *Notifier) Ping(userID string) {
	if n.publisher != nil {
		n.publisher.NotifyUser(userID)
	}
}
