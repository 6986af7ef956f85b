// Package notify pushes unread-counter refreshes over Redis pub/sub. It
// replaces the original fixed-interval client polling with
// publish-on-mutation; the pull endpoint stays available for consumers
// that cannot subscribe.
package notify

import (
	"context"
	"encoding/json"

	"glint-backend/internal/domain"
	"glint-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "glint:counters:user:"

// Broadcaster recomputes and publishes a user's counters whenever a
// mutation touches their notifications. NotifyUser never blocks; the
// queue drops refreshes under pressure because a newer refresh always
// supersedes older ones.
type Broadcaster struct {
	notifUC domain.NotificationUsecase
	rdb     *redis.Client
	queue   chan string
}

func NewBroadcaster(notifUC domain.NotificationUsecase, rdb *redis.Client) *Broadcaster {
	return &Broadcaster{
		notifUC: notifUC,
		rdb:     rdb,
		queue:   make(chan string, 256),
	}
}

// NotifyUser enqueues a counter refresh for the user. Safe to call from
// inside the engine's critical section.
func (b *Broadcaster) NotifyUser(userID string) {
	select {
	case b.queue <- userID:
	default:
	}
}

// Run drains the queue until the context is canceled.
func (b *Broadcaster) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case userID := <-b.queue:
			b.publish(ctx, userID)
		}
	}
}

func (b *Broadcaster) publish(ctx context.Context, userID string) {
	if b.rdb == nil {
		return
	}
	counts, err := b.notifUC.GetCounts(ctx, userID)
	if err != nil {
		logger.Log.Warn("counter refresh failed", "user_id", userID, "error", err)
		return
	}
	payload, err := json.Marshal(counts)
	if err != nil {
		return
	}
	if err := b.rdb.Publish(ctx, channelPrefix+userID, payload).Err(); err != nil {
		logger.Log.Warn("counter publish failed", "user_id", userID, "error", err)
	}
}
