// Package notifications publishes catalog events over Redis pub/sub.
package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"time"

	"toolverse/internal/middleware"
	"toolverse/internal/observability"

	"github.com/redis/go-redis/v9"
)

// SubmissionsChannel carries one message per accepted community submission.
const SubmissionsChannel = "catalog:submissions"

// Submission kinds
const (
	KindTool     = "tool"
	KindBlogPost = "blog_post"
)

// Submission is the payload published when a tool or blog post is created.
type Submission struct {
	Kind        string    `json:"kind"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	SubmittedBy string    `json:"submittedBy,omitempty"`
	At          time.Time `json:"at"`
}

// Notifier provides helpers to publish notifications into Redis channels
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
// A nil client turns every publish into a no-op.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishSubmission announces a new submission on SubmissionsChannel.
func (n *Notifier) PublishSubmission(ctx context.Context, s Submission) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}

	ctx, span := observability.TraceRedisOperation(ctx, "publish")
	defer span.End()

	if err := n.rdb.Publish(ctx, SubmissionsChannel, payload).Err(); err != nil {
		span.RecordError(err)
		observability.NotificationsPublished.WithLabelValues(SubmissionsChannel, "error").Inc()
		return err
	}
	observability.NotificationsPublished.WithLabelValues(SubmissionsChannel, "ok").Inc()
	return nil
}

// StartSubmissionSubscriber subscribes to SubmissionsChannel and calls onMessage for
// each decodable payload until ctx is cancelled.
func (n *Notifier) StartSubmissionSubscriber(ctx context.Context, onMessage func(Submission)) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	sub := n.rdb.Subscribe(ctx, SubmissionsChannel)
	// Wait for the subscription confirmation so no publish after return is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return err
	}
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var s Submission
				if err := json.Unmarshal([]byte(msg.Payload), &s); err != nil {
					middleware.Logger.Warn("dropping malformed submission event", slog.String("error", err.Error()))
					continue
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							middleware.Logger.Error("panic in submission subscriber",
								slog.Any("panic", r),
								slog.String("stack", string(debug.Stack())),
							)
						}
					}()
					onMessage(s)
				}()
			}
		}
	}()

	return nil
}
