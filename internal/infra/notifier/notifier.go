// Package notifier delivers user notifications after a command commits:
// the message is stored in the user's inbox and then published on the
// user's redis channel.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sportshub/internal/pkg/clock"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
)

const deliveryTimeout = 3 * time.Second

type Store interface {
	Create(ctx context.Context, n shared.Notification, at time.Time) (uuid.UUID, error)
}

type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

type FailureCounter interface {
	NotificationFailed(stage string)
}

// Message is the payload published to subscribers.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Notifier struct {
	store     Store
	publisher Publisher
	prefix    string
	clock     clock.Clock
	failures  FailureCounter
}

var _ shared.Notifier = (*Notifier)(nil)

// New builds a notifier. A nil publisher disables publishing.
func New(store Store, publisher Publisher, prefix string, clk clock.Clock, failures FailureCounter) *Notifier {
	return &Notifier{
		store:     store,
		publisher: publisher,
		prefix:    prefix,
		clock:     clk,
		failures:  failures,
	}
}

func (n *Notifier) Channel(userID uuid.UUID) string {
	return n.prefix + ":" + userID.String()
}

// Notify never fails the caller. The request context may already be done
// once the response is written, so delivery runs on a detached context.
func (n *Notifier) Notify(ctx context.Context, msg shared.Notification) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), deliveryTimeout)
	defer cancel()

	at := n.clock.Now()
	id, err := n.store.Create(ctx, msg, at)
	if err != nil {
		n.fail(ctx, "store", msg, err)
		return
	}

	if n.publisher == nil {
		return
	}

	payload, err := json.Marshal(Message{
		ID:        id,
		Type:      string(msg.Type),
		Title:     msg.Title,
		Message:   msg.Message,
		Link:      msg.Link,
		CreatedAt: at,
	})
	if err != nil {
		n.fail(ctx, "encode", msg, err)
		return
	}
	if err := n.publisher.Publish(ctx, n.Channel(msg.UserID), payload); err != nil {
		n.fail(ctx, "publish", msg, err)
	}
}

func (n *Notifier) fail(ctx context.Context, stage string, msg shared.Notification, err error) {
	slog.WarnContext(ctx, "notification delivery failed",
		"stage", stage,
		"type", msg.Type,
		"user_id", msg.UserID,
		"error", err)
	if n.failures != nil {
		n.failures.NotificationFailed(stage)
	}
}
