//go:build unit || e2e

package fakeuow

import (
	"context"
	"strconv"
	"sync"

	"sportshub/internal/usecase/shared"
)

// Notifier captures notifications in memory.
type Notifier struct {
	mu   sync.Mutex
	sent []shared.Notification
}

func (n *Notifier) Notify(_ context.Context, msg shared.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

func (n *Notifier) Sent() []shared.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]shared.Notification(nil), n.sent...)
}

func (n *Notifier) Types() []shared.NotificationType {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]shared.NotificationType, len(n.sent))
	for i, s := range n.sent {
		out[i] = s.Type
	}
	return out
}

// Recorder counts business events by "name:label".
type Recorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *Recorder) inc(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.counts[key]++
}

func (r *Recorder) Count(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[key]
}

func (r *Recorder) ReservationCreated(kind string) {
	r.inc("created:" + kind)
}

func (r *Recorder) BookingConflict(resource string) {
	r.inc("conflict:" + resource)
}

func (r *Recorder) SubscriptionRenewal(outcome string) {
	r.inc("renewal:" + outcome)
}

func (r *Recorder) ReservationCancelled(chargeCancelled bool) {
	r.inc("cancelled:" + strconv.FormatBool(chargeCancelled))
}

func (r *Recorder) WebhookProcessed(status, outcome string) {
	r.inc("webhook:" + status + ":" + outcome)
}
