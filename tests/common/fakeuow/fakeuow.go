//go:build unit || e2e

// Package fakeuow is an in-memory unit of work for use case tests. Writes
// made inside Within are only visible to others once fn returns nil.
package fakeuow

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/subscription"
	"sportshub/internal/infra"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type state struct {
	reservations  map[uuid.UUID]*booking.Reservation
	charges       map[uuid.UUID]*billing.Charge
	payments      map[uuid.UUID]*billing.Payment
	subscriptions map[uuid.UUID]*subscription.Subscription
	events        map[uuid.UUID][]subscription.Event
	webhooks      map[string]shared.WebhookEvent
	locks         []string
}

func newState() *state {
	return &state{
		reservations:  map[uuid.UUID]*booking.Reservation{},
		charges:       map[uuid.UUID]*billing.Charge{},
		payments:      map[uuid.UUID]*billing.Payment{},
		subscriptions: map[uuid.UUID]*subscription.Subscription{},
		events:        map[uuid.UUID][]subscription.Event{},
		webhooks:      map[string]shared.WebhookEvent{},
	}
}

func (s *state) clone() *state {
	out := &state{
		reservations:  maps.Clone(s.reservations),
		charges:       maps.Clone(s.charges),
		payments:      maps.Clone(s.payments),
		subscriptions: maps.Clone(s.subscriptions),
		events:        map[uuid.UUID][]subscription.Event{},
		webhooks:      maps.Clone(s.webhooks),
		locks:         slices.Clone(s.locks),
	}
	for k, v := range s.events {
		out.events[k] = slices.Clone(v)
	}
	return out
}

// UoW serialises transactions with a mutex, which is enough to exercise the
// use cases' control flow.
type UoW struct {
	mu        sync.Mutex
	resources map[catalog.Ref]*catalog.Resource
	committed *state

	// ReservationCreateErr, when set, is returned by the next reservation insert.
	ReservationCreateErr error
	// Commits counts successful Within calls.
	Commits int
}

var _ shared.UnitOfWork = (*UoW)(nil)

func New(resources ...*catalog.Resource) *UoW {
	u := &UoW{
		resources: map[catalog.Ref]*catalog.Resource{},
		committed: newState(),
	}
	for _, r := range resources {
		u.resources[r.Ref()] = r
	}
	return u
}

func (u *UoW) AddResource(r *catalog.Resource) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.resources[r.Ref()] = r
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.committed.clone()
	if err := fn(ctx, &fakeTx{uow: u, st: work}); err != nil {
		return err
	}
	u.committed = work
	u.Commits++
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

// CommandReads reads committed state outside any transaction.
func (u *UoW) CommandReads() shared.CommandReads {
	return &reads{uow: u, st: func() *state {
		u.mu.Lock()
		defer u.mu.Unlock()
		return u.committed
	}}
}

// Seed helpers write straight into committed state.

func (u *UoW) SeedReservation(r *booking.Reservation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.committed.reservations[r.ID()] = cloneReservation(r)
}

func (u *UoW) SeedCharge(c *billing.Charge) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.committed.charges[c.ID()] = cloneCharge(c)
}

func (u *UoW) SeedPayment(p *billing.Payment) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.committed.payments[p.ID()] = clonePayment(p)
}

func (u *UoW) SeedSubscription(s *subscription.Subscription) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.committed.events[s.ID()] = append(u.committed.events[s.ID()], s.PullEvents()...)
	u.committed.subscriptions[s.ID()] = cloneSubscription(s)
}

// Accessors return copies of committed state.

func (u *UoW) Reservation(id uuid.UUID) *booking.Reservation {
	u.mu.Lock()
	defer u.mu.Unlock()
	if r, ok := u.committed.reservations[id]; ok {
		return cloneReservation(r)
	}
	return nil
}

func (u *UoW) Reservations() []*booking.Reservation {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*booking.Reservation, 0, len(u.committed.reservations))
	for _, r := range u.committed.reservations {
		out = append(out, cloneReservation(r))
	}
	return out
}

func (u *UoW) Charge(id uuid.UUID) *billing.Charge {
	u.mu.Lock()
	defer u.mu.Unlock()
	if c, ok := u.committed.charges[id]; ok {
		return cloneCharge(c)
	}
	return nil
}

func (u *UoW) ChargesFor(refID uuid.UUID) []*billing.Charge {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []*billing.Charge
	for _, c := range u.committed.charges {
		if c.Reference().ID == refID {
			out = append(out, cloneCharge(c))
		}
	}
	slices.SortFunc(out, func(a, b *billing.Charge) int { return a.DueDate().Compare(b.DueDate()) })
	return out
}

func (u *UoW) Payment(id uuid.UUID) *billing.Payment {
	u.mu.Lock()
	defer u.mu.Unlock()
	if p, ok := u.committed.payments[id]; ok {
		return clonePayment(p)
	}
	return nil
}

func (u *UoW) Subscription(id uuid.UUID) *subscription.Subscription {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.committed.subscriptions[id]; ok {
		return cloneSubscription(s)
	}
	return nil
}

func (u *UoW) SubscriptionEvents(id uuid.UUID) []subscription.EventType {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []subscription.EventType
	for _, e := range u.committed.events[id] {
		out = append(out, e.Type)
	}
	return out
}

func (u *UoW) WebhookEvents() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.committed.webhooks)
}

func (u *UoW) Locks() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.committed.locks)
}

type fakeTx struct {
	uow *UoW
	st  *state
}

func (t *fakeTx) Reservations() shared.ReservationRepository   { return &reservationRepo{t} }
func (t *fakeTx) Charges() shared.ChargeRepository             { return &chargeRepo{t} }
func (t *fakeTx) Payments() shared.PaymentRepository           { return &paymentRepo{t} }
func (t *fakeTx) Subscriptions() shared.SubscriptionRepository { return &subscriptionRepo{t} }
func (t *fakeTx) Locks() shared.LockRepository                 { return &lockRepo{t} }
func (t *fakeTx) DB() sqlc.DBTX                                { return nil }
func (t *fakeTx) Reads() shared.CommandReads {
	return &reads{uow: t.uow, st: func() *state { return t.st }}
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", pgx.ErrNoRows, infra.KindNotFound)
}

type reservationRepo struct{ tx *fakeTx }

func (r *reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	if err := r.tx.uow.ReservationCreateErr; err != nil {
		r.tx.uow.ReservationCreateErr = nil
		return uuid.Nil, err
	}
	r.tx.st.reservations[res.ID()] = cloneReservation(res)
	return res.ID(), nil
}

func (r *reservationRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Reservation, error) {
	res, ok := r.tx.st.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return cloneReservation(res), nil
}

func (r *reservationRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, res *booking.Reservation) error {
	if _, ok := r.tx.st.reservations[res.ID()]; !ok {
		return notFound("reservation")
	}
	r.tx.st.reservations[res.ID()] = cloneReservation(res)
	return nil
}

type chargeRepo struct{ tx *fakeTx }

func (r *chargeRepo) Create(_ context.Context, _ sqlc.DBTX, c *billing.Charge) error {
	r.tx.st.charges[c.ID()] = cloneCharge(c)
	return nil
}

func (r *chargeRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*billing.Charge, error) {
	c, ok := r.tx.st.charges[id]
	if !ok {
		return nil, notFound("charge")
	}
	return cloneCharge(c), nil
}

func (r *chargeRepo) ListByReferenceForUpdate(_ context.Context, _ sqlc.DBTX, ref billing.Reference) ([]*billing.Charge, error) {
	var out []*billing.Charge
	for _, c := range r.tx.st.charges {
		if c.Reference() == ref {
			out = append(out, cloneCharge(c))
		}
	}
	return out, nil
}

func (r *chargeRepo) Save(_ context.Context, _ sqlc.DBTX, c *billing.Charge) error {
	if _, ok := r.tx.st.charges[c.ID()]; !ok {
		return notFound("charge")
	}
	r.tx.st.charges[c.ID()] = cloneCharge(c)
	return nil
}

type paymentRepo struct{ tx *fakeTx }

func (r *paymentRepo) Create(_ context.Context, _ sqlc.DBTX, p *billing.Payment) error {
	r.tx.st.payments[p.ID()] = clonePayment(p)
	return nil
}

func (r *paymentRepo) FindByExternalIDForUpdate(_ context.Context, _ sqlc.DBTX, provider, externalID string) (*billing.Payment, error) {
	for _, p := range r.tx.st.payments {
		if p.Provider() == provider && p.ExternalID() == externalID {
			return clonePayment(p), nil
		}
	}
	return nil, notFound("payment")
}

func (r *paymentRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, p *billing.Payment) error {
	if _, ok := r.tx.st.payments[p.ID()]; !ok {
		return notFound("payment")
	}
	r.tx.st.payments[p.ID()] = clonePayment(p)
	return nil
}

func (r *paymentRepo) RecordWebhookEvent(_ context.Context, _ sqlc.DBTX, evt shared.WebhookEvent) (bool, error) {
	key := evt.Provider + ":" + evt.EventID
	if _, ok := r.tx.st.webhooks[key]; ok {
		return false, nil
	}
	r.tx.st.webhooks[key] = evt
	return true, nil
}

type subscriptionRepo struct{ tx *fakeTx }

func (r *subscriptionRepo) Create(_ context.Context, _ sqlc.DBTX, s *subscription.Subscription) error {
	r.tx.st.events[s.ID()] = append(r.tx.st.events[s.ID()], s.PullEvents()...)
	r.tx.st.subscriptions[s.ID()] = cloneSubscription(s)
	return nil
}

func (r *subscriptionRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*subscription.Subscription, error) {
	s, ok := r.tx.st.subscriptions[id]
	if !ok {
		return nil, notFound("subscription")
	}
	return cloneSubscription(s), nil
}

func (r *subscriptionRepo) Save(_ context.Context, _ sqlc.DBTX, s *subscription.Subscription) error {
	if _, ok := r.tx.st.subscriptions[s.ID()]; !ok {
		return notFound("subscription")
	}
	r.tx.st.events[s.ID()] = append(r.tx.st.events[s.ID()], s.PullEvents()...)
	r.tx.st.subscriptions[s.ID()] = cloneSubscription(s)
	return nil
}

func (r *subscriptionRepo) ListDueForUpdate(_ context.Context, _ sqlc.DBTX, now time.Time, limit int32) ([]*subscription.Subscription, error) {
	var out []*subscription.Subscription
	for _, s := range r.tx.st.subscriptions {
		if s.Status() == subscription.StatusActive && !s.NextDueDate().After(now) {
			out = append(out, cloneSubscription(s))
		}
	}
	slices.SortFunc(out, func(a, b *subscription.Subscription) int { return a.NextDueDate().Compare(b.NextDueDate()) })
	if len(out) > int(limit) {
		out = out[:limit]
	}
	return out, nil
}

type lockRepo struct{ tx *fakeTx }

func (r *lockRepo) Acquire(_ context.Context, _ sqlc.DBTX, keys ...string) error {
	r.tx.st.locks = append(r.tx.st.locks, keys...)
	return nil
}

func (r *lockRepo) LockClassOccurrence(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if _, ok := r.tx.uow.resources[catalog.Ref{Kind: catalog.KindClassOccurrence, ID: id}]; !ok {
		return notFound("class occurrence")
	}
	r.tx.st.locks = append(r.tx.st.locks, "class_occurrence_row:"+id.String())
	return nil
}

type reads struct {
	uow *UoW
	st  func() *state
}

func (r *reads) Resource(_ context.Context, ref catalog.Ref) (*catalog.Resource, error) {
	res, ok := r.uow.resources[ref]
	if !ok {
		return nil, notFound(ref.Kind.String())
	}
	return res, nil
}

func (r *reads) Occupancy(_ context.Context, ref catalog.Ref, window booking.TimeSlot) ([]booking.Occupancy, error) {
	var out []booking.Occupancy
	for _, res := range r.st().reservations {
		if !res.Status().Holding() || !res.Slot().Overlaps(window) {
			continue
		}
		if slices.Contains(res.Occupies(), ref) {
			out = append(out, booking.Occupancy{
				ReservationID: res.ID(),
				Resource:      ref,
				Slot:          res.Slot(),
				Status:        res.Status(),
			})
		}
	}
	return out, nil
}

func (r *reads) ActiveEnrollments(_ context.Context, occurrenceID uuid.UUID) (int, error) {
	n := 0
	for _, res := range r.st().reservations {
		if res.Kind() == booking.KindClassEnrollment && res.ResourceID() == occurrenceID && res.Status().Holding() {
			n++
		}
	}
	return n, nil
}

func (r *reads) HasActiveEnrollment(_ context.Context, occurrenceID, userID uuid.UUID) (bool, error) {
	for _, res := range r.st().reservations {
		if res.Kind() == booking.KindClassEnrollment && res.ResourceID() == occurrenceID &&
			res.UserID() == userID && res.Status().Holding() {
			return true, nil
		}
	}
	return false, nil
}

func (r *reads) HasOpenSubscription(_ context.Context, userID uuid.UUID) (bool, error) {
	for _, s := range r.st().subscriptions {
		if s.UserID() == userID && s.Status().Open() {
			return true, nil
		}
	}
	return false, nil
}

func cloneReservation(r *booking.Reservation) *booking.Reservation {
	return booking.ReconstructReservation(
		r.ID(), r.Kind(), r.ResourceID(), r.CourtID(), r.UserID(), r.Slot(),
		r.Total(), r.Status(), r.Notes(), r.CreatedAt(), r.UpdatedAt(),
	)
}

func cloneCharge(c *billing.Charge) *billing.Charge {
	insts := make([]*billing.Installment, len(c.Installments()))
	for i, inst := range c.Installments() {
		insts[i] = billing.ReconstructInstallment(inst.ID(), inst.Number(), inst.Amount(), inst.Status(), inst.DueDate(), inst.PaidAt())
	}
	return billing.ReconstructCharge(
		c.ID(), c.Reference(), c.UserID(), c.Total(), c.Paid(), c.Status(),
		c.DueDate(), insts, c.CreatedAt(), c.UpdatedAt(),
	)
}

func clonePayment(p *billing.Payment) *billing.Payment {
	return billing.ReconstructPayment(
		p.ID(), p.ChargeID(), p.InstallmentID(), p.Provider(), p.ExternalID(),
		p.Amount(), p.Status(), p.CreatedAt(), p.UpdatedAt(),
	)
}

func cloneSubscription(s *subscription.Subscription) *subscription.Subscription {
	return subscription.Reconstruct(
		s.ID(), s.UserID(), s.PlanID(), s.CycleMonths(), s.Status(), s.StartDate(),
		s.EndDate(), s.NextDueDate(), s.AutoRenew(), s.CreatedAt(), s.UpdatedAt(),
	)
}
