package converter

import (
	"sportshub/internal/domain/subscription"
	sqlc "sportshub/internal/infra/sqlc/generated"
	"sportshub/internal/pkg/pgconv"
)

func SubscriptionToCreateParams(s *subscription.Subscription) sqlc.CreateSubscriptionParams {
	return sqlc.CreateSubscriptionParams{
		ID:          s.ID(),
		UserID:      s.UserID(),
		PlanID:      s.PlanID(),
		CycleMonths: int32(s.CycleMonths()), // #nosec G115 -- cycles are a handful of months
		Status:      s.Status().String(),
		StartDate:   pgconv.TimeToPgtype(s.StartDate()),
		EndDate:     pgconv.TimePtrToPgtype(s.EndDate()),
		NextDueDate: pgconv.TimeToPgtype(s.NextDueDate()),
		AutoRenew:   s.AutoRenew(),
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SubscriptionToUpdateParams(s *subscription.Subscription) sqlc.UpdateSubscriptionParams {
	return sqlc.UpdateSubscriptionParams{
		ID:          s.ID(),
		Status:      s.Status().String(),
		EndDate:     pgconv.TimePtrToPgtype(s.EndDate()),
		NextDueDate: pgconv.TimeToPgtype(s.NextDueDate()),
		AutoRenew:   s.AutoRenew(),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SubscriptionToDomain(row sqlc.Subscription) *subscription.Subscription {
	return subscription.Reconstruct(
		row.ID,
		row.UserID,
		row.PlanID,
		int(row.CycleMonths),
		subscription.Status(row.Status),
		pgconv.TimeFromPgtype(row.StartDate),
		pgconv.TimePtrFromPgtype(row.EndDate),
		pgconv.TimeFromPgtype(row.NextDueDate),
		row.AutoRenew,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func EventToInsertParams(s *subscription.Subscription, evt subscription.Event) sqlc.InsertSubscriptionEventParams {
	payload := []byte(evt.Payload)
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	return sqlc.InsertSubscriptionEventParams{
		SubscriptionID: s.ID(),
		Type:           evt.Type.String(),
		Payload:        payload,
		OccurredAt:     pgconv.TimeToPgtype(evt.OccurredAt),
	}
}
