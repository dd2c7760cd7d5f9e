//go:build unit

package api_test

import (
	"net/http"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/money"
	"sportshub/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const token = "bearer-token"

var (
	actorID = uuid.MustParse("6f0c9f1c-7c37-4c9a-9a4e-3f6f9e2b1a01")
	start   = time.Date(2030, 3, 2, 10, 0, 0, 0, time.UTC)
)

// fakeAuth stands in for the JWT middleware: any bearer token is the student
// actorID unless X-Test-Role says otherwise.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	role := user.RoleStudent
	if r := c.GetHeader("X-Test-Role"); r != "" {
		role = user.Role(r)
	}
	c.Set("user_id", actorID)
	c.Set("user_role", role)
	c.Next()
}

func student() user.Actor { return user.Actor{ID: actorID, Role: user.RoleStudent} }

func courtReservation(status booking.Status) *booking.Reservation {
	slot, _ := booking.NewTimeSlot(start, start.Add(time.Hour))
	return booking.ReconstructReservation(
		uuid.New(), booking.KindCourtBooking, uuid.New(), nil, actorID,
		slot, money.FromCents(6000), status, "", start.Add(-24*time.Hour), start.Add(-24*time.Hour),
	)
}

func chargeFor(res *booking.Reservation) *billing.Charge {
	plan := billing.SingleInstallment()
	c, _ := billing.NewCharge(
		billing.Reference{Kind: billing.RefCourtBooking, ID: res.ID()},
		res.UserID(), res.Total(), res.Slot().Start(), &plan, res.CreatedAt(),
	)
	return c
}
