//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"sportshub/internal/domain/billing"
	"sportshub/internal/domain/booking"
	"sportshub/internal/domain/catalog"
	"sportshub/internal/domain/money"
	"sportshub/internal/domain/subscription"
	"sportshub/internal/handler/api"
	resdto "sportshub/internal/handler/dto/response"
	"sportshub/internal/handler/middleware"
	"sportshub/internal/pkg/errs"
	"sportshub/internal/usecase/commands"
	"sportshub/internal/usecase/queries"
	"sportshub/tests/common/httptest"
	commandsmock "sportshub/tests/mock/commands"
	queriesmock "sportshub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "test-webhook-secret"

type BillingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockSubs     *commandsmock.MockSubscriptionCommands
	mockPayments *commandsmock.MockPaymentCommands
	mockSubQ     *queriesmock.MockSubscriptionQueries
	mockChargeQ  *queriesmock.MockChargeQueries
	mockNotifyQ  *queriesmock.MockNotificationQueries
}

func (s *BillingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSubs = commandsmock.NewMockSubscriptionCommands(s.mockCtrl)
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockSubQ = queriesmock.NewMockSubscriptionQueries(s.mockCtrl)
	s.mockChargeQ = queriesmock.NewMockChargeQueries(s.mockCtrl)
	s.mockNotifyQ = queriesmock.NewMockNotificationQueries(s.mockCtrl)

	subs := api.NewSubscriptionHandler(s.mockSubs, s.mockSubQ)
	charges := api.NewChargeHandler(s.mockPayments, s.mockChargeQ)
	webhooks := api.NewWebhookHandler(s.mockPayments)
	notifications := api.NewNotificationHandler(s.mockNotifyQ)

	s.router.POST("/subscriptions", fakeAuth, subs.Subscribe)
	s.router.GET("/subscriptions/current", fakeAuth, subs.Current)
	s.router.POST("/subscriptions/:id/cancel", fakeAuth, subs.Cancel)
	s.router.GET("/charges/:id", fakeAuth, charges.Get)
	s.router.POST("/charges/:id/checkout", fakeAuth, charges.Checkout)
	s.router.POST("/webhooks/payments", middleware.RequireWebhookSecret(webhookSecret), webhooks.Payments)
	s.router.GET("/notifications", fakeAuth, notifications.List)
}

func (s *BillingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBillingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}

func pendingSubscription() (*subscription.Subscription, *billing.Charge) {
	price := money.FromCents(9990)
	plan := catalog.NewPlan(uuid.New(), "Monthly", true, &price, 1)
	sub, _ := subscription.New(actorID, plan, true, start)
	inst := billing.InstallmentPlan{Count: 1, IntervalMonths: 1}
	charge, _ := billing.NewCharge(billing.Reference{Kind: billing.RefSubscription, ID: sub.ID()}, actorID, price, start, &inst, start)
	return sub, charge
}

// ================================================================================
// Subscriptions
// ================================================================================

func (s *BillingHandlerTestSuite) TestSubscribe() {
	planID := uuid.New()

	s.Run("success: defaults to one installment with auto renew", func() {
		sub, charge := pendingSubscription()
		s.mockSubs.EXPECT().
			Subscribe(gomock.Any(), commands.SubscribeInput{PlanID: planID, Installments: 1, AutoRenew: true}, student()).
			Return(&commands.SubscriptionResult{Subscription: sub, Charge: charge}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/subscriptions", map[string]any{"plan_id": planID}, token)

		var got resdto.SubscriptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(sub.ID(), got.ID)
		s.Equal("pending", got.Status)
		s.Require().NotNil(got.Charge)
		s.Equal("subscription", got.Charge.ReferenceKind)
		s.Equal(int64(9990), got.Charge.TotalCents)
	})

	s.Run("success: explicit installments and auto renew off", func() {
		sub, charge := pendingSubscription()
		s.mockSubs.EXPECT().
			Subscribe(gomock.Any(), commands.SubscribeInput{PlanID: planID, Installments: 3, AutoRenew: false}, gomock.Any()).
			Return(&commands.SubscriptionResult{Subscription: sub, Charge: charge}, nil)

		body := map[string]any{"plan_id": planID, "installments": 3, "auto_renew": false}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/subscriptions", body, token)
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 zero installments", func() {
		body := map[string]any{"plan_id": planID, "installments": 0}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/subscriptions", body, token)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 409 open subscription exists", func() {
		s.mockSubs.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.WithReason(errs.ErrSubscriptionExists, "user already has an open subscription"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/subscriptions", map[string]any{"plan_id": planID}, token)
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, "subscription_exists")
	})

	s.Run("error: 400 installments do not divide the cycle", func() {
		s.mockSubs.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.WithReason(errs.ErrInvalidInstallments, "installments must divide the cycle"))
		body := map[string]any{"plan_id": planID, "installments": 2}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/subscriptions", body, token)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "invalid_installments")
	})
}

func (s *BillingHandlerTestSuite) TestCancelSubscription() {
	sub, _ := pendingSubscription()
	s.Require().NoError(sub.Cancel(start, actorID))

	s.mockSubs.EXPECT().CancelSubscription(gomock.Any(), sub.ID(), student()).
		Return(&commands.CancelSubscriptionResult{Subscription: sub, ChargesCancelled: 1}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/subscriptions/"+sub.ID().String()+"/cancel", nil, token)

	var got resdto.CancelSubscriptionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Equal("cancelled", got.Subscription.Status)
	s.Equal(1, got.ChargesCancelled)
}

func (s *BillingHandlerTestSuite) TestCurrentSubscription() {
	s.Run("success: events are listed", func() {
		s.mockSubQ.EXPECT().Current(gomock.Any(), actorID).Return(&queries.SubscriptionView{
			ID: uuid.New(), PlanName: "Monthly", CycleMonths: 1, Status: "active", NextDueDate: start.AddDate(0, 1, 0),
			Events: []queries.SubscriptionEventView{{ID: uuid.New(), Type: "created", Payload: json.RawMessage(`{"plan":"Monthly"}`), OccurredAt: start}},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/current", nil, token)

		var got resdto.CurrentSubscriptionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("Monthly", got.PlanName)
		s.Require().Len(got.Events, 1)
		s.Equal("created", got.Events[0].Type)
		s.JSONEq(`{"plan":"Monthly"}`, string(got.Events[0].Payload))
	})

	s.Run("error: 404 without open subscription", func() {
		s.mockSubQ.EXPECT().Current(gomock.Any(), actorID).
			Return(nil, errs.WithReason(errs.ErrNotFound, "subscription not found"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/subscriptions/current", nil, token)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "not_found")
	})
}

// ================================================================================
// Charges
// ================================================================================

func (s *BillingHandlerTestSuite) TestGetCharge() {
	id := uuid.New()
	paidAt := start.Add(time.Hour)
	s.mockChargeQ.EXPECT().GetByID(gomock.Any(), student(), id).Return(&queries.ChargeView{
		ID: id, ReferenceKind: "court_booking", TotalCents: 6000, PaidCents: 6000, Status: "paid", DueDate: start,
		Installments: []queries.InstallmentView{{ID: uuid.New(), Number: 1, AmountCents: 6000, Status: "paid", DueDate: start, PaidAt: &paidAt}},
		Payments:     []queries.PaymentView{{ID: uuid.New(), Provider: "simulation", ExternalID: "simulation_x", AmountCents: 6000, Status: "approved"}},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/charges/"+id.String(), nil, token)

	var got resdto.ChargeResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Equal("paid", got.Status)
	s.Require().Len(got.Installments, 1)
	s.Require().NotNil(got.Installments[0].PaidAt)
	s.True(got.Installments[0].PaidAt.Equal(paidAt))
	s.Require().Len(got.Payments, 1)
	s.Equal("simulation_x", got.Payments[0].ExternalID)
}

func (s *BillingHandlerTestSuite) TestCheckout() {
	res := courtReservation(booking.StatusPending)
	charge := chargeFor(res)
	payment, err := billing.NewPayment(charge.ID(), charge.NextPayable(), billing.ProviderSimulation, start)
	s.Require().NoError(err)

	s.Run("success", func() {
		s.mockPayments.EXPECT().Checkout(gomock.Any(), charge.ID(), student()).Return(payment, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/charges/"+charge.ID().String()+"/checkout", nil, token)

		var got resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(payment.ID(), got.PaymentID)
		s.Equal(payment.ExternalID(), got.ExternalID)
		s.Equal("pending", got.Status)
		s.Equal(int64(6000), got.AmountCents)
	})

	s.Run("error: 422 charge not open", func() {
		s.mockPayments.EXPECT().Checkout(gomock.Any(), charge.ID(), gomock.Any()).
			Return(nil, errs.WithReason(errs.ErrInvalidTransition, "charge is cancelled"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/charges/"+charge.ID().String()+"/checkout", nil, token)
		httptest.AssertErrorKind(s.T(), rec, http.StatusUnprocessableEntity, "invalid_transition")
	})
}

// ================================================================================
// Webhook
// ================================================================================

func (s *BillingHandlerTestSuite) TestPaymentWebhook() {
	body := []byte(`{"event_id":"evt_1","payment_id":"simulation_abc","status":"approved"}`)
	headers := map[string]string{middleware.WebhookSecretHeader: webhookSecret}

	s.Run("success: raw body is kept for the event log", func() {
		paymentID, chargeID := uuid.New(), uuid.New()
		s.mockPayments.EXPECT().
			ApplyPaymentEvent(gomock.Any(), commands.PaymentEventInput{
				EventID: "evt_1", ExternalPaymentID: "simulation_abc", Status: "approved", Payload: body,
			}).
			Return(&commands.PaymentEventResult{PaymentID: paymentID, PaymentStatus: "approved", ChargeID: chargeID, ChargeStatus: "paid"}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", body, headers)

		var got resdto.PaymentEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.False(got.Duplicate)
		s.Equal(paymentID, got.PaymentID)
		s.Equal("paid", got.ChargeStatus)
	})

	s.Run("success: duplicate is acknowledged", func() {
		s.mockPayments.EXPECT().ApplyPaymentEvent(gomock.Any(), gomock.Any()).
			Return(&commands.PaymentEventResult{Duplicate: true}, nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", body, headers)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"duplicate":true`)
	})

	s.Run("error: 401 wrong secret", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", body,
			map[string]string{middleware.WebhookSecretHeader: "guess"})
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 401 missing secret", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", body, nil)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 400 malformed json", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", []byte(`{"event_id":`), headers)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 missing event id", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments",
			[]byte(`{"payment_id":"simulation_abc","status":"approved"}`), headers)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), `"field":"event_id"`)
	})

	s.Run("error: 422 overpayment", func() {
		s.mockPayments.EXPECT().ApplyPaymentEvent(gomock.Any(), gomock.Any()).
			Return(nil, errs.WithReason(errs.ErrOverpayment, "installment already paid"))
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", body, headers)
		httptest.AssertErrorKind(s.T(), rec, http.StatusUnprocessableEntity, "overpayment")
	})

	s.Run("error: 404 unknown payment", func() {
		s.mockPayments.EXPECT().ApplyPaymentEvent(gomock.Any(), gomock.Any()).
			Return(nil, errs.WithReason(errs.ErrNotFound, "payment not found"))
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/payments", body, headers)
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "not_found")
	})
}

// ================================================================================
// Notifications
// ================================================================================

func (s *BillingHandlerTestSuite) TestNotifications() {
	readAt := start
	s.mockNotifyQ.EXPECT().List(gomock.Any(), actorID, 10).Return([]*queries.NotificationView{
		{ID: uuid.New(), Type: "payment_approved", Title: "Payment approved", CreatedAt: start},
		{ID: uuid.New(), Type: "reservation_created", Title: "Reservation created", ReadAt: &readAt, CreatedAt: start},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/notifications?limit=10", nil, token)

	var got struct {
		Notifications []resdto.NotificationResponse `json:"notifications"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Require().Len(got.Notifications, 2)
	s.Equal("payment_approved", got.Notifications[0].Type)
	s.False(got.Notifications[0].Read)
	s.True(got.Notifications[1].Read)
}
