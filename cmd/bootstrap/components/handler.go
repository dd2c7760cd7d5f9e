package components

import (
	"sportshub/internal/handler"
	"sportshub/internal/handler/api"
	"sportshub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewSubscriptionHandler,
		api.NewChargeHandler,
		api.NewWebhookHandler,
		api.NewNotificationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
