package handler

import (
	"net/http"

	"sportshub/internal/domain/user"
	"sportshub/internal/handler/api"
	"sportshub/internal/handler/middleware"
	"sportshub/internal/infra/metrics"
	"sportshub/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Metrics        *metrics.Metrics
	AuthMiddleware *middleware.AuthMiddleware

	Availability  *api.AvailabilityHandler
	Reservations  *api.ReservationHandler
	Subscriptions *api.SubscriptionHandler
	Charges       *api.ChargeHandler
	Webhooks      *api.WebhookHandler
	Notifications *api.NotificationHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	auth := p.AuthMiddleware

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		webhooks := apiGroup.Group("/webhooks")
		webhooks.Use(middleware.RequireWebhookSecret(p.Config.Billing.WebhookSecret))
		addRoutes(webhooks, []route{
			{Method: http.MethodPost, Path: "/payments", Handler: p.Webhooks.Payments},
		})

		authed := apiGroup.Group("")
		authed.Use(auth.RequireAuth())

		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/availability", Handler: p.Availability.Check},
			{Method: http.MethodPost, Path: "/classes/occurrences/:id/enrollments", Handler: p.Reservations.Enroll},
			{Method: http.MethodGet, Path: "/notifications", Handler: p.Notifications.List},
		})

		reservations := authed.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Reservations.Create},
				{Method: http.MethodGet, Path: "", Handler: p.Reservations.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Reservations.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Reservations.Cancel},
				{
					Method:  http.MethodPost,
					Path:    "/:id/status",
					Handler: p.Reservations.Transition,
					Mw:      []gin.HandlerFunc{auth.RequireRole(user.RoleAdmin)},
				},
			})
		}

		subscriptions := authed.Group("/subscriptions")
		{
			addRoutes(subscriptions, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Subscriptions.Subscribe},
				{Method: http.MethodGet, Path: "/current", Handler: p.Subscriptions.Current},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Subscriptions.Cancel},
			})
		}

		charges := authed.Group("/charges")
		{
			addRoutes(charges, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: p.Charges.Get},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: p.Charges.Checkout},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
