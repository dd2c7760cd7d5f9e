package middleware

import (
	"log/slog"
	"slices"

	"sportshub/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const RequestIDHeader = "X-Request-ID"

// NewCORSMiddleware always lets browsers send a request id and read it back,
// on top of whatever the deployment configures.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := withHeader(cfg.AllowHeaders, RequestIDHeader)
	exposeHeaders := withHeader(cfg.ExposeHeaders, RequestIDHeader)

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    exposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Any("expose_headers", exposeHeaders))
	return cors.New(corsCfg)
}

func withHeader(headers []string, h string) []string {
	if slices.Contains(headers, h) {
		return headers
	}
	return append(slices.Clone(headers), h)
}
