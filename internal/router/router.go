// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware chain
// and every route.
//
// Order matters: the request id and New Relic transaction must exist
// before ContextEnhancer builds the request logger, and the rate limiter
// runs last so a denied request is still logged and traced.
func NewRouter(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	router.Use(
		m.Global.CORS(),
		m.Global.Secure(),
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.RateLimit.Limit(),
	)

	registerSystemRoutes(router, h)
	registerUserRoutes(router, h, m)
	registerAPIRoutes(router, h, m)

	return router
}
