package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sardorbek/bozor/api-gateway/config"
	"github.com/sardorbek/bozor/api-gateway/health"
	"github.com/sardorbek/bozor/api-gateway/middleware"
	"github.com/sardorbek/bozor/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
	RequireAuth bool
}

// Routes holds all route definitions. Catalog browsing is public; admin
// checks on product mutations happen in the storefront itself.
var Routes = []RouteDefinition{
	{
		Prefix:      "/auth",
		ServiceName: "storefront",
		Description: "Authentication endpoints (login, register)",
		RequireAuth: false,
	},
	{
		Prefix:      "/api/products",
		ServiceName: "storefront",
		Description: "Catalog browsing and product management",
		RequireAuth: false,
	},
	{
		Prefix:      "/api/cart",
		ServiceName: "storefront",
		Description: "Shopping cart",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/likes",
		ServiceName: "storefront",
		Description: "Wishlist",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/checkout",
		ServiceName: "storefront",
		Description: "Checkout wizard",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/orders",
		ServiceName: "storefront",
		Description: "Order placement and history",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/profile",
		ServiceName: "storefront",
		Description: "Account profile",
		RequireAuth: true,
	},
	{
		Prefix:      "/users",
		ServiceName: "storefront",
		Description: "Current account info",
		RequireAuth: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, reverseProxy *proxy.ReverseProxy) {
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed instance health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllInstances(ctx))
	})

	// Load balancer stats
	app.Get("/gateway/stats", func(c *fiber.Ctx) error {
		stats := make(map[string]interface{})
		for name, lb := range reverseProxy.LoadBalancers() {
			stats[name] = lb.Stats()
		}
		return c.JSON(stats)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Bozor API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler
	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
