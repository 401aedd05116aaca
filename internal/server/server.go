// Package server assembles services, handlers and middleware into a fiber
// app around an injected store.
package server

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/cache"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/config"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/dto"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/routes"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/services"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/store"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
)

type Deps struct {
	Store    store.Store
	Tallies  *cache.TallyCache
	Registry *prometheus.Registry
	// Extra middleware mounted before everything else (e.g. sentry).
	Middleware []fiber.Handler
	// AccessLog toggles fiber's request logger.
	AccessLog bool
}

// New builds the app. Deps.Registry may be nil; a private registry is used.
func New(cfg *config.Config, deps Deps) *fiber.App {
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	spamService := services.NewSpamService(deps.Store, deps.Tallies, m)
	lookupService := services.NewLookupService(deps.Store, spamService, cfg.LookupFanoutLimit, m)
	contactService := services.NewContactService(deps.Store, m)
	authService := services.NewAuthService(deps.Store, cfg)

	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	for _, mw := range deps.Middleware {
		app.Use(mw)
	}
	app.Use(recover.New())
	app.Use(requestid.New())
	if deps.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
		}))
	}
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, reg,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(deps.Store),
		handlers.NewLookupHandler(lookupService),
		handlers.NewContactHandler(contactService),
		handlers.NewSpamHandler(spamService),
	)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
