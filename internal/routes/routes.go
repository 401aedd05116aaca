package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/idcaller/internal/config"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/idcaller/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	gatherer prometheus.Gatherer,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	lookupHandler *handlers.LookupHandler,
	contactHandler *handlers.ContactHandler,
	spamHandler *handlers.SpamHandler,
) {
	app.Get("/", healthHandler.Root)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api")

	// General API rate limiter per IP
	api.Use(limiter.New(limiter.Config{
		Max:               cfg.RateLimitPerMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Credential endpoints get a stricter limit
	authLimit := limiter.New(limiter.Config{
		Max:               cfg.AuthRateLimit,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/register", authLimit, authHandler.Register)
	api.Post("/login", authLimit, authHandler.Login)

	protect := middleware.JWTProtected(cfg)
	api.Post("/contact", protect, contactHandler.AddContact)
	api.Post("/spam", protect, spamHandler.MarkSpam)
	api.Get("/search/name", protect, lookupHandler.SearchByName)
	api.Get("/search/number", protect, lookupHandler.SearchByNumber)
}
