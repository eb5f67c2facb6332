package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/delivery/http/routes"
	v1 "skill-swap/internal/delivery/http/routes/v1"
	"skill-swap/internal/pkg/clock"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/usecase"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Usecases groups the operation surface so tests can build an App over any
// store.
type Usecases struct {
	Profiles  usecase.ProfileUsecase
	Matches   usecase.MatchUsecase
	Exchanges usecase.ExchangeUsecase
	Gate      *usecase.AccessGate
	Messages  usecase.MessageUsecase
	Ratings   usecase.RatingUsecase
	Roles     usecase.RoleUsecase
}

func NewUsecases(c *Container) Usecases {
	cfg := c.Config
	gate := usecase.NewAccessGate(c.Store)
	var cache usecase.Cache
	if c.Cache != nil {
		cache = c.Cache
	}
	return Usecases{
		Profiles:  usecase.NewProfileUsecase(c.Store, cache, cfg.Redis.TTL, c.Clock, c.Logger.Named("profiles")),
		Matches:   usecase.NewMatchUsecase(c.Store),
		Exchanges: usecase.NewExchangeUsecase(c.Store, c.Clock, c.Metrics, c.Logger.Named("exchanges")),
		Gate:      gate,
		Messages:  usecase.NewMessageUsecase(c.Store, gate, c.Clock, cfg.Messaging.PollInterval, c.Metrics, c.Logger.Named("messages")),
		Ratings:   usecase.NewRatingUsecase(c.Store, gate, cache, cfg.Redis.TTL, c.Clock, c.Metrics, c.Logger.Named("ratings")),
		Roles:     usecase.NewRoleUsecase(c.Store, cfg.Auth.BootstrapAdmins, c.Clock, c.Logger.Named("roles")),
	}
}

func New(c *Container) *App {
	c.Logger = logger.OrNop(c.Logger)
	if c.Clock == nil {
		c.Clock = clock.NewMonotonic(nil)
	}
	cfg := c.Config
	uc := NewUsecases(c)

	// Params and headers outlive the request in stores and caches, so they
	// must not alias fasthttp's reusable buffers.
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName, Immutable: true})

	registerGlobalMiddleware(f, c)

	authMw := middleware.NewAuthMiddleware(jwt.NewHMACService(cfg.Auth.TokenSecret, cfg.Auth.Issuer), uc.Roles)
	routes.NewRegistry(handler.NewHealthHandler(healthChecks(c)), authMw, v1.Handlers{
		Profile:  handler.NewProfileHandler(uc.Profiles),
		Match:    handler.NewMatchHandler(uc.Matches),
		Exchange: handler.NewExchangeHandler(uc.Exchanges, uc.Gate),
		Message:  handler.NewMessageHandler(uc.Messages),
		Rating:   handler.NewRatingHandler(uc.Ratings),
		Role:     handler.NewRoleHandler(uc.Roles),
	}).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	app.Use(middleware.NewAccessLogMiddleware(c.Logger.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger.Named("http"), c.Sentry).Middleware())
	app.Use(cors.New(cors.Config{
		AllowHeaders:  []string{fiber.HeaderAuthorization, fiber.HeaderContentType, middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID, handler.HeaderPollInterval},
	}))
}

func healthChecks(c *Container) map[string]handler.HealthCheck {
	checks := make(map[string]handler.HealthCheck)
	if c.DB != nil {
		checks["database"] = c.DB.Ping
	}
	return checks
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
