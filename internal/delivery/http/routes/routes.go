package routes

import (
	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	v1 "skill-swap/internal/delivery/http/routes/v1"
)

type Registry struct {
	health *handler.HealthHandler
	auth   *middleware.AuthMiddleware
	v1     v1.Handlers
}

func NewRegistry(health *handler.HealthHandler, auth *middleware.AuthMiddleware, handlers v1.Handlers) *Registry {
	if health == nil {
		health = handler.NewHealthHandler(nil)
	}
	return &Registry{health: health, auth: auth, v1: handlers}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	if r.auth != nil {
		RegisterV1(api.Group("/v1", r.auth.Middleware()), r.v1)
		return
	}
	RegisterV1(api.Group("/v1"), r.v1)
}
