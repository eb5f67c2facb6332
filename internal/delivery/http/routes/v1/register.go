package v1

import (
	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/delivery/http/handler"
)

type Handlers struct {
	Profile  *handler.ProfileHandler
	Match    *handler.MatchHandler
	Exchange *handler.ExchangeHandler
	Message  *handler.MessageHandler
	Rating   *handler.RatingHandler
	Role     *handler.RoleHandler
}

// Register mounts the operation surface. Access rules live in the usecases,
// so every route is reachable by anonymous callers and fails there.
func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(r)
	}
	if h.Exchange != nil {
		h.Exchange.RegisterRoutes(r)
	}
	if h.Message != nil {
		h.Message.RegisterRoutes(r)
	}
	if h.Rating != nil {
		h.Rating.RegisterRoutes(r)
	}
	if h.Role != nil {
		h.Role.RegisterRoutes(r)
	}
}
