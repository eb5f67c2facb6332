package handler

import (
	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/profiles/:id/matches", h.FindMatches)
	r.Get("/matches", h.Discover)
}

func (h *MatchHandler) FindMatches(c fiber.Ctx) error {
	ms, err := h.uc.FindMatches(c.Context(), middleware.CallerFrom(c), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, ms)
}

func (h *MatchHandler) Discover(c fiber.Ctx) error {
	partners, err := h.uc.Discover(c.Context(), middleware.CallerFrom(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPartners(partners))
}
