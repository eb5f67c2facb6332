package handler

import (
	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"
)

type ExchangeHandler struct {
	uc   usecase.ExchangeUsecase
	gate *usecase.AccessGate
}

func NewExchangeHandler(uc usecase.ExchangeUsecase, gate *usecase.AccessGate) *ExchangeHandler {
	return &ExchangeHandler{uc: uc, gate: gate}
}

func (h *ExchangeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/exchanges")
	grp.Post("/", h.Send)
	grp.Get("/incoming", h.Incoming)
	grp.Get("/outgoing", h.Outgoing)
	grp.Get("/partners", h.Partners)
	grp.Get("/access/:with", h.Access)
	grp.Post("/:from/accept", h.Accept)
}

func (h *ExchangeHandler) Send(c fiber.Ctx) error {
	var req dto.SendExchangeRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	created, err := h.uc.Send(c.Context(), middleware.CallerFrom(c), usecase.SendExchangeInput{
		To:               req.To,
		FromOfferedSkill: req.FromOfferedSkill,
		FromWantedSkill:  req.FromWantedSkill,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, created)
}

func (h *ExchangeHandler) Accept(c fiber.Ctx) error {
	reqs, err := h.uc.Accept(c.Context(), middleware.CallerFrom(c), c.Params("from"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, reqs)
}

func (h *ExchangeHandler) Incoming(c fiber.Ctx) error {
	reqs, err := h.uc.ListIncoming(c.Context(), middleware.CallerFrom(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, reqs)
}

func (h *ExchangeHandler) Outgoing(c fiber.Ctx) error {
	reqs, err := h.uc.ListOutgoing(c.Context(), middleware.CallerFrom(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, reqs)
}

func (h *ExchangeHandler) Partners(c fiber.Ctx) error {
	ids, err := h.uc.ListPartners(c.Context(), middleware.CallerFrom(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PartnersResponse{Partners: ids})
}

func (h *ExchangeHandler) Access(c fiber.Ctx) error {
	access, err := h.gate.Check(c.Context(), middleware.CallerFrom(c), c.Params("with"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.AccessResponse{
		With:       access.With,
		CanMessage: access.CanMessage,
		CanRate:    access.CanRate,
	})
}
