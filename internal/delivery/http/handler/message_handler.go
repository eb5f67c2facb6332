package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"
)

// HeaderPollInterval tells clients how many seconds to wait before fetching
// a conversation again.
const HeaderPollInterval = "X-Poll-Interval"

type MessageHandler struct {
	uc usecase.MessageUsecase
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/messages", h.Send)
	r.Get("/messages/:with", h.Thread)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	msg, err := h.uc.Send(c.Context(), middleware.CallerFrom(c), req.To, req.Content)
	if err != nil {
		return mapUsecaseError(err)
	}
	h.setPollInterval(c)
	return response.Created(c, msg)
}

func (h *MessageHandler) Thread(c fiber.Ctx) error {
	msgs, err := h.uc.Thread(c.Context(), middleware.CallerFrom(c), c.Params("with"))
	if err != nil {
		return mapUsecaseError(err)
	}
	h.setPollInterval(c)
	return response.Success(c, fiber.StatusOK, response.MessageOK, msgs)
}

func (h *MessageHandler) setPollInterval(c fiber.Ctx) {
	secs := int(h.uc.PollInterval().Seconds())
	if secs < 1 {
		secs = 1
	}
	c.Set(HeaderPollInterval, strconv.Itoa(secs))
}
