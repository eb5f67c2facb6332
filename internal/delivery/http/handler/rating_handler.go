package handler

import (
	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"
)

type RatingHandler struct {
	uc usecase.RatingUsecase
}

func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

func (h *RatingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/ratings", h.Leave)
	r.Get("/users/:id/ratings", h.List)
	r.Get("/users/:id/rating/average", h.Average)
}

func (h *RatingHandler) Leave(c fiber.Ctx) error {
	var req dto.LeaveRatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	left, err := h.uc.Leave(c.Context(), middleware.CallerFrom(c), usecase.LeaveRatingInput{
		To:     req.To,
		Rating: req.Rating,
		Review: req.Review,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, left)
}

func (h *RatingHandler) List(c fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), middleware.CallerFrom(c), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, list)
}

func (h *RatingHandler) Average(c fiber.Ctx) error {
	id := c.Params("id")
	sum, err := h.uc.Average(c.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAverageRating(id, sum))
}
