package handler

import (
	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me/profile", h.GetMine)
	r.Put("/me/profile", h.SaveMine)
	r.Post("/me/profile", h.CreateOrUpdate)

	r.Get("/profiles", h.List)
	r.Get("/profiles/:id", h.Get)
	r.Get("/users/:id/profile", h.Get)
	r.Get("/skills/search", h.SearchSkills)
}

func (h *ProfileHandler) GetMine(c fiber.Ctx) error {
	p, err := h.uc.GetCallerProfile(c.Context(), middleware.CallerFrom(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *ProfileHandler) SaveMine(c fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	saved, err := h.uc.SaveCallerProfile(c.Context(), middleware.CallerFrom(c), profile.Profile{
		Name:          req.Name,
		Bio:           req.Bio,
		OfferedSkills: req.OfferedSkills,
		WantedSkills:  req.WantedSkills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, saved)
}

func (h *ProfileHandler) CreateOrUpdate(c fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	saved, err := h.uc.CreateOrUpdateProfile(c.Context(), middleware.CallerFrom(c), req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, saved)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.GetProfile(c.Context(), middleware.CallerFrom(c), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *ProfileHandler) List(c fiber.Ctx) error {
	entries, err := h.uc.ListProfiles(c.Context(), middleware.CallerFrom(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, entries)
}

func (h *ProfileHandler) SearchSkills(c fiber.Ctx) error {
	hits, err := h.uc.SearchSkills(c.Context(), middleware.CallerFrom(c), c.Query("q"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillHits(hits))
}
