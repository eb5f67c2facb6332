package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/role"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"
)

type RoleHandler struct {
	uc usecase.RoleUsecase
}

func NewRoleHandler(uc usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

func (h *RoleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me/role", h.CallerRole)
	r.Get("/me/admin", h.IsCallerAdmin)
	r.Put("/admin/roles/:id", h.Assign)
}

func (h *RoleHandler) CallerRole(c fiber.Ctx) error {
	caller := middleware.CallerFrom(c)
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RoleResponse{
		Role:    h.uc.CallerRole(caller),
		IsAdmin: h.uc.IsCallerAdmin(caller),
	})
}

func (h *RoleHandler) IsCallerAdmin(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.IsCallerAdmin(middleware.CallerFrom(c)))
}

func (h *RoleHandler) Assign(c fiber.Ctx) error {
	var req dto.AssignRoleRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	r, err := role.Parse(req.Role)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	id := strings.Clone(c.Params("id"))
	if err := h.uc.Assign(c.Context(), middleware.CallerFrom(c), id, r); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RoleResponse{
		Role:    r,
		IsAdmin: r == role.Admin,
	})
}
