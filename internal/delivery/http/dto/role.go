package dto

import "skill-swap/internal/domain/role"

type RoleResponse struct {
	Role    role.Role `json:"role"`
	IsAdmin bool      `json:"is_admin"`
}

type AssignRoleRequest struct {
	Role string `json:"role"`
}
