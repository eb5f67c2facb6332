package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"skill-swap/internal/domain/role"
	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/repository"
)

type RoleUsecase interface {
	// Resolve turns a verified principal into a Caller. An empty principal
	// resolves to an anonymous guest.
	Resolve(ctx context.Context, principal string) (Caller, error)
	CallerRole(c Caller) role.Role
	IsCallerAdmin(c Caller) bool
	Assign(ctx context.Context, c Caller, memberID string, r role.Role) error
}

type Roles struct {
	store  repository.Store
	admins map[string]struct{}
	clock  Clock
	logger *zap.Logger
}

func NewRoleUsecase(store repository.Store, bootstrapAdmins []string, clock Clock, log *zap.Logger) *Roles {
	admins := make(map[string]struct{}, len(bootstrapAdmins))
	for _, a := range bootstrapAdmins {
		if a = strings.TrimSpace(a); a != "" {
			admins[a] = struct{}{}
		}
	}
	return &Roles{
		store:  store,
		admins: admins,
		clock:  clockOrSystem(clock),
		logger: logger.OrNop(log),
	}
}

func (u *Roles) Resolve(ctx context.Context, principal string) (Caller, error) {
	principal = strings.TrimSpace(principal)
	if principal == "" {
		return Anonymous(), nil
	}
	if _, ok := u.admins[principal]; ok {
		return Caller{ID: principal, Role: role.Admin}, nil
	}

	r, ok, err := u.store.Roles().Get(ctx, principal)
	if err != nil {
		return Caller{}, internal(err)
	}
	if !ok {
		r = role.User
	}
	return Caller{ID: principal, Role: r}, nil
}

func (u *Roles) CallerRole(c Caller) role.Role {
	if !c.Authenticated() {
		return role.Guest
	}
	return c.Role
}

func (u *Roles) IsCallerAdmin(c Caller) bool {
	return u.CallerRole(c) == role.Admin
}

func (u *Roles) Assign(ctx context.Context, c Caller, memberID string, r role.Role) error {
	if err := c.Require(role.AssignRoles); err != nil {
		return err
	}
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return invalid("member id is required")
	}
	if _, err := r.MarshalText(); err != nil {
		return validation(err)
	}

	err := u.store.WithinTx(ctx, func(tx repository.Store) error {
		return tx.Roles().Set(ctx, memberID, r, u.clock.Now())
	})
	if err != nil {
		return internal(err)
	}

	u.logger.Info("role assigned",
		zap.String("by", c.ID),
		zap.String("member_id", memberID),
		zap.String("role", r.String()),
	)
	return nil
}
