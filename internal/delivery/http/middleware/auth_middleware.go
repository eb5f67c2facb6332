package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/usecase"
)

const CtxCallerKey = "caller"

type CallerResolver interface {
	Resolve(ctx context.Context, principal string) (usecase.Caller, error)
}

// AuthMiddleware resolves the caller for every request. A request without an
// Authorization header runs as an anonymous guest; a header carrying a bad
// or expired token is rejected.
type AuthMiddleware struct {
	verifier jwt.Verifier
	resolver CallerResolver
}

func NewAuthMiddleware(verifier jwt.Verifier, resolver CallerResolver) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, resolver: resolver}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			c.Locals(CtxCallerKey, usecase.Anonymous())
			return c.Next()
		}

		token, ok := bearerTokenFromHeader(header)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Invalid authorization header", nil, nil)
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		caller, err := m.resolver.Resolve(c.Context(), claims.Principal())
		if err != nil {
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		c.Locals(CtxCallerKey, caller)
		return c.Next()
	}
}

// CallerFrom returns the resolved caller, or an anonymous guest when the
// auth middleware did not run.
func CallerFrom(c fiber.Ctx) usecase.Caller {
	if caller, ok := c.Locals(CtxCallerKey).(usecase.Caller); ok {
		return caller
	}
	return usecase.Anonymous()
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
