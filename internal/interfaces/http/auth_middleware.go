package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/pkg/jwt"
)

// Locals keys para usuario y rol en Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
)

type ctxKey string

// roleCtxKey clave del rol dentro del context.Context que viaja a los casos
// de uso. El Authorizer lee de aquí, no de Fiber.
const roleCtxKey ctxKey = "role"

// AuthMiddleware valida el Bearer Token JWT, extrae usuario y rol a c.Locals
// y propaga el rol en el UserContext para la capa de aplicación.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(errBody("MISSING_TOKEN", "Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(errBody("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(errBody("MISSING_TOKEN", "token vacío"))
		}
		username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errBody("INVALID_TOKEN", "token inválido o expirado"))
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		c.SetUserContext(context.WithValue(c.UserContext(), roleCtxKey, role))
		return c.Next()
	}
}

// GetUsername devuelve el usuario del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RoleAuthorizer implementa los puertos Authorizer de los casos de uso
// leyendo el rol que el middleware dejó en el contexto.
type RoleAuthorizer struct {
	// Required rol exigido para mutar. Por defecto "admin".
	Required string
}

// NewRoleAuthorizer construye el autorizador con el rol requerido.
func NewRoleAuthorizer(required string) *RoleAuthorizer {
	return &RoleAuthorizer{Required: required}
}

// CanMutate devuelve nil si el contexto trae el rol requerido.
func (a *RoleAuthorizer) CanMutate(ctx context.Context) error {
	role, _ := ctx.Value(roleCtxKey).(string)
	if role != a.Required {
		return domain.ErrForbidden
	}
	return nil
}
