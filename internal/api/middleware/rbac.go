package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control over the "rol" claim set by Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rol, _ := c.Get("rol").(string)
			if _, ok := allowed[rol]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Acceso denegado"})
			}
			return next(c)
		}
	}
}
