package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonvale/salon-system/internal/api/metrics"
	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Usuario *domain.Usuario `json:"usuario"`
}

// Login authenticates an administrator and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("El cuerpo de la petición no es válido")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, usuario, err := h.authService.Login(c.Request().Context(), req.Correo, req.Contrasena)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCredencialesInvalidas):
			metrics.LoginTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrAccesoDenegado):
			metrics.LoginTotal.WithLabelValues("forbidden").Inc()
		case errors.Is(err, domain.ErrCuentaInactiva):
			metrics.LoginTotal.WithLabelValues("inactive").Inc()
		}
		return err
	}

	metrics.LoginTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, Usuario: usuario})
}
