package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

// UsuarioHandler handles HTTP requests for user management.
type UsuarioHandler struct {
	service ports.UsuarioService
}

func NewUsuarioHandler(service ports.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{service: service}
}

type usuarioRequest struct {
	IDUsuario     int       `json:"id_usuario"`
	Nombre        string    `json:"nombre"`
	Correo        string    `json:"correo"`
	Contrasena    string    `json:"contrasena"`
	Telefono      string    `json:"telefono"`
	Rol           string    `json:"rol"`
	Estado        string    `json:"estado"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// List handles GET /api/usuarios.
//
// @Summary      List all users
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Usuario
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c echo.Context) error {
	usuarios, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usuarios)
}

// Get handles GET /api/usuarios/:id.
//
// @Summary      Get a user by id
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.Usuario
// @Failure      404  {object}  map[string]string
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	u, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Create handles POST /api/usuarios.
//
// @Summary      Create a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      usuarioRequest  true  "User details"
// @Success      201   {object}  domain.Usuario
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c echo.Context) error {
	var req usuarioRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("El cuerpo de la petición no es válido")
	}

	u, err := h.service.Create(c.Request().Context(), ports.CreateUsuarioInput{
		Nombre:        req.Nombre,
		Correo:        req.Correo,
		Contrasena:    req.Contrasena,
		Telefono:      req.Telefono,
		Rol:           req.Rol,
		Estado:        req.Estado,
		FechaRegistro: req.FechaRegistro,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/usuarios/%d", u.ID))
	return c.JSON(http.StatusCreated, u)
}

// Update handles PUT /api/usuarios/:id.
//
// @Summary      Update a user
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "User id"
// @Param        body  body      usuarioRequest  true  "User details"
// @Success      200   {object}  domain.Usuario
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req usuarioRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("El cuerpo de la petición no es válido")
	}

	u, err := h.service.Update(c.Request().Context(), id, ports.UpdateUsuarioInput{
		ID:         req.IDUsuario,
		Nombre:     req.Nombre,
		Correo:     req.Correo,
		Contrasena: req.Contrasena,
		Telefono:   req.Telefono,
		Rol:        req.Rol,
		Estado:     req.Estado,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /api/usuarios/:id.
//
// @Summary      Delete a user
// @Tags         usuarios
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
