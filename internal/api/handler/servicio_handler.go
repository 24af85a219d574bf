package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

// ServicioHandler handles HTTP requests for the service catalog.
type ServicioHandler struct {
	service ports.ServicioService
}

func NewServicioHandler(service ports.ServicioService) *ServicioHandler {
	return &ServicioHandler{service: service}
}

type servicioRequest struct {
	IDServicio      int     `json:"id_servicio"`
	NombreServicio  string  `json:"nombre_servicio"`
	Descripcion     string  `json:"descripcion"`
	Precio          float64 `json:"precio"`
	DuracionMinutos int     `json:"duracion_minutos"`
}

// List handles GET /api/servicios.
//
// @Summary      List all catalog services
// @Tags         servicios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Servicio
// @Failure      500  {object}  map[string]string
// @Router       /api/servicios [get]
func (h *ServicioHandler) List(c echo.Context) error {
	servicios, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, servicios)
}

// Get handles GET /api/servicios/:id.
//
// @Summary      Get a catalog service by id
// @Tags         servicios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Service id"
// @Success      200  {object}  domain.Servicio
// @Failure      404  {object}  map[string]string
// @Router       /api/servicios/{id} [get]
func (h *ServicioHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Create handles POST /api/servicios.
//
// @Summary      Create a catalog service
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      servicioRequest  true  "Service details"
// @Success      201   {object}  domain.Servicio
// @Failure      400   {object}  map[string]string
// @Router       /api/servicios [post]
func (h *ServicioHandler) Create(c echo.Context) error {
	var req servicioRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("El cuerpo de la petición no es válido")
	}

	s, err := h.service.Create(c.Request().Context(), ports.CreateServicioInput{
		NombreServicio:  req.NombreServicio,
		Descripcion:     req.Descripcion,
		Precio:          req.Precio,
		DuracionMinutos: req.DuracionMinutos,
	})
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/servicios/%d", s.ID))
	return c.JSON(http.StatusCreated, s)
}

// Update handles PUT /api/servicios/:id.
//
// @Summary      Update a catalog service
// @Tags         servicios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Service id"
// @Param        body  body      servicioRequest  true  "Service details"
// @Success      200   {object}  domain.Servicio
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/servicios/{id} [put]
func (h *ServicioHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req servicioRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("El cuerpo de la petición no es válido")
	}

	s, err := h.service.Update(c.Request().Context(), id, ports.UpdateServicioInput{
		ID:              req.IDServicio,
		NombreServicio:  req.NombreServicio,
		Descripcion:     req.Descripcion,
		Precio:          req.Precio,
		DuracionMinutos: req.DuracionMinutos,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// Delete handles DELETE /api/servicios/:id.
//
// @Summary      Delete a catalog service
// @Tags         servicios
// @Security     BearerAuth
// @Param        id  path  int  true  "Service id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/servicios/{id} [delete]
func (h *ServicioHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
