package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonvale/salon-system/internal/api/metrics"
	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

// CitaHandler handles HTTP requests for appointments.
type CitaHandler struct {
	service ports.CitaService
}

func NewCitaHandler(service ports.CitaService) *CitaHandler {
	return &CitaHandler{service: service}
}

type citaRequest struct {
	IDCita        int       `json:"id_cita"`
	IDCliente     int       `json:"id_cliente"`
	IDTrabajador  int       `json:"id_trabajador"`
	IDServicio    int       `json:"id_servicio"`
	FechaCita     time.Time `json:"fecha_cita"`
	HoraCita      string    `json:"hora_cita"`
	Estado        string    `json:"estado"`
	Observaciones string    `json:"observaciones"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// List handles GET /api/citas.
//
// @Summary      List all appointments
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Cita
// @Failure      500  {object}  map[string]string
// @Router       /api/citas [get]
func (h *CitaHandler) List(c echo.Context) error {
	citas, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, citas)
}

// Get handles GET /api/citas/:id.
//
// @Summary      Get an appointment by id
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  domain.Cita
// @Failure      404  {object}  map[string]string
// @Router       /api/citas/{id} [get]
func (h *CitaHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cita, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cita)
}

// Create handles POST /api/citas.
//
// @Summary      Create an appointment
// @Tags         citas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      citaRequest  true  "Appointment details (hora_cita in 12-hour format, e.g. \"09:09 a. m.\")"
// @Success      201   {object}  domain.Cita
// @Failure      400   {object}  map[string]string
// @Router       /api/citas [post]
func (h *CitaHandler) Create(c echo.Context) error {
	var req citaRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("El cuerpo de la petición no es válido")
	}

	cita, err := h.service.Create(c.Request().Context(), ports.CreateCitaInput{
		IDCliente:     req.IDCliente,
		IDTrabajador:  req.IDTrabajador,
		IDServicio:    req.IDServicio,
		FechaCita:     req.FechaCita,
		HoraCita:      req.HoraCita,
		Estado:        req.Estado,
		Observaciones: req.Observaciones,
		FechaCreacion: req.FechaCreacion,
	})
	if err != nil {
		return err
	}

	metrics.CitasCreatedTotal.WithLabelValues(cita.Estado).Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/citas/%d", cita.ID))
	return c.JSON(http.StatusCreated, cita)
}

// Update handles PUT /api/citas/:id.
//
// @Summary      Update an appointment
// @Tags         citas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Appointment id"
// @Param        body  body      citaRequest  true  "Appointment details"
// @Success      200   {object}  domain.Cita
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/citas/{id} [put]
func (h *CitaHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req citaRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("El cuerpo de la petición no es válido")
	}

	cita, err := h.service.Update(c.Request().Context(), id, ports.UpdateCitaInput{
		ID:            req.IDCita,
		IDCliente:     req.IDCliente,
		IDTrabajador:  req.IDTrabajador,
		IDServicio:    req.IDServicio,
		FechaCita:     req.FechaCita,
		HoraCita:      req.HoraCita,
		Estado:        req.Estado,
		Observaciones: req.Observaciones,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cita)
}

// Delete handles DELETE /api/citas/:id.
//
// @Summary      Delete an appointment
// @Tags         citas
// @Security     BearerAuth
// @Param        id  path  int  true  "Appointment id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/citas/{id} [delete]
func (h *CitaHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
