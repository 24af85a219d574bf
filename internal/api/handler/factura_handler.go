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

// FacturaHandler handles HTTP requests for invoices.
type FacturaHandler struct {
	service ports.FacturaService
}

func NewFacturaHandler(service ports.FacturaService) *FacturaHandler {
	return &FacturaHandler{service: service}
}

type facturaRequest struct {
	IDFactura    int       `json:"id_factura"`
	IDCita       int       `json:"id_cita"`
	Total        float64   `json:"total"`
	MetodoPago   string    `json:"metodo_pago"`
	FechaEmision time.Time `json:"fecha_emision"`
}

// List handles GET /api/facturas.
//
// @Summary      List all invoices
// @Tags         facturas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Factura
// @Failure      500  {object}  map[string]string
// @Router       /api/facturas [get]
func (h *FacturaHandler) List(c echo.Context) error {
	facturas, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, facturas)
}

// Get handles GET /api/facturas/:id.
//
// @Summary      Get an invoice by id
// @Tags         facturas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Invoice id"
// @Success      200  {object}  domain.Factura
// @Failure      404  {object}  map[string]string
// @Router       /api/facturas/{id} [get]
func (h *FacturaHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	f, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// Create handles POST /api/facturas.
//
// @Summary      Create an invoice
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      facturaRequest  true  "Invoice details"
// @Success      201   {object}  domain.Factura
// @Failure      400   {object}  map[string]string
// @Router       /api/facturas [post]
func (h *FacturaHandler) Create(c echo.Context) error {
	var req facturaRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("El cuerpo de la petición no es válido")
	}

	f, err := h.service.Create(c.Request().Context(), ports.CreateFacturaInput{
		IDCita:       req.IDCita,
		Total:        req.Total,
		MetodoPago:   req.MetodoPago,
		FechaEmision: req.FechaEmision,
	})
	if err != nil {
		return err
	}

	metrics.FacturasCreatedTotal.WithLabelValues(f.MetodoPago).Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/facturas/%d", f.ID))
	return c.JSON(http.StatusCreated, f)
}

// Update handles PUT /api/facturas/:id.
//
// @Summary      Update an invoice
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Invoice id"
// @Param        body  body      facturaRequest  true  "Invoice details"
// @Success      200   {object}  domain.Factura
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/facturas/{id} [put]
func (h *FacturaHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req facturaRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("El cuerpo de la petición no es válido")
	}

	f, err := h.service.Update(c.Request().Context(), id, ports.UpdateFacturaInput{
		ID:           req.IDFactura,
		IDCita:       req.IDCita,
		Total:        req.Total,
		MetodoPago:   req.MetodoPago,
		FechaEmision: req.FechaEmision,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// Delete handles DELETE /api/facturas/:id.
//
// @Summary      Delete an invoice
// @Tags         facturas
// @Security     BearerAuth
// @Param        id  path  int  true  "Invoice id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/facturas/{id} [delete]
func (h *FacturaHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
