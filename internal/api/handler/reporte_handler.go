package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonvale/salon-system/internal/api/metrics"
	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
	"github.com/salonvale/salon-system/internal/export"
)

// ReporteHandler handles HTTP requests for the daily report and its exports.
type ReporteHandler struct {
	service ports.ReporteService
}

func NewReporteHandler(service ports.ReporteService) *ReporteHandler {
	return &ReporteHandler{service: service}
}

// Diario handles GET /api/reportes/diario?fecha=YYYY-MM-DD&formato=json|csv|html.
//
// @Summary      Daily report
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        fecha    query     string  true   "Report date (YYYY-MM-DD)"
// @Param        formato  query     string  false  "Output format: json (default), csv or html"
// @Success      200      {object}  domain.ReporteDiario
// @Failure      400      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /api/reportes/diario [get]
func (h *ReporteHandler) Diario(c echo.Context) error {
	fecha := c.QueryParam("fecha")
	if fecha == "" {
		return domain.Validation("La fecha del reporte es requerida (YYYY-MM-DD)")
	}

	formato := c.QueryParam("formato")
	if formato == "" {
		formato = "json"
	}

	reporte, refs, err := h.service.Diario(c.Request().Context(), fecha)
	if err != nil {
		return err
	}

	switch formato {
	case "json":
		metrics.ReportesGeneradosTotal.WithLabelValues("json").Inc()
		return c.JSON(http.StatusOK, reporte)
	case "csv":
		metrics.ReportesGeneradosTotal.WithLabelValues("csv").Inc()
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename=%q`, export.CSVFilename(reporte.Fecha)))
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", export.CSV(reporte, refs))
	case "html":
		doc, err := export.Printable(reporte, refs, time.Now())
		if err != nil {
			return err
		}
		metrics.ReportesGeneradosTotal.WithLabelValues("html").Inc()
		return c.HTMLBlob(http.StatusOK, doc)
	default:
		return domain.Validation("El formato debe ser uno de: json, csv, html")
	}
}
