package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/refcache"
)

type stubReporteService struct {
	diarioFn func(ctx context.Context, fecha string) (*domain.ReporteDiario, *refcache.Cache, error)
}

func (s *stubReporteService) Diario(ctx context.Context, fecha string) (*domain.ReporteDiario, *refcache.Cache, error) {
	return s.diarioFn(ctx, fecha)
}

func reporteFixture(fecha string) (*domain.ReporteDiario, *refcache.Cache) {
	refs := refcache.New()
	refs.RebuildUsuarios([]domain.Usuario{{ID: 1, Nombre: "Ana", Rol: "cliente"}})
	refs.RebuildServicios([]domain.Servicio{{ID: 1, NombreServicio: "Corte", Precio: 15000}})
	citas := []domain.Cita{{
		ID:         2,
		IDCliente:  1,
		IDServicio: 1,
		FechaCita:  time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
		HoraCita:   "10:00 a. m.",
		Estado:     domain.CitaCompletada,
	}}
	refs.RebuildCitas(citas)

	return &domain.ReporteDiario{
		Fecha:             fecha,
		Servicios:         []domain.Servicio{{ID: 1, NombreServicio: "Corte", Precio: 15000, DuracionMinutos: 30}},
		Citas:             citas,
		Facturas:          []domain.Factura{{ID: 3, IDCita: 2, Total: 15000, MetodoPago: "nequi", FechaEmision: time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC)}},
		TotalCitas:        1,
		CitasCompletadas:  1,
		FacturasGeneradas: 1,
		VentasTotales:     15000,
	}, refs
}

func TestReporteHandler_Diario_JSON(t *testing.T) {
	e := echo.New()
	stub := &stubReporteService{
		diarioFn: func(ctx context.Context, fecha string) (*domain.ReporteDiario, *refcache.Cache, error) {
			if fecha != "2026-01-15" {
				t.Fatalf("fecha = %q", fecha)
			}
			r, refs := reporteFixture(fecha)
			return r, refs, nil
		},
	}
	handler := NewReporteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/diario?fecha=2026-01-15", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Diario(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["fecha"] != "2026-01-15" || resp["ventas_totales"] != float64(15000) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestReporteHandler_Diario_CSV(t *testing.T) {
	e := echo.New()
	stub := &stubReporteService{
		diarioFn: func(ctx context.Context, fecha string) (*domain.ReporteDiario, *refcache.Cache, error) {
			r, refs := reporteFixture(fecha)
			return r, refs, nil
		},
	}
	handler := NewReporteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/diario?fecha=2026-01-15&formato=csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Diario(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); got != `attachment; filename="reporte_2026-01-15.csv"` {
		t.Fatalf("Content-Disposition = %q", got)
	}
	body := rec.Body.String()
	for _, want := range []string{"=== SERVICIOS ===", "=== CITAS DEL DÍA ===", "=== VENTAS ===", "Corte", "Nequi"} {
		if !strings.Contains(body, want) {
			t.Fatalf("csv missing %q:\n%s", want, body)
		}
	}
}

func TestReporteHandler_Diario_HTML(t *testing.T) {
	e := echo.New()
	stub := &stubReporteService{
		diarioFn: func(ctx context.Context, fecha string) (*domain.ReporteDiario, *refcache.Cache, error) {
			r, refs := reporteFixture(fecha)
			return r, refs, nil
		},
	}
	handler := NewReporteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/diario?fecha=2026-01-15&formato=html", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Diario(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Reporte Diario - Peluquería") {
		t.Fatalf("html missing title:\n%.200s", body)
	}
	if !strings.Contains(rec.Header().Get(echo.HeaderContentType), "text/html") {
		t.Fatalf("Content-Type = %q", rec.Header().Get(echo.HeaderContentType))
	}
}

func TestReporteHandler_Diario_MissingFecha(t *testing.T) {
	e := echo.New()
	stub := &stubReporteService{
		diarioFn: func(ctx context.Context, fecha string) (*domain.ReporteDiario, *refcache.Cache, error) {
			t.Fatalf("should not be called")
			return nil, nil, nil
		},
	}
	handler := NewReporteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/diario", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Diario(c)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestReporteHandler_Diario_BadFormato(t *testing.T) {
	e := echo.New()
	stub := &stubReporteService{
		diarioFn: func(ctx context.Context, fecha string) (*domain.ReporteDiario, *refcache.Cache, error) {
			r, refs := reporteFixture(fecha)
			return r, refs, nil
		},
	}
	handler := NewReporteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/diario?fecha=2026-01-15&formato=pdf", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Diario(c)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Error() != "El formato debe ser uno de: json, csv, html" {
		t.Fatalf("message = %q", vErr.Error())
	}
}
