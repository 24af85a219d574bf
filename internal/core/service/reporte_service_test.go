package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonvale/salon-system/internal/core/domain"
)

func reporteFixtures() *ReporteService {
	usuarios := newStubUsuarioRepo()
	usuarios.seed(
		domain.Usuario{ID: 1, Nombre: "Ana", Rol: "cliente"},
		domain.Usuario{ID: 2, Nombre: "Luis", Rol: "trabajador"},
	)
	servicios := newStubServicioRepo()
	servicios.seed(domain.Servicio{ID: 3, NombreServicio: "Corte", Precio: 25, DuracionMinutos: 30})

	citas := newStubCitaRepo()
	citas.seed(
		domain.Cita{ID: 10, IDCliente: 1, IDTrabajador: 2, IDServicio: 3,
			FechaCita: time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC), Estado: "completada"},
		domain.Cita{ID: 11, IDCliente: 1, IDTrabajador: 2, IDServicio: 3,
			FechaCita: time.Date(2025, 11, 10, 23, 30, 0, 0, time.UTC), Estado: "pendiente"},
		domain.Cita{ID: 12, IDCliente: 1, IDTrabajador: 2, IDServicio: 3,
			FechaCita: time.Date(2025, 11, 11, 9, 0, 0, 0, time.UTC), Estado: "completada"},
	)

	facturas := newStubFacturaRepo()
	facturas.seed(
		domain.Factura{ID: 20, IDCita: 10, Total: 25.50, MetodoPago: "efectivo",
			FechaEmision: time.Date(2025, 11, 10, 16, 33, 25, 0, time.UTC)},
		domain.Factura{ID: 21, IDCita: 11, Total: 30, MetodoPago: "nequi",
			FechaEmision: time.Date(2025, 11, 10, 18, 0, 0, 0, time.UTC)},
		domain.Factura{ID: 22, IDCita: 12, Total: 99, MetodoPago: "pse",
			FechaEmision: time.Date(2025, 11, 12, 10, 0, 0, 0, time.UTC)},
	)

	return NewReporteService(usuarios, servicios, citas, facturas, zerolog.Nop())
}

func TestReporteService_Diario(t *testing.T) {
	svc := reporteFixtures()

	rep, index, err := svc.Diario(context.Background(), "2025-11-10")
	if err != nil {
		t.Fatalf("Diario: %v", err)
	}

	if rep.TotalCitas != 2 {
		t.Errorf("total_citas = %d, want 2 (date-portion match only)", rep.TotalCitas)
	}
	if rep.CitasCompletadas != 1 {
		t.Errorf("citas_completadas = %d, want 1", rep.CitasCompletadas)
	}
	if rep.FacturasGeneradas != 2 {
		t.Errorf("facturas_generadas = %d, want 2", rep.FacturasGeneradas)
	}
	if rep.VentasTotales != 55.50 {
		t.Errorf("ventas_totales = %v, want 55.50", rep.VentasTotales)
	}
	for _, c := range rep.Citas {
		if !domain.MismaFecha(c.FechaCita, "2025-11-10") {
			t.Errorf("cita %d outside the requested date", c.ID)
		}
	}

	// The index covers all citas, not just the day's, so facturas pointing
	// at other days still resolve.
	if _, ok := index.Cita(12); !ok {
		t.Errorf("index must include citas from other days")
	}
	if got := index.UsuarioNombre(1); got != "Ana" {
		t.Errorf("index usuario lookup: got %q", got)
	}
}

func TestReporteService_Diario_EmptyDay(t *testing.T) {
	svc := reporteFixtures()

	rep, _, err := svc.Diario(context.Background(), "2030-01-01")
	if err != nil {
		t.Fatalf("Diario: %v", err)
	}
	if rep.TotalCitas != 0 || rep.FacturasGeneradas != 0 || rep.VentasTotales != 0 {
		t.Fatalf("empty day must yield zero aggregates: %+v", rep)
	}
	if rep.Citas == nil || rep.Facturas == nil {
		t.Fatalf("filtered views must be empty slices, not nil")
	}
}

func TestReporteService_Diario_BadDate(t *testing.T) {
	svc := reporteFixtures()

	_, _, err := svc.Diario(context.Background(), "10/11/2025")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
