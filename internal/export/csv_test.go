package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/refcache"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Corte", "Corte"},
		{"", ""},
		{"Corte, barba", `"Corte, barba"`},
		{`Tinte "premium"`, `"Tinte ""premium"""`},
		{"línea1\nlínea2", "\"línea1\nlínea2\""},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.in); got != tc.want {
			t.Errorf("FormatValue(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCSVFilename(t *testing.T) {
	if got := CSVFilename("2025-11-10"); got != "reporte_2025-11-10.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestCSV_SectionsAndQuoting(t *testing.T) {
	refs := refcache.New()
	refs.RebuildUsuarios([]domain.Usuario{
		{ID: 1, Nombre: "Ana, la estilista", Rol: domain.RolCliente},
		{ID: 2, Nombre: "Luis", Rol: domain.RolTrabajador},
	})
	refs.RebuildServicios([]domain.Servicio{
		{ID: 3, NombreServicio: "Corte de cabello", Precio: 25.5, DuracionMinutos: 30},
	})
	cita := domain.Cita{
		ID: 4, IDCliente: 1, IDTrabajador: 2, IDServicio: 3,
		FechaCita: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
		HoraCita:  "09:09 a. m.", Estado: domain.CitaPendiente,
	}
	refs.RebuildCitas([]domain.Cita{cita})

	r := &domain.ReporteDiario{
		Fecha:     "2025-11-10",
		Servicios: []domain.Servicio{{ID: 3, NombreServicio: "Corte de cabello", Descripcion: "Incluye lavado, secado", Precio: 25.5, DuracionMinutos: 30}},
		Citas:     []domain.Cita{cita},
		Facturas: []domain.Factura{
			{ID: 5, IDCita: 4, Total: 25.5, MetodoPago: "nequi", FechaEmision: time.Date(2025, 11, 10, 14, 0, 0, 0, time.UTC)},
		},
		TotalCitas: 1, CitasCompletadas: 0, FacturasGeneradas: 1, VentasTotales: 25.5,
	}

	out := string(CSV(r, refs))

	if !strings.HasPrefix(out, "Reporte Diario - 2025-11-10\n\n") {
		t.Fatalf("missing title line:\n%s", out)
	}
	for _, section := range []string{"=== SERVICIOS ===", "=== CITAS DEL DÍA ===", "=== VENTAS ==="} {
		if !strings.Contains(out, section) {
			t.Errorf("missing section %q", section)
		}
	}
	if !strings.Contains(out, `"Ana, la estilista"`) {
		t.Errorf("comma-bearing name not quoted:\n%s", out)
	}
	if !strings.Contains(out, `"Incluye lavado, secado"`) {
		t.Errorf("comma-bearing description not quoted:\n%s", out)
	}
	if !strings.Contains(out, "Nequi") {
		t.Errorf("payment method label missing:\n%s", out)
	}
}

// Re-parsing a quoted row must recover the original values exactly.
func TestCSV_RoundTrip(t *testing.T) {
	refs := refcache.New()
	refs.RebuildUsuarios([]domain.Usuario{{ID: 1, Nombre: `Ana "Anita", cliente`}})
	cita := domain.Cita{ID: 2, IDCliente: 1, HoraCita: "10:00 a. m.", Estado: "pendiente",
		FechaCita: time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)}
	refs.RebuildCitas([]domain.Cita{cita})

	r := &domain.ReporteDiario{Fecha: "2025-11-10", Citas: []domain.Cita{cita}}
	out := string(CSV(r, refs))

	var citaRow []string
	reader := csv.NewReader(strings.NewReader(out))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("re-parsing CSV: %v", err)
	}
	for _, rec := range records {
		if len(rec) == 6 && rec[0] == "2" {
			citaRow = rec
		}
	}
	if citaRow == nil {
		t.Fatalf("cita row not found in:\n%s", out)
	}
	if citaRow[1] != `Ana "Anita", cliente` {
		t.Errorf("client name not recovered, got %q", citaRow[1])
	}
	if citaRow[4] != "10:00 a. m." {
		t.Errorf("hora not recovered, got %q", citaRow[4])
	}
}
