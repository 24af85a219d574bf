// Package export renders a daily report as downloadable documents: a
// sectioned CSV and a printable HTML page.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/refcache"
)

// FormatValue escapes one CSV field. Internal quotes are doubled, and the
// value is wrapped in quotes when it contains a comma, a newline or a quote.
func FormatValue(value string) string {
	escaped := strings.ReplaceAll(value, `"`, `""`)
	if strings.ContainsAny(escaped, ",\n") || escaped != value {
		return `"` + escaped + `"`
	}
	return escaped
}

// CSVFilename returns the download name for the report of the given date.
func CSVFilename(fecha string) string {
	return fmt.Sprintf("reporte_%s.csv", fecha)
}

// CSV serializes the report as UTF-8 sectioned CSV: the full service catalog,
// the day's citas and the day's facturas, with labels resolved through refs.
func CSV(r *domain.ReporteDiario, refs *refcache.Cache) []byte {
	var b strings.Builder

	b.WriteString("Reporte Diario - " + r.Fecha + "\n\n")

	b.WriteString("=== SERVICIOS ===\n")
	b.WriteString("ID,Nombre,Descripción,Precio,Duración (min)\n")
	for _, s := range r.Servicios {
		writeRow(&b,
			strconv.Itoa(s.ID),
			s.NombreServicio,
			s.Descripcion,
			formatFloat(s.Precio),
			strconv.Itoa(s.DuracionMinutos),
		)
	}

	b.WriteString("\n=== CITAS DEL DÍA ===\n")
	b.WriteString("ID,Cliente,Trabajador,Servicio,Hora,Estado\n")
	for _, ct := range r.Citas {
		writeRow(&b,
			strconv.Itoa(ct.ID),
			refs.UsuarioNombre(ct.IDCliente),
			refs.UsuarioNombre(ct.IDTrabajador),
			refs.ServicioNombre(ct.IDServicio),
			ct.HoraCita,
			ct.Estado,
		)
	}

	b.WriteString("\n=== VENTAS ===\n")
	b.WriteString("ID Factura,ID Cita,Cliente,Total,Método Pago,Fecha\n")
	for _, f := range r.Facturas {
		var cliente string
		if ct, ok := refs.Cita(f.IDCita); ok {
			cliente = refs.UsuarioNombre(ct.IDCliente)
		}
		writeRow(&b,
			strconv.Itoa(f.ID),
			strconv.Itoa(f.IDCita),
			cliente,
			formatFloat(f.Total),
			domain.MetodoPagoLabel(f.MetodoPago),
			f.FechaEmision.UTC().Format(time.RFC3339),
		)
	}

	return []byte(b.String())
}

func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(FormatValue(f))
	}
	b.WriteByte('\n')
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
