package export

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/refcache"
)

// printableTmpl is the printable daily report: a header, four stat boxes and
// three tables, styled to match the dashboard palette.
var printableTmpl = template.Must(template.New("reporte").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Reporte Diario - {{.Fecha}}</title>
<style>
    body { font-family: Arial, sans-serif; margin: 20px; }
    h1 { color: #667eea; }
    h2 { color: #764ba2; border-bottom: 2px solid #667eea; padding-bottom: 10px; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
    th { background-color: #667eea; color: white; }
    .stats { display: flex; justify-content: space-around; margin: 20px 0; }
    .stat-box { background: #f8f9fa; padding: 15px; border-radius: 8px; text-align: center; }
    .stat-value { font-size: 24px; font-weight: bold; color: #667eea; }
    .stat-label { font-size: 12px; color: #666; text-transform: uppercase; }
</style>
</head>
<body>
<h1>Reporte Diario - Peluquería</h1>
<p><strong>Fecha:</strong> {{.Fecha}}</p>
<p><strong>Generado:</strong> {{.Generado}}</p>

<div class="stats">
    <div class="stat-box">
        <div class="stat-value">{{.TotalCitas}}</div>
        <div class="stat-label">Citas del Día</div>
    </div>
    <div class="stat-box">
        <div class="stat-value">{{.CitasCompletadas}}</div>
        <div class="stat-label">Citas Completadas</div>
    </div>
    <div class="stat-box">
        <div class="stat-value">{{.VentasTotales}}</div>
        <div class="stat-label">Ventas Totales</div>
    </div>
    <div class="stat-box">
        <div class="stat-value">{{.FacturasGeneradas}}</div>
        <div class="stat-label">Facturas Generadas</div>
    </div>
</div>

<h2>Servicios</h2>
<table><tr><th>ID</th><th>Nombre</th><th>Descripción</th><th>Precio</th><th>Duración</th></tr>
{{range .Servicios}}<tr><td>{{.ID}}</td><td>{{.Nombre}}</td><td>{{.Descripcion}}</td><td>{{.Precio}}</td><td>{{.Duracion}}</td></tr>
{{end}}</table>

<h2>Citas del Día</h2>
<table><tr><th>ID</th><th>Cliente</th><th>Trabajador</th><th>Servicio</th><th>Hora</th><th>Estado</th></tr>
{{range .Citas}}<tr><td>{{.ID}}</td><td>{{.Cliente}}</td><td>{{.Trabajador}}</td><td>{{.Servicio}}</td><td>{{.Hora}}</td><td>{{.Estado}}</td></tr>
{{end}}</table>

<h2>Ventas</h2>
<table><tr><th>ID Factura</th><th>Cita</th><th>Cliente</th><th>Total</th><th>Método Pago</th><th>Fecha</th></tr>
{{range .Facturas}}<tr><td>{{.ID}}</td><td>{{.Cita}}</td><td>{{.Cliente}}</td><td>{{.Total}}</td><td>{{.MetodoPago}}</td><td>{{.Fecha}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type printableData struct {
	Fecha             string
	Generado          string
	TotalCitas        int
	CitasCompletadas  int
	FacturasGeneradas int
	VentasTotales     string
	Servicios         []printableServicio
	Citas             []printableCita
	Facturas          []printableFactura
}

type printableServicio struct {
	ID          int
	Nombre      string
	Descripcion string
	Precio      string
	Duracion    string
}

type printableCita struct {
	ID         int
	Cliente    string
	Trabajador string
	Servicio   string
	Hora       string
	Estado     string
}

type printableFactura struct {
	ID         int
	Cita       string
	Cliente    string
	Total      string
	MetodoPago string
	Fecha      string
}

// Printable renders the report as a self-contained HTML document ready for
// printing.
func Printable(r *domain.ReporteDiario, refs *refcache.Cache, generado time.Time) ([]byte, error) {
	data := printableData{
		Fecha:             r.Fecha,
		Generado:          generado.UTC().Format("02/01/2006 15:04"),
		TotalCitas:        r.TotalCitas,
		CitasCompletadas:  r.CitasCompletadas,
		FacturasGeneradas: r.FacturasGeneradas,
		VentasTotales:     fmt.Sprintf("$%.2f", r.VentasTotales),
	}

	for _, s := range r.Servicios {
		data.Servicios = append(data.Servicios, printableServicio{
			ID:          s.ID,
			Nombre:      s.NombreServicio,
			Descripcion: s.Descripcion,
			Precio:      fmt.Sprintf("$%.2f", s.Precio),
			Duracion:    fmt.Sprintf("%d min", s.DuracionMinutos),
		})
	}

	for _, ct := range r.Citas {
		data.Citas = append(data.Citas, printableCita{
			ID:         ct.ID,
			Cliente:    refs.UsuarioNombre(ct.IDCliente),
			Trabajador: refs.UsuarioNombre(ct.IDTrabajador),
			Servicio:   refs.ServicioNombre(ct.IDServicio),
			Hora:       valueOrDash(ct.HoraCita),
			Estado:     valueOrDash(ct.Estado),
		})
	}

	for _, f := range r.Facturas {
		data.Facturas = append(data.Facturas, printableFactura{
			ID:         f.ID,
			Cita:       refs.CitaLabel(f.IDCita),
			Cliente:    refs.CitaClienteNombre(f.IDCita),
			Total:      fmt.Sprintf("$%.2f", f.Total),
			MetodoPago: domain.MetodoPagoLabel(f.MetodoPago),
			Fecha:      f.FechaEmision.UTC().Format("02/01/2006"),
		})
	}

	var b strings.Builder
	if err := printableTmpl.Execute(&b, data); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
