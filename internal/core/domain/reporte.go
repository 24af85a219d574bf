package domain

// ReporteDiario holds the derived views for one date: the full service
// catalog, the day's citas and facturas (date-portion equality on the stored
// timestamps) and the four aggregate figures.
type ReporteDiario struct {
	Fecha             string     `json:"fecha"`
	Servicios         []Servicio `json:"servicios"`
	Citas             []Cita     `json:"citas"`
	Facturas          []Factura  `json:"facturas"`
	TotalCitas        int        `json:"total_citas"`
	CitasCompletadas  int        `json:"citas_completadas"`
	FacturasGeneradas int        `json:"facturas_generadas"`
	VentasTotales     float64    `json:"ventas_totales"`
}
