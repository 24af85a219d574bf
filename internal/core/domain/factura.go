package domain

import (
	"strings"
	"time"
)

// metodoPagoLabels maps the stored payment-method keys to their display
// labels. The key set is the fixed enumeration accepted on write.
var metodoPagoLabels = map[string]string{
	"efectivo":        "Efectivo",
	"tarjeta_debito":  "Tarjeta Débito",
	"tarjeta_credito": "Tarjeta Crédito",
	"transferencia":   "Transferencia",
	"pse":             "PSE",
	"nequi":           "Nequi",
	"daviplata":       "Daviplata",
}

func MetodoPagoValido(metodo string) bool {
	_, ok := metodoPagoLabels[strings.ToLower(metodo)]
	return ok
}

// MetodoPagoLabel returns the display label for a payment method, or the raw
// value when it is not one of the known keys.
func MetodoPagoLabel(metodo string) string {
	if label, ok := metodoPagoLabels[strings.ToLower(metodo)]; ok {
		return label
	}
	return metodo
}

// MetodosPago lists the accepted payment-method keys.
func MetodosPago() []string {
	return []string{"efectivo", "tarjeta_debito", "tarjeta_credito", "transferencia", "pse", "nequi", "daviplata"}
}

// Factura is the billing record for one cita.
type Factura struct {
	ID           int       `json:"id_factura" bson:"_id"`
	IDCita       int       `json:"id_cita" bson:"id_cita"`
	Total        float64   `json:"total" bson:"total"`
	MetodoPago   string    `json:"metodo_pago" bson:"metodo_pago"`
	FechaEmision time.Time `json:"fecha_emision" bson:"fecha_emision"`
}
