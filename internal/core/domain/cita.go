package domain

import (
	"strings"
	"time"
)

const (
	CitaPendiente  = "pendiente"
	CitaConfirmada = "confirmada"
	CitaCompletada = "completada"
	CitaCancelada  = "cancelada"
)

func EstadoCitaValido(estado string) bool {
	switch strings.ToLower(estado) {
	case CitaPendiente, CitaConfirmada, CitaCompletada, CitaCancelada:
		return true
	}
	return false
}

// Cita is a scheduled service booking linking a client, a worker and a
// service at a date/time. HoraCita carries the localized 12-hour display
// string ("09:09 a. m."); FechaCita is the ISO timestamp. The split is part
// of the wire contract, editing clients convert with Hora12/Hora24.
type Cita struct {
	ID            int       `json:"id_cita" bson:"_id"`
	IDCliente     int       `json:"id_cliente" bson:"id_cliente"`
	IDTrabajador  int       `json:"id_trabajador" bson:"id_trabajador"`
	IDServicio    int       `json:"id_servicio" bson:"id_servicio"`
	FechaCita     time.Time `json:"fecha_cita" bson:"fecha_cita"`
	HoraCita      string    `json:"hora_cita" bson:"hora_cita"`
	Estado        string    `json:"estado" bson:"estado"`
	Observaciones string    `json:"observaciones" bson:"observaciones"`
	FechaCreacion time.Time `json:"fecha_creacion" bson:"fecha_creacion"`
}

// MismaFecha reports whether the date portion of t (in UTC) equals fecha,
// given as "2006-01-02". Time-of-day is ignored.
func MismaFecha(t time.Time, fecha string) bool {
	return t.UTC().Format("2006-01-02") == fecha
}
