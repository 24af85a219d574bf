package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	RolAdministrador = "administrador"
	RolTrabajador    = "trabajador"
	RolCliente       = "cliente"

	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

// RolValido reports whether rol is one of the three known roles.
// Comparison is case-insensitive, matching the original API contract.
func RolValido(rol string) bool {
	switch strings.ToLower(rol) {
	case RolAdministrador, RolTrabajador, RolCliente:
		return true
	}
	return false
}

func EstadoValido(estado string) bool {
	switch strings.ToLower(estado) {
	case EstadoActivo, EstadoInactivo:
		return true
	}
	return false
}

// Usuario models any system actor: administrator, worker or client,
// disambiguated by Rol. The password is stored only as a bcrypt hash and is
// never serialized.
type Usuario struct {
	ID             int       `json:"id_usuario" bson:"_id"`
	Nombre         string    `json:"nombre" bson:"nombre"`
	Correo         string    `json:"correo" bson:"correo"`
	ContrasenaHash string    `json:"-" bson:"contrasena_hash"`
	Telefono       string    `json:"telefono" bson:"telefono"`
	Rol            string    `json:"rol" bson:"rol"`
	Estado         string    `json:"estado" bson:"estado"`
	FechaRegistro  time.Time `json:"fecha_registro" bson:"fecha_registro"`
}

// DisplayName resolves the label shown for a user: nombre, falling back to
// correo, falling back to a placeholder carrying the raw id.
func (u Usuario) DisplayName() string {
	if s := strings.TrimSpace(u.Nombre); s != "" {
		return s
	}
	if s := strings.TrimSpace(u.Correo); s != "" {
		return s
	}
	return fmt.Sprintf("Usuario #%d", u.ID)
}
