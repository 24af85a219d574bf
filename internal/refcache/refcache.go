// Package refcache holds the derived lookup indexes used to resolve entity
// ids to display labels. The cache has no lifecycle of its own: it is rebuilt
// in full from the latest fetched collection and never updated partially.
package refcache

import (
	"fmt"
	"strings"

	"github.com/salonvale/salon-system/internal/core/domain"
)

type Cache struct {
	usuarios  map[int]domain.Usuario
	servicios map[int]domain.Servicio
	citas     map[int]domain.Cita
}

func New() *Cache {
	return &Cache{
		usuarios:  make(map[int]domain.Usuario),
		servicios: make(map[int]domain.Servicio),
		citas:     make(map[int]domain.Cita),
	}
}

// RebuildUsuarios replaces the usuario index with the given collection.
func (c *Cache) RebuildUsuarios(usuarios []domain.Usuario) {
	c.usuarios = make(map[int]domain.Usuario, len(usuarios))
	for _, u := range usuarios {
		if u.ID > 0 {
			c.usuarios[u.ID] = u
		}
	}
}

func (c *Cache) RebuildServicios(servicios []domain.Servicio) {
	c.servicios = make(map[int]domain.Servicio, len(servicios))
	for _, s := range servicios {
		if s.ID > 0 {
			c.servicios[s.ID] = s
		}
	}
}

func (c *Cache) RebuildCitas(citas []domain.Cita) {
	c.citas = make(map[int]domain.Cita, len(citas))
	for _, ct := range citas {
		if ct.ID > 0 {
			c.citas[ct.ID] = ct
		}
	}
}

// UsuarioNombre resolves a user id to a display label: nombre → correo →
// "Usuario #id". An id not present in the index yields "ID <id>".
func (c *Cache) UsuarioNombre(id int) string {
	u, ok := c.usuarios[id]
	if !ok {
		return fmt.Sprintf("ID %d", id)
	}
	return u.DisplayName()
}

// ServicioNombre resolves a service id to its name, or a placeholder with the
// raw id when unknown or unnamed.
func (c *Cache) ServicioNombre(id int) string {
	s, ok := c.servicios[id]
	if !ok || strings.TrimSpace(s.NombreServicio) == "" {
		return fmt.Sprintf("Servicio #%d", id)
	}
	return s.NombreServicio
}

// Cita returns the indexed cita for id.
func (c *Cache) Cita(id int) (domain.Cita, bool) {
	ct, ok := c.citas[id]
	return ct, ok
}

// CitaLabel builds the option label for a cita:
// "Cita #3 • Ana • Corte de cabello • 10/11/2025 09:09 a. m.".
func (c *Cache) CitaLabel(id int) string {
	ct, ok := c.citas[id]
	if !ok {
		return fmt.Sprintf("Cita #%d", id)
	}

	partes := []string{fmt.Sprintf("Cita #%d", ct.ID)}
	if nombre := c.UsuarioNombre(ct.IDCliente); nombre != "" {
		partes = append(partes, nombre)
	}
	if nombre := c.ServicioNombre(ct.IDServicio); nombre != "" {
		partes = append(partes, nombre)
	}

	var fechaHora string
	if !ct.FechaCita.IsZero() {
		fechaHora = ct.FechaCita.UTC().Format("02/01/2006")
	}
	if ct.HoraCita != "" {
		if fechaHora != "" {
			fechaHora += " " + ct.HoraCita
		} else {
			fechaHora = ct.HoraCita
		}
	}
	if fechaHora != "" {
		partes = append(partes, fechaHora)
	}

	return strings.Join(partes, " • ")
}

// CitaClienteNombre resolves the client label for the cita referenced by a
// factura, or "-" when the cita is not indexed.
func (c *Cache) CitaClienteNombre(idCita int) string {
	ct, ok := c.citas[idCita]
	if !ok {
		return "-"
	}
	return c.UsuarioNombre(ct.IDCliente)
}
