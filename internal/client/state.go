package client

import (
	"context"
	"sort"
	"strings"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/refcache"
)

// State holds the currently loaded collections and the derived reference
// cache. Each Reload function replaces its collection atomically and rebuilds
// the affected index; no partial or optimistic update is ever applied.
type State struct {
	Usuarios  []domain.Usuario
	Servicios []domain.Servicio
	Citas     []domain.Cita
	Facturas  []domain.Factura

	Refs *refcache.Cache
}

func NewState() *State {
	return &State{Refs: refcache.New()}
}

func (s *State) ReloadUsuarios(ctx context.Context, c *Client) error {
	usuarios, err := c.ListUsuarios(ctx)
	if err != nil {
		return err
	}
	s.Usuarios = usuarios
	s.Refs.RebuildUsuarios(usuarios)
	return nil
}

func (s *State) ReloadServicios(ctx context.Context, c *Client) error {
	servicios, err := c.ListServicios(ctx)
	if err != nil {
		return err
	}
	s.Servicios = servicios
	s.Refs.RebuildServicios(servicios)
	return nil
}

func (s *State) ReloadCitas(ctx context.Context, c *Client) error {
	citas, err := c.ListCitas(ctx)
	if err != nil {
		return err
	}
	s.Citas = citas
	s.Refs.RebuildCitas(citas)
	return nil
}

func (s *State) ReloadFacturas(ctx context.Context, c *Client) error {
	facturas, err := c.ListFacturas(ctx)
	if err != nil {
		return err
	}
	s.Facturas = facturas
	return nil
}

// ReloadAll refreshes every collection, in dependency order so the reference
// cache is complete before citas and facturas are rendered.
func (s *State) ReloadAll(ctx context.Context, c *Client) error {
	if err := s.ReloadUsuarios(ctx, c); err != nil {
		return err
	}
	if err := s.ReloadServicios(ctx, c); err != nil {
		return err
	}
	if err := s.ReloadCitas(ctx, c); err != nil {
		return err
	}
	return s.ReloadFacturas(ctx, c)
}

// Clientes returns the users with role cliente, sorted by display name.
func (s *State) Clientes() []domain.Usuario {
	return s.usuariosPorRol(domain.RolCliente)
}

// Trabajadores returns the users with role trabajador, sorted by display name.
func (s *State) Trabajadores() []domain.Usuario {
	return s.usuariosPorRol(domain.RolTrabajador)
}

func (s *State) usuariosPorRol(rol string) []domain.Usuario {
	var out []domain.Usuario
	for _, u := range s.Usuarios {
		if strings.EqualFold(u.Rol, rol) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].DisplayName()) < strings.ToLower(out[j].DisplayName())
	})
	return out
}

// Cita returns the loaded cita with the given id.
func (s *State) Cita(id int) (domain.Cita, bool) {
	for _, ct := range s.Citas {
		if ct.ID == id {
			return ct, true
		}
	}
	return domain.Cita{}, false
}

// Factura returns the loaded factura with the given id.
func (s *State) Factura(id int) (domain.Factura, bool) {
	for _, f := range s.Facturas {
		if f.ID == id {
			return f, true
		}
	}
	return domain.Factura{}, false
}

// CitaOption is one selectable appointment for the factura form.
type CitaOption struct {
	ID    int
	Label string
}

// CitaOptions lists the selectable citas, optionally restricted to one
// client (idCliente 0 = all), labelled through the reference cache.
func (s *State) CitaOptions(idCliente int) []CitaOption {
	var out []CitaOption
	for _, ct := range s.Citas {
		if idCliente > 0 && ct.IDCliente != idCliente {
			continue
		}
		out = append(out, CitaOption{ID: ct.ID, Label: s.Refs.CitaLabel(ct.ID)})
	}
	return out
}
