package service

import (
	"context"
	"sort"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories. Update/Delete mirror the matched-count
// behaviour of the real Mongo repositories: a missing row surfaces as a
// NotFoundError with Desaparecido set.
// ---------------------------------------------------------------------------

type stubUsuarioRepo struct {
	byID      map[int]*domain.Usuario
	nextID    int
	createErr error
	updateErr error
	deleteErr error
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{byID: make(map[int]*domain.Usuario)}
}

func (r *stubUsuarioRepo) seed(users ...domain.Usuario) {
	for _, u := range users {
		clone := u
		r.byID[u.ID] = &clone
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
}

func (r *stubUsuarioRepo) List(context.Context) ([]domain.Usuario, error) {
	out := make([]domain.Usuario, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id int) (*domain.Usuario, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Recurso: "El usuario", ID: id}
	}
	clone := *u
	return &clone, nil
}

func (r *stubUsuarioRepo) FindByCorreo(_ context.Context, correo string) (*domain.Usuario, error) {
	for _, u := range r.byID {
		if u.Correo == correo {
			clone := *u
			return &clone, nil
		}
	}
	return nil, &domain.NotFoundError{Recurso: "El usuario"}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *domain.Usuario) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	u.ID = r.nextID
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *domain.Usuario) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byID[u.ID]; !ok {
		return &domain.NotFoundError{Recurso: "El usuario", ID: u.ID, Desaparecido: true}
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id int) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[id]; !ok {
		return &domain.NotFoundError{Recurso: "El usuario", ID: id, Desaparecido: true}
	}
	delete(r.byID, id)
	return nil
}

type stubServicioRepo struct {
	byID   map[int]*domain.Servicio
	nextID int
}

func newStubServicioRepo() *stubServicioRepo {
	return &stubServicioRepo{byID: make(map[int]*domain.Servicio)}
}

func (r *stubServicioRepo) seed(servicios ...domain.Servicio) {
	for _, s := range servicios {
		clone := s
		r.byID[s.ID] = &clone
		if s.ID > r.nextID {
			r.nextID = s.ID
		}
	}
}

func (r *stubServicioRepo) List(context.Context) ([]domain.Servicio, error) {
	out := make([]domain.Servicio, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubServicioRepo) FindByID(_ context.Context, id int) (*domain.Servicio, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Recurso: "El servicio", ID: id}
	}
	clone := *s
	return &clone, nil
}

func (r *stubServicioRepo) Create(_ context.Context, s *domain.Servicio) error {
	r.nextID++
	s.ID = r.nextID
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubServicioRepo) Update(_ context.Context, s *domain.Servicio) error {
	if _, ok := r.byID[s.ID]; !ok {
		return &domain.NotFoundError{Recurso: "El servicio", ID: s.ID, Desaparecido: true}
	}
	clone := *s
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubServicioRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.byID[id]; !ok {
		return &domain.NotFoundError{Recurso: "El servicio", ID: id, Desaparecido: true}
	}
	delete(r.byID, id)
	return nil
}

type stubCitaRepo struct {
	byID   map[int]*domain.Cita
	nextID int
}

func newStubCitaRepo() *stubCitaRepo {
	return &stubCitaRepo{byID: make(map[int]*domain.Cita)}
}

func (r *stubCitaRepo) seed(citas ...domain.Cita) {
	for _, c := range citas {
		clone := c
		r.byID[c.ID] = &clone
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
}

func (r *stubCitaRepo) List(context.Context) ([]domain.Cita, error) {
	out := make([]domain.Cita, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCitaRepo) FindByID(_ context.Context, id int) (*domain.Cita, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Recurso: "La cita", ID: id}
	}
	clone := *c
	return &clone, nil
}

func (r *stubCitaRepo) Create(_ context.Context, c *domain.Cita) error {
	r.nextID++
	c.ID = r.nextID
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCitaRepo) Update(_ context.Context, c *domain.Cita) error {
	if _, ok := r.byID[c.ID]; !ok {
		return &domain.NotFoundError{Recurso: "La cita", ID: c.ID, Desaparecido: true}
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubCitaRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.byID[id]; !ok {
		return &domain.NotFoundError{Recurso: "La cita", ID: id, Desaparecido: true}
	}
	delete(r.byID, id)
	return nil
}

type stubFacturaRepo struct {
	byID   map[int]*domain.Factura
	nextID int
}

func newStubFacturaRepo() *stubFacturaRepo {
	return &stubFacturaRepo{byID: make(map[int]*domain.Factura)}
}

func (r *stubFacturaRepo) seed(facturas ...domain.Factura) {
	for _, f := range facturas {
		clone := f
		r.byID[f.ID] = &clone
		if f.ID > r.nextID {
			r.nextID = f.ID
		}
	}
}

func (r *stubFacturaRepo) List(context.Context) ([]domain.Factura, error) {
	out := make([]domain.Factura, 0, len(r.byID))
	for _, f := range r.byID {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubFacturaRepo) FindByID(_ context.Context, id int) (*domain.Factura, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Recurso: "La factura", ID: id}
	}
	clone := *f
	return &clone, nil
}

func (r *stubFacturaRepo) Create(_ context.Context, f *domain.Factura) error {
	r.nextID++
	f.ID = r.nextID
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

func (r *stubFacturaRepo) Update(_ context.Context, f *domain.Factura) error {
	if _, ok := r.byID[f.ID]; !ok {
		return &domain.NotFoundError{Recurso: "La factura", ID: f.ID, Desaparecido: true}
	}
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

func (r *stubFacturaRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.byID[id]; !ok {
		return &domain.NotFoundError{Recurso: "La factura", ID: id, Desaparecido: true}
	}
	delete(r.byID, id)
	return nil
}
