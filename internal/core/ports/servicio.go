package ports

import (
	"context"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// ServicioRepository defines persistence operations for the service catalog.
type ServicioRepository interface {
	List(ctx context.Context) ([]domain.Servicio, error)
	FindByID(ctx context.Context, id int) (*domain.Servicio, error)
	Create(ctx context.Context, s *domain.Servicio) error
	Update(ctx context.Context, s *domain.Servicio) error
	Delete(ctx context.Context, id int) error
}

type CreateServicioInput struct {
	NombreServicio  string
	Descripcion     string
	Precio          float64
	DuracionMinutos int
}

type UpdateServicioInput struct {
	ID              int
	NombreServicio  string
	Descripcion     string
	Precio          float64
	DuracionMinutos int
}

type ServicioService interface {
	List(ctx context.Context) ([]domain.Servicio, error)
	Get(ctx context.Context, id int) (*domain.Servicio, error)
	Create(ctx context.Context, input CreateServicioInput) (*domain.Servicio, error)
	Update(ctx context.Context, pathID int, input UpdateServicioInput) (*domain.Servicio, error)
	Delete(ctx context.Context, id int) error
}
