package ports

import (
	"context"
	"time"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// CitaRepository defines persistence operations for citas.
type CitaRepository interface {
	List(ctx context.Context) ([]domain.Cita, error)
	FindByID(ctx context.Context, id int) (*domain.Cita, error)
	Create(ctx context.Context, c *domain.Cita) error
	Update(ctx context.Context, c *domain.Cita) error
	Delete(ctx context.Context, id int) error
}

// CreateCitaInput carries the writable fields of a new cita. HoraCita is the
// 12-hour wire string; FechaCreacion zero means defaulted to now (UTC).
type CreateCitaInput struct {
	IDCliente     int
	IDTrabajador  int
	IDServicio    int
	FechaCita     time.Time
	HoraCita      string
	Estado        string
	Observaciones string
	FechaCreacion time.Time
}

type UpdateCitaInput struct {
	ID            int
	IDCliente     int
	IDTrabajador  int
	IDServicio    int
	FechaCita     time.Time
	HoraCita      string
	Estado        string
	Observaciones string
}

type CitaService interface {
	List(ctx context.Context) ([]domain.Cita, error)
	Get(ctx context.Context, id int) (*domain.Cita, error)
	Create(ctx context.Context, input CreateCitaInput) (*domain.Cita, error)
	Update(ctx context.Context, pathID int, input UpdateCitaInput) (*domain.Cita, error)
	Delete(ctx context.Context, id int) error
}
