package ports

import (
	"context"
	"time"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// FacturaRepository defines persistence operations for facturas.
type FacturaRepository interface {
	List(ctx context.Context) ([]domain.Factura, error)
	FindByID(ctx context.Context, id int) (*domain.Factura, error)
	Create(ctx context.Context, f *domain.Factura) error
	Update(ctx context.Context, f *domain.Factura) error
	Delete(ctx context.Context, id int) error
}

// CreateFacturaInput carries the writable fields of a new factura.
// A zero FechaEmision is defaulted to now (UTC); a non-zero one is
// normalized to UTC.
type CreateFacturaInput struct {
	IDCita       int
	Total        float64
	MetodoPago   string
	FechaEmision time.Time
}

// UpdateFacturaInput mirrors CreateFacturaInput plus the body id. On update
// a zero FechaEmision is rejected instead of defaulted.
type UpdateFacturaInput struct {
	ID           int
	IDCita       int
	Total        float64
	MetodoPago   string
	FechaEmision time.Time
}

type FacturaService interface {
	List(ctx context.Context) ([]domain.Factura, error)
	Get(ctx context.Context, id int) (*domain.Factura, error)
	Create(ctx context.Context, input CreateFacturaInput) (*domain.Factura, error)
	Update(ctx context.Context, pathID int, input UpdateFacturaInput) (*domain.Factura, error)
	Delete(ctx context.Context, id int) error
}
