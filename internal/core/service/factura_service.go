package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

type FacturaService struct {
	repo   ports.FacturaRepository
	citas  ports.CitaRepository
	logger zerolog.Logger
}

func NewFacturaService(repo ports.FacturaRepository, citas ports.CitaRepository, logger zerolog.Logger) *FacturaService {
	return &FacturaService{repo: repo, citas: citas, logger: logger}
}

func (s *FacturaService) List(ctx context.Context) ([]domain.Factura, error) {
	return s.repo.List(ctx)
}

func (s *FacturaService) Get(ctx context.Context, id int) (*domain.Factura, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the factura and persists it. An absent FechaEmision is
// defaulted to now; any provided value is normalized to UTC.
func (s *FacturaService) Create(ctx context.Context, input ports.CreateFacturaInput) (*domain.Factura, error) {
	if err := s.validarFactura(ctx, input.IDCita, input.Total, input.MetodoPago); err != nil {
		return nil, err
	}

	fechaEmision := input.FechaEmision
	if fechaEmision.IsZero() {
		fechaEmision = time.Now().UTC()
	} else {
		fechaEmision = fechaEmision.UTC()
	}

	f := &domain.Factura{
		IDCita:       input.IDCita,
		Total:        input.Total,
		MetodoPago:   strings.ToLower(input.MetodoPago),
		FechaEmision: fechaEmision,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error().Err(err).Msg("failed to create factura")
		return nil, &domain.PersistenceError{Mensaje: "Error al guardar la factura en la base de datos", Causa: err}
	}

	s.logger.Info().Int("id_factura", f.ID).Int("id_cita", f.IDCita).Float64("total", f.Total).Msg("factura created")
	return f, nil
}

// Update copies the mutable fields onto the stored factura. Unlike Create,
// a missing FechaEmision is a validation error rather than a default.
func (s *FacturaService) Update(ctx context.Context, pathID int, input ports.UpdateFacturaInput) (*domain.Factura, error) {
	if pathID != input.ID {
		return nil, domain.Validation("El ID de la URL no coincide con el ID de la factura")
	}
	if err := s.validarFactura(ctx, input.IDCita, input.Total, input.MetodoPago); err != nil {
		return nil, err
	}
	if input.FechaEmision.IsZero() {
		return nil, domain.Validation("La fecha de emisión es requerida y debe ser válida")
	}

	existente, err := s.repo.FindByID(ctx, pathID)
	if err != nil {
		return nil, err
	}

	existente.IDCita = input.IDCita
	existente.Total = input.Total
	existente.MetodoPago = strings.ToLower(input.MetodoPago)
	existente.FechaEmision = input.FechaEmision.UTC()

	if err := s.repo.Update(ctx, existente); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error().Err(err).Int("id_factura", pathID).Msg("failed to update factura")
		return nil, &domain.PersistenceError{Mensaje: "Error al actualizar la factura en la base de datos", Causa: err}
	}
	return existente, nil
}

func (s *FacturaService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.Error().Err(err).Int("id_factura", id).Msg("failed to delete factura")
		return &domain.PersistenceError{Mensaje: "Error al eliminar la factura de la base de datos", Causa: err}
	}
	return nil
}

func (s *FacturaService) validarFactura(ctx context.Context, idCita int, total float64, metodoPago string) error {
	if idCita <= 0 {
		return domain.Validation("El ID de la cita es requerido y debe ser mayor a 0")
	}
	if total <= 0 {
		return domain.Validation("El total debe ser mayor a 0")
	}
	if strings.TrimSpace(metodoPago) == "" {
		return domain.Validation("El método de pago es requerido")
	}
	if !domain.MetodoPagoValido(metodoPago) {
		return domain.Validation("El método de pago debe ser uno de: %s", strings.Join(domain.MetodosPago(), ", "))
	}

	if _, err := s.citas.FindByID(ctx, idCita); err != nil {
		if domain.IsNotFound(err) {
			return domain.Validation("La cita con ID %d no existe", idCita)
		}
		return err
	}
	return nil
}
