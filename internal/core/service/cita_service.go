package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

// CitaService implements the cita use cases. MongoDB enforces no foreign
// keys, so the referential checks the original delegated to the database
// live here: cliente and trabajador must be existing users with the matching
// role, and the servicio must exist.
type CitaService struct {
	repo      ports.CitaRepository
	usuarios  ports.UsuarioRepository
	servicios ports.ServicioRepository
	logger    zerolog.Logger
}

func NewCitaService(repo ports.CitaRepository, usuarios ports.UsuarioRepository, servicios ports.ServicioRepository, logger zerolog.Logger) *CitaService {
	return &CitaService{repo: repo, usuarios: usuarios, servicios: servicios, logger: logger}
}

func (s *CitaService) List(ctx context.Context) ([]domain.Cita, error) {
	return s.repo.List(ctx)
}

func (s *CitaService) Get(ctx context.Context, id int) (*domain.Cita, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CitaService) Create(ctx context.Context, input ports.CreateCitaInput) (*domain.Cita, error) {
	if err := s.validarCita(ctx, input.IDCliente, input.IDTrabajador, input.IDServicio, input.FechaCita, input.HoraCita, input.Estado); err != nil {
		return nil, err
	}

	fechaCreacion := input.FechaCreacion
	if fechaCreacion.IsZero() {
		fechaCreacion = time.Now().UTC()
	} else {
		fechaCreacion = fechaCreacion.UTC()
	}

	c := &domain.Cita{
		IDCliente:     input.IDCliente,
		IDTrabajador:  input.IDTrabajador,
		IDServicio:    input.IDServicio,
		FechaCita:     input.FechaCita.UTC(),
		HoraCita:      input.HoraCita,
		Estado:        strings.ToLower(input.Estado),
		Observaciones: input.Observaciones,
		FechaCreacion: fechaCreacion,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error().Err(err).Msg("failed to create cita")
		return nil, &domain.PersistenceError{Mensaje: "Error al crear la cita en la base de datos", Causa: err}
	}

	s.logger.Info().Int("id_cita", c.ID).Int("id_cliente", c.IDCliente).Msg("cita created")
	return c, nil
}

// Update copies the mutable fields onto the stored cita. FechaCreacion is
// preserved from the existing record.
func (s *CitaService) Update(ctx context.Context, pathID int, input ports.UpdateCitaInput) (*domain.Cita, error) {
	if pathID != input.ID {
		return nil, domain.Validation("El ID de la URL no coincide con el ID de la cita")
	}
	if err := s.validarCita(ctx, input.IDCliente, input.IDTrabajador, input.IDServicio, input.FechaCita, input.HoraCita, input.Estado); err != nil {
		return nil, err
	}

	existente, err := s.repo.FindByID(ctx, pathID)
	if err != nil {
		return nil, err
	}

	existente.IDCliente = input.IDCliente
	existente.IDTrabajador = input.IDTrabajador
	existente.IDServicio = input.IDServicio
	existente.FechaCita = input.FechaCita.UTC()
	existente.HoraCita = input.HoraCita
	existente.Estado = strings.ToLower(input.Estado)
	existente.Observaciones = input.Observaciones

	if err := s.repo.Update(ctx, existente); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error().Err(err).Int("id_cita", pathID).Msg("failed to update cita")
		return nil, &domain.PersistenceError{Mensaje: "Error al actualizar la cita en la base de datos", Causa: err}
	}
	return existente, nil
}

func (s *CitaService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.Error().Err(err).Int("id_cita", id).Msg("failed to delete cita")
		return &domain.PersistenceError{Mensaje: "Error al eliminar la cita de la base de datos", Causa: err}
	}
	return nil
}

func (s *CitaService) validarCita(ctx context.Context, idCliente, idTrabajador, idServicio int, fecha time.Time, hora, estado string) error {
	if idCliente <= 0 {
		return domain.Validation("El ID del cliente es requerido y debe ser mayor a 0")
	}
	if idTrabajador <= 0 {
		return domain.Validation("El ID del trabajador es requerido y debe ser mayor a 0")
	}
	if idServicio <= 0 {
		return domain.Validation("El ID del servicio es requerido y debe ser mayor a 0")
	}
	if fecha.IsZero() {
		return domain.Validation("La fecha de la cita es requerida")
	}
	if strings.TrimSpace(hora) == "" {
		return domain.Validation("La hora de la cita es requerida")
	}
	if strings.TrimSpace(estado) == "" {
		return domain.Validation("El estado de la cita es requerido")
	}
	if !domain.EstadoCitaValido(estado) {
		return domain.Validation("El estado debe ser uno de: pendiente, confirmada, completada, cancelada")
	}

	cliente, err := s.usuarios.FindByID(ctx, idCliente)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.Validation("El cliente con ID %d no existe", idCliente)
		}
		return err
	}
	if !strings.EqualFold(cliente.Rol, domain.RolCliente) {
		return domain.Validation("El usuario con ID %d no tiene rol de cliente", idCliente)
	}

	trabajador, err := s.usuarios.FindByID(ctx, idTrabajador)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.Validation("El trabajador con ID %d no existe", idTrabajador)
		}
		return err
	}
	if !strings.EqualFold(trabajador.Rol, domain.RolTrabajador) {
		return domain.Validation("El usuario con ID %d no tiene rol de trabajador", idTrabajador)
	}

	if _, err := s.servicios.FindByID(ctx, idServicio); err != nil {
		if domain.IsNotFound(err) {
			return domain.Validation("El servicio con ID %d no existe", idServicio)
		}
		return err
	}
	return nil
}
