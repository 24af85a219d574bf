package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

type ServicioService struct {
	repo   ports.ServicioRepository
	logger zerolog.Logger
}

func NewServicioService(repo ports.ServicioRepository, logger zerolog.Logger) *ServicioService {
	return &ServicioService{repo: repo, logger: logger}
}

func (s *ServicioService) List(ctx context.Context) ([]domain.Servicio, error) {
	return s.repo.List(ctx)
}

func (s *ServicioService) Get(ctx context.Context, id int) (*domain.Servicio, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ServicioService) Create(ctx context.Context, input ports.CreateServicioInput) (*domain.Servicio, error) {
	if err := validarServicio(input.NombreServicio, input.Precio, input.DuracionMinutos); err != nil {
		return nil, err
	}

	sv := &domain.Servicio{
		NombreServicio:  input.NombreServicio,
		Descripcion:     input.Descripcion,
		Precio:          input.Precio,
		DuracionMinutos: input.DuracionMinutos,
	}

	if err := s.repo.Create(ctx, sv); err != nil {
		s.logger.Error().Err(err).Str("nombre_servicio", input.NombreServicio).Msg("failed to create servicio")
		return nil, &domain.PersistenceError{Mensaje: "Error al crear el servicio en la base de datos", Causa: err}
	}
	return sv, nil
}

func (s *ServicioService) Update(ctx context.Context, pathID int, input ports.UpdateServicioInput) (*domain.Servicio, error) {
	if pathID != input.ID {
		return nil, domain.Validation("El ID de la URL no coincide con el ID del servicio")
	}
	if err := validarServicio(input.NombreServicio, input.Precio, input.DuracionMinutos); err != nil {
		return nil, err
	}

	existente, err := s.repo.FindByID(ctx, pathID)
	if err != nil {
		return nil, err
	}

	existente.NombreServicio = input.NombreServicio
	existente.Descripcion = input.Descripcion
	existente.Precio = input.Precio
	existente.DuracionMinutos = input.DuracionMinutos

	if err := s.repo.Update(ctx, existente); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error().Err(err).Int("id_servicio", pathID).Msg("failed to update servicio")
		return nil, &domain.PersistenceError{Mensaje: "Error al actualizar el servicio en la base de datos", Causa: err}
	}
	return existente, nil
}

func (s *ServicioService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.Error().Err(err).Int("id_servicio", id).Msg("failed to delete servicio")
		return &domain.PersistenceError{Mensaje: "Error al eliminar el servicio de la base de datos", Causa: err}
	}
	return nil
}

func validarServicio(nombre string, precio float64, duracion int) error {
	if strings.TrimSpace(nombre) == "" {
		return domain.Validation("El nombre del servicio es requerido")
	}
	if precio <= 0 {
		return domain.Validation("El precio debe ser mayor a 0")
	}
	if duracion <= 0 {
		return domain.Validation("La duración en minutos debe ser mayor a 0")
	}
	return nil
}
