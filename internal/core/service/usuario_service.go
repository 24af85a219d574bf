package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

type UsuarioService struct {
	repo   ports.UsuarioRepository
	logger zerolog.Logger
}

func NewUsuarioService(repo ports.UsuarioRepository, logger zerolog.Logger) *UsuarioService {
	return &UsuarioService{repo: repo, logger: logger}
}

func (s *UsuarioService) List(ctx context.Context) ([]domain.Usuario, error) {
	return s.repo.List(ctx)
}

func (s *UsuarioService) Get(ctx context.Context, id int) (*domain.Usuario, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the required fields and enumerations, hashes the password
// and persists a new usuario. FechaRegistro is defaulted to now (UTC) when
// absent; a provided value is normalized to UTC.
func (s *UsuarioService) Create(ctx context.Context, input ports.CreateUsuarioInput) (*domain.Usuario, error) {
	if err := validarUsuario(input.Nombre, input.Correo, input.Rol, input.Estado); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Contrasena) == "" {
		return nil, domain.Validation("La contraseña es requerida para nuevos usuarios")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	fechaRegistro := input.FechaRegistro
	if fechaRegistro.IsZero() {
		fechaRegistro = time.Now().UTC()
	} else {
		fechaRegistro = fechaRegistro.UTC()
	}

	u := &domain.Usuario{
		Nombre:         input.Nombre,
		Correo:         normalizarCorreo(input.Correo),
		ContrasenaHash: string(hash),
		Telefono:       input.Telefono,
		Rol:            strings.ToLower(input.Rol),
		Estado:         strings.ToLower(input.Estado),
		FechaRegistro:  fechaRegistro,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error().Err(err).Str("correo", input.Correo).Msg("failed to create usuario")
		return nil, &domain.PersistenceError{Mensaje: "Error al crear el usuario en la base de datos", Causa: err}
	}

	s.logger.Info().Int("id_usuario", u.ID).Str("rol", u.Rol).Msg("usuario created")
	return u, nil
}

// Update copies the mutable fields onto the stored usuario. The password is
// only re-hashed when a non-empty one is provided; FechaRegistro is never
// touched.
func (s *UsuarioService) Update(ctx context.Context, pathID int, input ports.UpdateUsuarioInput) (*domain.Usuario, error) {
	if pathID != input.ID {
		return nil, domain.Validation("El ID de la URL no coincide con el ID del usuario")
	}
	if err := validarUsuario(input.Nombre, input.Correo, input.Rol, input.Estado); err != nil {
		return nil, err
	}

	existente, err := s.repo.FindByID(ctx, pathID)
	if err != nil {
		return nil, err
	}

	existente.Nombre = input.Nombre
	existente.Correo = normalizarCorreo(input.Correo)
	existente.Telefono = input.Telefono
	existente.Rol = strings.ToLower(input.Rol)
	existente.Estado = strings.ToLower(input.Estado)

	if strings.TrimSpace(input.Contrasena) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existente.ContrasenaHash = string(hash)
	}

	if err := s.repo.Update(ctx, existente); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error().Err(err).Int("id_usuario", pathID).Msg("failed to update usuario")
		return nil, &domain.PersistenceError{Mensaje: "Error al actualizar el usuario en la base de datos", Causa: err}
	}

	return existente, nil
}

func (s *UsuarioService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		s.logger.Error().Err(err).Int("id_usuario", id).Msg("failed to delete usuario")
		return &domain.PersistenceError{Mensaje: "Error al eliminar el usuario de la base de datos", Causa: err}
	}
	s.logger.Info().Int("id_usuario", id).Msg("usuario deleted")
	return nil
}

// normalizarCorreo canonicalizes an email for storage and lookup. Correos are
// stored lowercased so login, the unique index and the login lookup all agree
// regardless of the casing the user typed.
func normalizarCorreo(correo string) string {
	return strings.ToLower(strings.TrimSpace(correo))
}

func validarUsuario(nombre, correo, rol, estado string) error {
	if strings.TrimSpace(nombre) == "" {
		return domain.Validation("El nombre es requerido")
	}
	if strings.TrimSpace(correo) == "" {
		return domain.Validation("El correo electrónico es requerido")
	}
	if strings.TrimSpace(rol) == "" {
		return domain.Validation("El rol es requerido")
	}
	if strings.TrimSpace(estado) == "" {
		return domain.Validation("El estado es requerido")
	}
	if !domain.RolValido(rol) {
		return domain.Validation("El rol debe ser uno de: administrador, trabajador, cliente")
	}
	if !domain.EstadoValido(estado) {
		return domain.Validation("El estado debe ser uno de: activo, inactivo")
	}
	return nil
}
