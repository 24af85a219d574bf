package ports

import (
	"context"
	"time"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// UsuarioRepository defines persistence operations for usuarios. Create
// assigns the generated id on the passed entity. Update and Delete report a
// vanished row (matched nothing) as a NotFoundError with Desaparecido set.
type UsuarioRepository interface {
	List(ctx context.Context) ([]domain.Usuario, error)
	FindByID(ctx context.Context, id int) (*domain.Usuario, error)
	FindByCorreo(ctx context.Context, correo string) (*domain.Usuario, error)
	Create(ctx context.Context, u *domain.Usuario) error
	Update(ctx context.Context, u *domain.Usuario) error
	Delete(ctx context.Context, id int) error
}

// CreateUsuarioInput carries the writable fields of a new usuario.
// Contrasena is the raw password; it is hashed before it reaches any
// repository.
type CreateUsuarioInput struct {
	Nombre        string
	Correo        string
	Contrasena    string
	Telefono      string
	Rol           string
	Estado        string
	FechaRegistro time.Time // zero = defaulted to now (UTC)
}

// UpdateUsuarioInput carries the mutable fields of an existing usuario.
// An empty Contrasena leaves the stored hash untouched (partial update).
type UpdateUsuarioInput struct {
	ID         int
	Nombre     string
	Correo     string
	Contrasena string
	Telefono   string
	Rol        string
	Estado     string
}

// UsuarioService defines the use-case operations for usuarios. Update takes
// the path id separately so the id-mismatch rule lives in one place.
type UsuarioService interface {
	List(ctx context.Context) ([]domain.Usuario, error)
	Get(ctx context.Context, id int) (*domain.Usuario, error)
	Create(ctx context.Context, input CreateUsuarioInput) (*domain.Usuario, error)
	Update(ctx context.Context, pathID int, input UpdateUsuarioInput) (*domain.Usuario, error)
	Delete(ctx context.Context, id int) error
}
