package ports

import (
	"context"

	"github.com/salonvale/salon-system/internal/core/domain"
)

// AuthService authenticates administrators. Login verifies the password
// against the stored bcrypt hash, requires an active administrator account,
// and returns a signed token plus the user profile the client keeps as its
// session record.
type AuthService interface {
	Login(ctx context.Context, correo, contrasena string) (string, *domain.Usuario, error)
}
