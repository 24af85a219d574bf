package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonvale/salon-system/internal/core/domain"
	"github.com/salonvale/salon-system/internal/core/ports"
)

// AuthService implements the admin login. Passwords are verified against the
// stored bcrypt hash; a raw password never leaves the request.
type AuthService struct {
	usuarios  ports.UsuarioRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(usuarios ports.UsuarioRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{usuarios: usuarios, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login authenticates an administrator by correo and password. Only active
// accounts with rol administrador may enter the admin surface.
func (s *AuthService) Login(ctx context.Context, correo, contrasena string) (string, *domain.Usuario, error) {
	if strings.TrimSpace(correo) == "" || contrasena == "" {
		return "", nil, domain.ErrCredencialesInvalidas
	}

	u, err := s.usuarios.FindByCorreo(ctx, normalizarCorreo(correo))
	if err != nil {
		if domain.IsNotFound(err) {
			return "", nil, domain.ErrCredencialesInvalidas
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte(contrasena)) != nil {
		return "", nil, domain.ErrCredencialesInvalidas
	}
	if !strings.EqualFold(u.Rol, domain.RolAdministrador) {
		return "", nil, domain.ErrAccesoDenegado
	}
	if !strings.EqualFold(u.Estado, domain.EstadoActivo) {
		return "", nil, domain.ErrCuentaInactiva
	}

	token, err := s.generateToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) generateToken(u *domain.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"id_usuario": u.ID,
		"nombre":     u.Nombre,
		"correo":     u.Correo,
		"rol":        u.Rol,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
