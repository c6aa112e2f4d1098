package repository

import (
	"context"

	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// LoginResult respuesta del login del backend.
type LoginResult struct {
	Token string
	User  entity.User
}

// AuthGateway autentica contra el backend. Las credenciales nunca se guardan aquí.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
