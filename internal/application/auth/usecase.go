package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
	"github.com/jhoicas/finflux-dashboard/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login contra el backend, apertura de sesión y emisión del JWT propio.
type AuthUseCase struct {
	gateway repository.AuthGateway
	store   *session.Store
	jwtCfg  JWTConfig
	now     func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway repository.AuthGateway, store *session.Store, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, store: store, jwtCfg: jwtCfg, now: time.Now}
}

// Login recorta y valida credenciales, autentica en el backend y abre la sesión.
// Credenciales rechazadas por el backend devuelven domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Password = strings.TrimSpace(in.Password)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	res, err := uc.gateway.Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}

	s, err := uc.store.Open(res.User, res.Token)
	if err != nil {
		return nil, fmt.Errorf("auth: abrir sesión: %w", err)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Identity{
		UserID:         s.UserID,
		OrganizationID: s.OrganizationID,
		EmpID:          s.EmpID,
		Role:           s.Role,
		SessionID:      s.ID,
	})
	if err != nil {
		uc.store.Close(s.ID)
		return nil, fmt.Errorf("auth: firmar token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      *ToUserResponse(s),
	}, nil
}

// Logout destruye la sesión: detiene el sondeo y descarta el estado de alertas.
func (uc *AuthUseCase) Logout(sessionID string) {
	uc.store.Close(sessionID)
}

// ToUserResponse proyecta la sesión al DTO de perfil.
func ToUserResponse(s *session.Session) *dto.UserResponse {
	if s == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             s.UserID,
		Username:       s.Username,
		Email:          s.Email,
		Role:           s.Role,
		OrganizationID: s.OrganizationID,
		EmpID:          s.EmpID,
		SessionID:      s.ID,
		LastActivity:   s.LastActivity(),
	}
}
