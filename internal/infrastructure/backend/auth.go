package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// AuthGateway login contra LOGIN_URL.
type AuthGateway struct {
	c *Client
}

var _ repository.AuthGateway = (*AuthGateway)(nil)

// NewAuthGateway construye el adaptador.
func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID             entity.ID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	OrganizationID entity.ID `json:"organizationId"`
	EmpID          entity.ID `json:"empId"`
	Token          string    `json:"token"`
}

// Login POST {username, password}. El rol se devuelve tal cual; la normalización es de la sesión.
func (g *AuthGateway) Login(ctx context.Context, username, password string) (*repository.LoginResult, error) {
	raw, err := g.c.do(ctx, call{
		method: http.MethodPost,
		path:   g.c.loginURL,
		body:   loginRequest{Username: username, Password: password},
	})
	if err != nil {
		return nil, err
	}
	var out loginResponse
	if err := decodeInto(raw, &out); err != nil {
		return nil, err
	}
	if strings.TrimSpace(out.Token) == "" {
		return nil, fmt.Errorf("backend: login sin token: %w", domain.ErrUnauthorized)
	}
	id := out.ID.String()
	if id == "" {
		id = username
	}
	name := out.Username
	if name == "" {
		name = username
	}
	return &repository.LoginResult{
		Token: out.Token,
		User: entity.User{
			ID:             id,
			Username:       name,
			Email:          out.Email,
			Role:           out.Role,
			OrganizationID: out.OrganizationID.String(),
			EmpID:          out.EmpID.String(),
		},
	}, nil
}
