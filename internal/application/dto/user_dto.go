package dto

import "time"

// LoginRequest credenciales contra el backend. Se recortan espacios antes de validar.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=120"`
	Password string `json:"password" validate:"required,max=200"`
}

// UserResponse usuario de la sesión (GET /api/me).
type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	Role           string    `json:"role"`
	OrganizationID string    `json:"organization_id"`
	EmpID          string    `json:"emp_id,omitempty"`
	SessionID      string    `json:"session_id"`
	LastActivity   time.Time `json:"last_activity"`
}

// LoginResponse token JWT propio del servicio y usuario normalizado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
