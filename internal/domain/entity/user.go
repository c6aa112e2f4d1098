package entity

import "strings"

// Roles del tablero.
const (
	RoleOwner    = "owner"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// NormalizeRole pasa a minúsculas y quita el prefijo ROLE_ de Spring; cualquier valor desconocido es employee.
func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	r = strings.TrimPrefix(r, "role_")
	switch r {
	case RoleOwner, RoleManager, RoleEmployee:
		return r
	default:
		return RoleEmployee
	}
}

// User usuario autenticado según lo devuelve el login del backend.
type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role"`
	OrganizationID string `json:"organizationId"`
	EmpID          string `json:"empId,omitempty"`
}
