// Package session mantiene el contexto explícito de cada login: identidad,
// token del backend, actividad, el tracker de alertas y la tarea de sondeo.
package session

import (
	"sync"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/domain/alert"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// Session contexto de un usuario logueado. Los campos de identidad son inmutables.
type Session struct {
	ID             string
	UserID         string
	Username       string
	Email          string
	Role           string
	OrganizationID string
	EmpID          string
	CreatedAt      time.Time

	backendToken string
	tracker      *alert.Tracker

	// refresh serializa los refrescos de tanques de la sesión (sondeo y manual).
	refresh sync.Mutex

	mu           sync.Mutex
	lastActivity time.Time
	statuses     map[string]string
	stop         func()
	closed       bool
}

// New crea una sesión a partir del usuario devuelto por el login.
func New(id string, user entity.User, backendToken string, threshold int, now time.Time) *Session {
	return &Session{
		ID:             id,
		UserID:         user.ID,
		Username:       user.Username,
		Email:          user.Email,
		Role:           entity.NormalizeRole(user.Role),
		OrganizationID: user.OrganizationID,
		EmpID:          user.EmpID,
		CreatedAt:      now,
		backendToken:   backendToken,
		tracker:        alert.NewTracker(threshold),
		lastActivity:   now,
		statuses:       make(map[string]string),
	}
}

// Scope alcance de las llamadas al backend en nombre de la sesión.
func (s *Session) Scope() repository.Scope {
	return repository.Scope{OrganizationID: s.OrganizationID, Token: s.backendToken}
}

// Tracker conjunto de tanques ya alertados de esta sesión.
func (s *Session) Tracker() *alert.Tracker { return s.tracker }

// HasRole indica si la sesión tiene alguno de los roles.
func (s *Session) HasRole(roles ...string) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// Touch registra actividad.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	if now.After(s.lastActivity) {
		s.lastActivity = now
	}
	s.mu.Unlock()
}

// LastActivity última actividad registrada.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}

// Expired indica inactividad mayor a idle. idle <= 0 = nunca expira.
func (s *Session) Expired(now time.Time, idle time.Duration) bool {
	if idle <= 0 {
		return false
	}
	return now.Sub(s.LastActivity()) > idle
}

// LockRefresh toma el turno de refresco de tanques; devuelve cómo soltarlo.
func (s *Session) LockRefresh() (unlock func()) {
	s.refresh.Lock()
	return s.refresh.Unlock
}

// SetAlertStatus guarda el resultado del último intento de alerta de un tanque.
func (s *Session) SetAlertStatus(productID, status string) {
	s.mu.Lock()
	s.statuses[productID] = status
	s.mu.Unlock()
}

// ClearAlertStatus borra el estado de un tanque rearmado.
func (s *Session) ClearAlertStatus(productID string) {
	s.mu.Lock()
	delete(s.statuses, productID)
	s.mu.Unlock()
}

// AlertStatus estado de alerta de un tanque; vacío si no hay.
func (s *Session) AlertStatus(productID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statuses[productID]
}

// AlertStatuses copia de los estados de alerta.
func (s *Session) AlertStatuses() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.statuses))
	for k, v := range s.statuses {
		out[k] = v
	}
	return out
}

// AlertedProducts ids con alerta emitida en el episodio actual, ordenados.
func (s *Session) AlertedProducts() []string { return s.tracker.Alerted() }

// attachWatcher asocia la función que detiene el sondeo. Si la sesión ya se
// cerró, detiene de inmediato.
func (s *Session) attachWatcher(stop func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		stop()
		return
	}
	s.stop = stop
	s.mu.Unlock()
}

// close detiene el sondeo y descarta el estado de alertas. Idempotente.
func (s *Session) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	stop := s.stop
	s.stop = nil
	s.statuses = make(map[string]string)
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	s.tracker.Reset()
}

// Closed indica si la sesión fue destruida.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
