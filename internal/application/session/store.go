package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/pkg/logger"
)

// DefaultInactivity tiempo sin actividad tras el cual la sesión se destruye.
const DefaultInactivity = 30 * time.Minute

// Watcher arranca la tarea de sondeo de una sesión y devuelve cómo detenerla.
type Watcher func(s *Session) (stop func(), err error)

// Config parámetros del almacén.
type Config struct {
	Inactivity time.Duration
	Threshold  int // umbral de alerta para los trackers nuevos
}

// Store registro de sesiones vivas en memoria del proceso.
type Store struct {
	cfg Config
	log *logger.Logger
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
	watcher  Watcher
}

// NewStore construye el almacén.
func NewStore(cfg Config, log *logger.Logger) *Store {
	if cfg.Inactivity == 0 {
		cfg.Inactivity = DefaultInactivity
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		cfg:      cfg,
		log:      log.Component("session"),
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// SetWatcher registra la función que arranca el sondeo de cada sesión nueva.
func (st *Store) SetWatcher(w Watcher) {
	st.mu.Lock()
	st.watcher = w
	st.mu.Unlock()
}

// Open crea y registra una sesión y arranca su sondeo. Un fallo del sondeo
// no invalida la sesión: se registra y el tablero sigue usable.
func (st *Store) Open(user entity.User, backendToken string) (*Session, error) {
	if user.OrganizationID == "" {
		return nil, errors.New("session: organización requerida")
	}
	s := New(uuid.NewString(), user, backendToken, st.cfg.Threshold, st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	w := st.watcher
	st.mu.Unlock()

	if w != nil {
		stop, err := w(s)
		if err != nil {
			st.log.Warn().Err(err).Str("session", s.ID).Msg("no se pudo iniciar el sondeo")
		} else if stop != nil {
			s.attachWatcher(stop)
		}
	}
	st.log.Info().Str("session", s.ID).Str("user", s.Username).Str("role", s.Role).Msg("sesión abierta")
	return s, nil
}

// Get devuelve la sesión y registra actividad. Una sesión vencida se destruye
// y devuelve domain.ErrSessionExpired.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	now := st.now()
	if s.Expired(now, st.cfg.Inactivity) {
		st.remove(id)
		st.log.Info().Str("session", id).Msg("sesión expirada por inactividad")
		return nil, domain.ErrSessionExpired
	}
	s.Touch(now)
	return s, nil
}

// Close destruye la sesión. Cerrar una sesión inexistente no es error.
func (st *Store) Close(id string) {
	if st.remove(id) {
		st.log.Info().Str("session", id).Msg("sesión cerrada")
	}
}

// Sweep destruye las sesiones vencidas y devuelve cuántas.
func (st *Store) Sweep() int {
	now := st.now()
	st.mu.RLock()
	var expired []string
	for id, s := range st.sessions {
		if s.Expired(now, st.cfg.Inactivity) {
			expired = append(expired, id)
		}
	}
	st.mu.RUnlock()

	n := 0
	for _, id := range expired {
		if st.remove(id) {
			n++
		}
	}
	if n > 0 {
		st.log.Info().Int("expired", n).Msg("sesiones vencidas destruidas")
	}
	return n
}

// Shutdown destruye todas las sesiones (apagado del servicio).
func (st *Store) Shutdown() {
	st.mu.Lock()
	all := st.sessions
	st.sessions = make(map[string]*Session)
	st.mu.Unlock()
	for _, s := range all {
		s.close()
	}
}

// Len cantidad de sesiones vivas.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) remove(id string) bool {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if ok {
		s.close()
	}
	return ok
}
