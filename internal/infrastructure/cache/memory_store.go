package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
)

var _ ports.SnapshotStore = (*MemoryStore)(nil)

type memoryEntry struct {
	snap    dto.TankSnapshot
	expires time.Time // cero = sin expiración
}

// MemoryStore snapshots en memoria del proceso, usado cuando REDIS_ADDR está vacío.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore construye el almacén.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

// SaveTanks reemplaza el snapshot de la organización.
func (m *MemoryStore) SaveTanks(_ context.Context, snap dto.TankSnapshot) error {
	if snap.OrganizationID == "" {
		return errors.New("cache: organization_id requerido")
	}
	snap.Tanks = append([]dto.TankDTO(nil), snap.Tanks...)
	e := memoryEntry{snap: snap}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.entries[snap.OrganizationID] = e
	m.mu.Unlock()
	return nil
}

// LoadTanks devuelve una copia del snapshot o (nil, nil).
func (m *MemoryStore) LoadTanks(_ context.Context, organizationID string) (*dto.TankSnapshot, error) {
	m.mu.RLock()
	e, ok := m.entries[organizationID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !e.expires.IsZero() && m.now().After(e.expires) {
		m.mu.Lock()
		delete(m.entries, organizationID)
		m.mu.Unlock()
		return nil, nil
	}
	snap := e.snap
	snap.Tanks = append([]dto.TankDTO(nil), e.snap.Tanks...)
	return &snap, nil
}
