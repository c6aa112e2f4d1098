// Package cache guarda la última foto buena de tanques por organización.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
)

const keyPrefix = "finflux:tanks"

var _ ports.SnapshotStore = (*RedisSnapshotStore)(nil)

// RedisSnapshotStore snapshots serializados en JSON con TTL.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotStore instancia el almacén. ttl <= 0 = sin expiración.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

// NewRedisClient abre el cliente y verifica la conexión con PING.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping redis %s: %w", addr, err)
	}
	return client, nil
}

func tanksKey(organizationID string) string {
	return strings.Join([]string{keyPrefix, organizationID}, ":")
}

// SaveTanks reemplaza el snapshot de la organización.
func (s *RedisSnapshotStore) SaveTanks(ctx context.Context, snap dto.TankSnapshot) error {
	if s == nil || s.client == nil {
		return nil
	}
	if snap.OrganizationID == "" {
		return errors.New("cache: organization_id requerido")
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("cache: serializar snapshot: %w", err)
	}
	if err := s.client.Set(ctx, tanksKey(snap.OrganizationID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("cache: guardar snapshot: %w", err)
	}
	return nil
}

// LoadTanks devuelve el snapshot o (nil, nil) si no existe o expiró.
func (s *RedisSnapshotStore) LoadTanks(ctx context.Context, organizationID string) (*dto.TankSnapshot, error) {
	if s == nil || s.client == nil {
		return nil, nil
	}
	payload, err := s.client.Get(ctx, tanksKey(organizationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache: leer snapshot: %w", err)
	}
	var snap dto.TankSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("cache: snapshot corrupto: %w", err)
	}
	return &snap, nil
}
