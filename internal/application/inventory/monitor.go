// Package inventory lleva el estado de los tanques: foto actual, alertas de
// stock bajo por SMS, sondeo periódico por sesión, histórico y ajustes de nivel.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/domain/alert"
	"github.com/jhoicas/finflux-dashboard/internal/domain/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
	"github.com/jhoicas/finflux-dashboard/pkg/logger"
)

// DefaultPollInterval intervalo de refresco de tanques por sesión.
const DefaultPollInterval = 30 * time.Second

// Config parámetros del monitor.
type Config struct {
	Recipients   []string // destinatarios del SMS de stock bajo
	PollInterval time.Duration
}

// Monitor refresca tanques por sesión y emite una alerta por episodio de stock bajo.
type Monitor struct {
	products  repository.Collection[entity.Product]
	sms       ports.SMSSender
	snapshots ports.SnapshotStore
	scheduler ports.Scheduler
	cfg       Config
	log       *logger.Logger
	now       func() time.Time
}

// NewMonitor construye el monitor. snapshots y scheduler pueden ser nil.
func NewMonitor(
	products repository.Collection[entity.Product],
	sms ports.SMSSender,
	snapshots ports.SnapshotStore,
	scheduler ports.Scheduler,
	cfg Config,
	log *logger.Logger,
) *Monitor {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Monitor{
		products:  products,
		sms:       sms,
		snapshots: snapshots,
		scheduler: scheduler,
		cfg:       cfg,
		log:       log.Component("inventory"),
		now:       time.Now,
	}
}

// Watch arranca el sondeo de tanques de la sesión. Se usa como session.Watcher.
// Solo owner y manager ven inventario; para el resto no hay sondeo ni SMS.
func (m *Monitor) Watch(s *session.Session) (func(), error) {
	if !s.HasRole(entity.RoleOwner, entity.RoleManager) {
		return nil, nil
	}
	if m.scheduler == nil {
		return nil, errors.New("inventory: sin scheduler")
	}
	return m.scheduler.Every("tanks:"+s.ID, m.cfg.PollInterval, func(ctx context.Context) {
		if s.Closed() {
			return
		}
		if _, err := m.Refresh(ctx, s); err != nil && ctx.Err() == nil {
			m.log.Session(s.OrganizationID, s.ID).Warn().Err(err).Msg("refresco de tanques fallido")
		}
	})
}

// Refresh trae la foto completa de tanques y aplica la regla de alertas del tracker
// de la sesión. Cada entrada al episodio envía un SMS; un fallo de envío queda
// registrado en el estado del tanque y no detiene al resto. Los refrescos de una
// misma sesión corren de a uno.
func (m *Monitor) Refresh(ctx context.Context, s *session.Session) (*dto.RefreshResultDTO, error) {
	unlock := s.LockRefresh()
	defer unlock()

	products, err := m.fetch(ctx, s)
	if err != nil {
		return nil, err
	}
	fetchedAt := m.now()

	levels := make([]alert.TankLevel, 0, len(products))
	for _, p := range products {
		levels = append(levels, alert.TankLevel{
			ProductID:   p.ID.String(),
			ProductName: p.ProductName,
			Percent:     p.FillPercent(),
			Active:      p.IsActive(),
		})
	}
	decision := s.Tracker().Evaluate(levels)

	res := &dto.RefreshResultDTO{
		FetchedAt:  fetchedAt,
		Tanks:      len(products),
		Notified:   []string{},
		Suppressed: []string{},
		Rearmed:    decision.Rearmed,
	}
	if res.Rearmed == nil {
		res.Rearmed = []string{}
	}

	for _, key := range decision.Rearmed {
		s.ClearAlertStatus(key)
	}
	for _, l := range decision.Suppressed {
		res.Suppressed = append(res.Suppressed, l.ProductID)
		if s.AlertStatus(l.ProductID) == "" {
			s.SetAlertStatus(l.ProductID, dto.AlertSuppressed)
		}
	}
	for _, l := range decision.Notify {
		res.Notified = append(res.Notified, l.ProductID)
		s.SetAlertStatus(l.ProductID, m.notify(ctx, s, l))
	}
	res.Statuses = s.AlertStatuses()

	m.save(ctx, s, m.tanks(products, s), fetchedAt)
	return res, nil
}

// notify envía el SMS de un tanque y devuelve el estado resultante.
func (m *Monitor) notify(ctx context.Context, s *session.Session, l alert.TankLevel) string {
	if m.sms == nil {
		return dto.AlertFailedPfx + "sin pasarela SMS"
	}
	err := m.sms.Send(ctx, ports.SMSMessage{To: m.cfg.Recipients, Body: LowStockMessage(l, s.Tracker().Threshold())})
	if err != nil {
		m.log.Session(s.OrganizationID, s.ID).Warn().Err(err).Str("product", l.ProductID).Msg("SMS de stock bajo no enviado")
		return dto.AlertFailedPfx + err.Error()
	}
	m.log.Session(s.OrganizationID, s.ID).Info().Str("product", l.ProductID).Int("percent", l.Percent).Msg("SMS de stock bajo enviado")
	return dto.AlertSent
}

// LowStockMessage texto del SMS de stock bajo.
func LowStockMessage(l alert.TankLevel, threshold int) string {
	name := strings.TrimSpace(l.ProductName)
	if name == "" {
		name = l.ProductID
	}
	return fmt.Sprintf("Low stock alert: %s tank at %d%% (below %d%%). Please arrange a refill.", name, l.Percent, threshold)
}

// Overview foto actual de tanques con totales. Si el backend falla y hay una foto
// guardada, la devuelve marcada como Stale.
func (m *Monitor) Overview(ctx context.Context, s *session.Session) (*dto.TankOverviewDTO, error) {
	products, err := m.fetch(ctx, s)
	if err != nil {
		snap := m.load(ctx, s.OrganizationID)
		if snap == nil {
			return nil, err
		}
		m.log.Warn().Err(err).Str("organization", s.OrganizationID).Msg("tanques desde snapshot")
		ov := summarize(snap.Tanks, s.Tracker().Threshold(), snap.FetchedAt)
		ov.Stale = true
		return ov, nil
	}
	fetchedAt := m.now()
	tanks := m.tanks(products, s)
	m.save(ctx, s, tanks, fetchedAt)
	return summarize(tanks, s.Tracker().Threshold(), fetchedAt), nil
}

func (m *Monitor) fetch(ctx context.Context, s *session.Session) ([]entity.Product, error) {
	page, err := m.products.List(ctx, s.Scope(), repository.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("inventory: listar productos: %w", err)
	}
	return page.Items, nil
}

// tanks proyecta productos a lecturas con estado de alerta de la sesión.
func (m *Monitor) tanks(products []entity.Product, s *session.Session) []dto.TankDTO {
	threshold := s.Tracker().Threshold()
	out := make([]dto.TankDTO, 0, len(products))
	for _, p := range products {
		t := ToTankDTO(p, threshold)
		t.AlertStatus = s.AlertStatus(t.ProductID)
		out = append(out, t)
	}
	return out
}

// ToTankDTO lectura de un tanque con porcentaje, etiqueta y marca de stock bajo.
func ToTankDTO(p entity.Product, threshold int) dto.TankDTO {
	pct := p.FillPercent()
	active := p.IsActive()
	return dto.TankDTO{
		ProductID:    p.ID.String(),
		ProductName:  p.ProductName,
		Metric:       p.Metric,
		CurrentLevel: p.CurrentLevel,
		TankCapacity: p.TankCapacity,
		Percent:      pct,
		Status:       analytics.StockStatus(pct),
		Active:       active,
		Low:          active && pct < threshold,
	}
}

func summarize(tanks []dto.TankDTO, threshold int, fetchedAt time.Time) *dto.TankOverviewDTO {
	ov := &dto.TankOverviewDTO{
		Tanks:         tanks,
		TotalProducts: len(tanks),
		TotalCapacity: decimal.Zero,
		TotalStock:    decimal.Zero,
		Threshold:     threshold,
		FetchedAt:     fetchedAt,
	}
	if ov.Tanks == nil {
		ov.Tanks = []dto.TankDTO{}
	}
	for _, t := range tanks {
		ov.TotalCapacity = ov.TotalCapacity.Add(t.TankCapacity)
		ov.TotalStock = ov.TotalStock.Add(t.CurrentLevel)
		if t.Active {
			ov.ActiveProducts++
		}
		if t.Low {
			ov.LowCount++
		}
	}
	return ov
}

// save guarda la foto; un fallo del caché solo se registra.
func (m *Monitor) save(ctx context.Context, s *session.Session, tanks []dto.TankDTO, at time.Time) {
	if m.snapshots == nil {
		return
	}
	snap := dto.TankSnapshot{OrganizationID: s.OrganizationID, FetchedAt: at, Tanks: tanks}
	if err := m.snapshots.SaveTanks(ctx, snap); err != nil {
		m.log.Warn().Err(err).Str("organization", s.OrganizationID).Msg("no se pudo guardar snapshot de tanques")
	}
}

func (m *Monitor) load(ctx context.Context, orgID string) *dto.TankSnapshot {
	if m.snapshots == nil {
		return nil
	}
	snap, err := m.snapshots.LoadTanks(ctx, orgID)
	if err != nil {
		m.log.Warn().Err(err).Str("organization", orgID).Msg("no se pudo leer snapshot de tanques")
		return nil
	}
	return snap
}
