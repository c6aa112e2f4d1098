package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	"github.com/jhoicas/finflux-dashboard/internal/domain/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// LevelUseCase histórico de niveles y ajuste manual del nivel de un tanque.
type LevelUseCase struct {
	products repository.Collection[entity.Product]
	logs     repository.InventoryLogRepository
}

// NewLevelUseCase construye el caso de uso.
func NewLevelUseCase(products repository.Collection[entity.Product], logs repository.InventoryLogRepository) *LevelUseCase {
	return &LevelUseCase{products: products, logs: logs}
}

// UpdateLevel valida y registra un nuevo nivel. El nivel no puede superar la capacidad del tanque.
func (uc *LevelUseCase) UpdateLevel(ctx context.Context, s *session.Session, productID string, in dto.UpdateLevelRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, validation.Fail("product_id", "es obligatorio")
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	p, err := uc.products.Get(ctx, s.Scope(), productID)
	if err != nil {
		return nil, err
	}
	if err := validation.LevelWithinCapacity(in.CurrentLevel, p.TankCapacity); err != nil {
		return nil, err
	}

	p.CurrentLevel = in.CurrentLevel
	p.LastUpdated = entity.Timestamp{Time: time.Now()}
	updated, err := uc.products.Update(ctx, s.Scope(), productID, p)
	if err != nil {
		return nil, fmt.Errorf("inventory: actualizar nivel: %w", err)
	}
	if updated == nil {
		updated = p
	}
	return ToProductResponse(*updated), nil
}

// History puntos del histórico de un producto en orden cronológico con mínimo,
// máximo y promedio del porcentaje de llenado. from/to cero no limitan.
func (uc *LevelUseCase) History(ctx context.Context, s *session.Session, productID string, from, to time.Time) (*dto.TankHistoryDTO, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, validation.Fail("product_id", "es obligatorio")
	}
	if err := validation.DateOrder("from", from, "to", to); err != nil {
		return nil, err
	}

	logs, err := uc.logs.ListByProduct(ctx, s.Scope(), productID, from, to)
	if err != nil {
		return nil, fmt.Errorf("inventory: histórico de niveles: %w", err)
	}

	out := &dto.TankHistoryDTO{ProductID: productID, Points: make([]dto.TankHistoryItem, 0, len(logs)), AvgPct: decimal.Zero}
	bounded := !from.IsZero() || !to.IsZero()
	for _, l := range logs {
		if bounded && !analytics.InRange(l.LastUpdated.Time, from, to) {
			continue
		}
		capacity := l.Capacity()
		out.Points = append(out.Points, dto.TankHistoryItem{
			At:           l.LastUpdated.Time,
			CurrentLevel: l.CurrentLevel,
			Capacity:     capacity,
			Percent:      entity.FillPercent(l.CurrentLevel, capacity),
		})
	}
	if len(out.Points) == 0 {
		return out, nil
	}

	sort.SliceStable(out.Points, func(i, j int) bool { return out.Points[i].At.Before(out.Points[j].At) })

	sum := 0
	out.MinPct, out.MaxPct = out.Points[0].Percent, out.Points[0].Percent
	for _, p := range out.Points {
		sum += p.Percent
		out.MinPct = min(out.MinPct, p.Percent)
		out.MaxPct = max(out.MaxPct, p.Percent)
	}
	out.AvgPct = analytics.Average(decimal.NewFromInt(int64(sum)), len(out.Points))
	return out, nil
}

// ToProductResponse producto con porcentaje, etiqueta de estado y valor del stock.
func ToProductResponse(p entity.Product) *dto.ProductResponse {
	pct := p.FillPercent()
	return &dto.ProductResponse{
		ID:           p.ID.String(),
		ProductName:  p.ProductName,
		Price:        p.Price,
		TankCapacity: p.TankCapacity,
		CurrentLevel: p.CurrentLevel,
		Metric:       p.Metric,
		Supplier:     p.Supplier,
		Description:  p.Description,
		Active:       p.IsActive(),
		Percent:      pct,
		Status:       analytics.StockStatus(pct),
		StockValue:   p.StockValue(),
	}
}
