package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	agg "github.com/jhoicas/finflux-dashboard/internal/domain/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// Sources colecciones del backend que alimentan las vistas derivadas.
type Sources struct {
	Products   repository.Collection[entity.Product]
	Sales      repository.SaleRepository
	Expenses   repository.Collection[entity.Expense]
	Deposits   repository.Collection[entity.BankDeposit]
	Customers  repository.Collection[entity.Customer]
	Attendance repository.AttendanceRepository
	Tasks      repository.TaskRepository // solo el resumen del empleado; puede ser nil
}

// AnalyticsUseCase trae cada colección completa y calcula su resumen.
// Cada llamada recalcula desde cero sobre la foto recién traída.
type AnalyticsUseCase struct {
	src Sources
	now func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(src Sources) *AnalyticsUseCase {
	return &AnalyticsUseCase{src: src, now: time.Now}
}

// SalesRange resuelve el rango de fechas del filtro. custom exige from y to.
func SalesRange(q dto.SalesQuery, now time.Time) (time.Time, time.Time, error) {
	if err := validation.Struct(q); err != nil {
		return time.Time{}, time.Time{}, err
	}
	preset := agg.Preset(strings.ToLower(strings.TrimSpace(q.Preset)))
	if preset != agg.PresetCustom {
		return agg.RangeForPreset(preset, now)
	}

	from, err := validation.ParseDate("from", q.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := validation.ParseDate("to", q.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from.IsZero() || to.IsZero() {
		return time.Time{}, time.Time{}, validation.Fail("from", "el rango custom requiere from y to")
	}
	if err := validation.DateOrder("from", from, "to", to); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, agg.EndOfDay(to), nil
}

// Sales resumen del histórico de ventas del rango.
func (uc *AnalyticsUseCase) Sales(ctx context.Context, s *session.Session, q dto.SalesQuery) (*dto.SalesSummaryDTO, error) {
	now := uc.now()
	from, to, err := SalesRange(q, now)
	if err != nil {
		return nil, err
	}
	records, err := uc.src.Sales.ListByDate(ctx, s.Scope(), from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics: histórico de ventas: %w", err)
	}
	out := SummarizeSales(records, from, to, now)
	return &out, nil
}

// Expenses resumen de gastos.
func (uc *AnalyticsUseCase) Expenses(ctx context.Context, s *session.Session) (*dto.ExpenseSummaryDTO, error) {
	items, err := listAll(ctx, uc.src.Expenses, s)
	if err != nil {
		return nil, fmt.Errorf("analytics: gastos: %w", err)
	}
	out := SummarizeExpenses(items, uc.now())
	return &out, nil
}

// Deposits resumen de depósitos con búsqueda opcional.
func (uc *AnalyticsUseCase) Deposits(ctx context.Context, s *session.Session, search string) (*dto.DepositSummaryDTO, error) {
	items, err := listAll(ctx, uc.src.Deposits, s)
	if err != nil {
		return nil, fmt.Errorf("analytics: depósitos: %w", err)
	}
	out := SummarizeDeposits(items, search, uc.now())
	return &out, nil
}

// Borrowers resumen de clientes a crédito.
func (uc *AnalyticsUseCase) Borrowers(ctx context.Context, s *session.Session) (*dto.BorrowerSummaryDTO, error) {
	items, err := listAll(ctx, uc.src.Customers, s)
	if err != nil {
		return nil, fmt.Errorf("analytics: clientes: %w", err)
	}
	out := SummarizeBorrowers(items)
	return &out, nil
}

// Attendance resumen de asistencia del día.
func (uc *AnalyticsUseCase) Attendance(ctx context.Context, s *session.Session) (*dto.AttendanceSummaryDTO, error) {
	items, err := listAll(ctx, uc.src.Attendance, s)
	if err != nil {
		return nil, fmt.Errorf("analytics: asistencia: %w", err)
	}
	out := SummarizeAttendance(items, uc.now())
	return &out, nil
}

// listAll pide la colección sin paginar.
func listAll[T any](ctx context.Context, c repository.Collection[T], s *session.Session) ([]T, error) {
	page, err := c.List(ctx, s.Scope(), repository.ListOptions{})
	if err != nil {
		return nil, err
	}
	if page.Items == nil {
		return []T{}, nil
	}
	return page.Items, nil
}
