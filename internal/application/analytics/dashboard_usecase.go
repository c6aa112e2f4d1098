// Package analytics calcula las vistas derivadas del tablero (ventas, gastos,
// depósitos, clientes, asistencia) y el resumen de la página principal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/inventory"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	agg "github.com/jhoicas/finflux-dashboard/internal/domain/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// DashboardUseCase genera el resumen del día y del mes en curso.
type DashboardUseCase struct {
	src Sources
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(src Sources) *DashboardUseCase {
	return &DashboardUseCase{src: src, now: time.Now}
}

type fetchResult[T any] struct {
	items []T
	err   error
}

// GetSummary construye el DashboardSummaryDTO de la organización de la sesión.
//
// Ventas desde el inicio del mes (o hace 7 días si es antes) hasta hoy para todos
// los roles. En paralelo, owner y manager piden gastos, depósitos y productos; un
// empleado pide solo su asistencia y sus tareas.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, s *session.Session) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayEnd := agg.EndOfDay(now)
	monthStart, _, _ := agg.RangeForPreset(agg.PresetMonth, now)
	weekStart := agg.StartOfDay(now).AddDate(0, 0, -(agg.DefaultDays - 1))
	salesFrom := monthStart
	if weekStart.Before(salesFrom) {
		salesFrom = weekStart
	}

	salesCh := make(chan fetchResult[entity.SaleRecord], 1)
	go func() {
		items, err := uc.src.Sales.ListByDate(ctx, s.Scope(), salesFrom, todayEnd)
		salesCh <- fetchResult[entity.SaleRecord]{items, err}
	}()

	out := &dto.DashboardSummaryDTO{Role: s.Role, DateLabel: monthLabel(now)}
	var roleErr error
	if s.HasRole(entity.RoleOwner, entity.RoleManager) {
		out.ManagementSummaryDTO, roleErr = uc.management(ctx, s, now)
	} else {
		out.Shift, roleErr = uc.shift(ctx, s, now)
	}

	sales := <-salesCh
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if roleErr != nil {
		return nil, roleErr
	}

	// ── Totales ────────────────────────────────────────────────────────────────
	saleAt := func(r entity.SaleRecord) time.Time { return r.DateTime.Time }
	rupees := func(r entity.SaleRecord) decimal.Decimal { return r.SalesInRupees }
	today := agg.Filter(sales.items, func(r entity.SaleRecord) bool { return agg.IsToday(saleAt(r), now) })
	month := agg.Filter(sales.items, func(r entity.SaleRecord) bool { return agg.SameMonth(saleAt(r), now) })

	out.TodaySales = agg.Sum(today, rupees)
	out.TodayLiters = agg.Sum(today, func(r entity.SaleRecord) decimal.Decimal { return r.SalesInLiters })
	out.MonthlySales = agg.Sum(month, rupees)
	out.Daily = toDays(agg.DailyBreakdown(sales.items, now, agg.DefaultDays, saleAt, rupees))
	return out, nil
}

// management gastos aprobados y depósitos del mes, tanques activos y bajos.
func (uc *DashboardUseCase) management(ctx context.Context, s *session.Session, now time.Time) (*dto.ManagementSummaryDTO, error) {
	expensesCh := make(chan fetchResult[entity.Expense], 1)
	depositsCh := make(chan fetchResult[entity.BankDeposit], 1)
	productsCh := make(chan fetchResult[entity.Product], 1)

	go func() {
		items, err := listAll(ctx, uc.src.Expenses, s)
		expensesCh <- fetchResult[entity.Expense]{items, err}
	}()
	go func() {
		items, err := listAll(ctx, uc.src.Deposits, s)
		depositsCh <- fetchResult[entity.BankDeposit]{items, err}
	}()
	go func() {
		items, err := listAll(ctx, uc.src.Products, s)
		productsCh <- fetchResult[entity.Product]{items, err}
	}()

	expenses := <-expensesCh
	deposits := <-depositsCh
	products := <-productsCh

	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: gastos: %w", expenses.err)
	}
	if deposits.err != nil {
		return nil, fmt.Errorf("dashboard: depósitos: %w", deposits.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}

	approvedThisMonth := agg.Filter(expenses.items, func(e entity.Expense) bool {
		return statusIs(e.Status, entity.ExpenseApproved) && agg.SameMonth(e.Date.Time, now)
	})
	depositsThisMonth := agg.Filter(deposits.items, func(d entity.BankDeposit) bool { return agg.SameMonth(d.DepositDate.Time, now) })

	threshold := s.Tracker().Threshold()
	m := &dto.ManagementSummaryDTO{
		MonthlyExpenses: agg.Sum(approvedThisMonth, func(e entity.Expense) decimal.Decimal { return e.Amount }),
		MonthlyDeposits: agg.Sum(depositsThisMonth, func(d entity.BankDeposit) decimal.Decimal { return d.Amount }),
		LowTanks:        []dto.TankDTO{},
	}
	for _, p := range products.items {
		t := inventory.ToTankDTO(p, threshold)
		if t.Active {
			m.ActiveTanks++
		}
		if t.Low {
			t.AlertStatus = s.AlertStatus(t.ProductID)
			m.LowTanks = append(m.LowTanks, t)
		}
	}
	return m, nil
}

// shift jornada del empleado de la sesión. Sin empId no hay nada que pedir.
func (uc *DashboardUseCase) shift(ctx context.Context, s *session.Session, now time.Time) (*dto.ShiftSummaryDTO, error) {
	out := &dto.ShiftSummaryDTO{HoursThisMonth: decimal.Zero}
	if s.EmpID == "" {
		return out, nil
	}

	attendanceCh := make(chan fetchResult[entity.Attendance], 1)
	tasksCh := make(chan fetchResult[entity.Task], 1)
	go func() {
		if uc.src.Attendance == nil {
			attendanceCh <- fetchResult[entity.Attendance]{}
			return
		}
		items, err := uc.src.Attendance.ListByEmployee(ctx, s.Scope(), s.EmpID)
		attendanceCh <- fetchResult[entity.Attendance]{items, err}
	}()
	go func() {
		if uc.src.Tasks == nil {
			tasksCh <- fetchResult[entity.Task]{}
			return
		}
		items, err := uc.src.Tasks.ListByEmployee(ctx, s.Scope(), s.EmpID, "")
		tasksCh <- fetchResult[entity.Task]{items, err}
	}()

	attendance := <-attendanceCh
	tasks := <-tasksCh
	if attendance.err != nil {
		return nil, fmt.Errorf("dashboard: asistencia: %w", attendance.err)
	}
	if tasks.err != nil {
		return nil, fmt.Errorf("dashboard: tareas: %w", tasks.err)
	}

	thisMonth := agg.Filter(attendance.items, func(a entity.Attendance) bool {
		return !a.CheckIn.IsZero() && agg.SameMonth(a.CheckIn.Time, now) && isPresent(a)
	})
	for _, a := range thisMonth {
		if agg.IsToday(a.CheckIn.Time, now) {
			out.CheckedInToday = true
		}
	}
	out.DaysPresent = len(thisMonth)
	out.HoursThisMonth = agg.Sum(thisMonth, entity.Attendance.HoursWorked)
	out.PendingTasks = len(agg.Filter(tasks.items, func(t entity.Task) bool { return !statusIs(t.Status, entity.TaskCompleted) }))
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "October 2026".
func monthLabel(t time.Time) string {
	return t.Format("January 2006")
}
