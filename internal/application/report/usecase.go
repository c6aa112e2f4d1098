// Package report arma los datos de los reportes descargables y delega el
// render en los generadores de PDF y Excel.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finflux-dashboard/internal/application/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/inventory"
	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/application/validation"
	agg "github.com/jhoicas/finflux-dashboard/internal/domain/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// monthLayout formato del parámetro month (YYYY-MM).
const monthLayout = "2006-01"

// File reporte generado listo para descargar.
type File struct {
	Content     []byte
	Filename    string
	ContentType string
}

// Content types de los reportes.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportUseCase resumen mensual en PDF e inventario en Excel.
type ReportUseCase struct {
	src   analytics.Sources
	pdf   ports.MonthlySummaryRenderer
	sheet ports.InventorySheetRenderer
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso inyectando los generadores.
func NewReportUseCase(src analytics.Sources, pdf ports.MonthlySummaryRenderer, sheet ports.InventorySheetRenderer) *ReportUseCase {
	return &ReportUseCase{src: src, pdf: pdf, sheet: sheet, now: time.Now}
}

// MonthRange interpreta month (YYYY-MM); vacío = mes en curso. Devuelve inicio y fin inclusivos.
func MonthRange(month string, now time.Time) (time.Time, time.Time, error) {
	month = strings.TrimSpace(month)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if month != "" {
		t, err := time.ParseInLocation(monthLayout, month, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, validation.Fail("month", "debe tener formato "+monthLayout)
		}
		start = t
	}
	if start.After(now) {
		return time.Time{}, time.Time{}, validation.Fail("month", "no puede ser un mes futuro")
	}
	return start, agg.EndOfDay(start.AddDate(0, 1, -1)), nil
}

// MonthlySummary ventas, gastos y depósitos del mes en un PDF.
// Net = ventas - gastos aprobados del mes.
func (uc *ReportUseCase) MonthlySummary(ctx context.Context, s *session.Session, month string) (*File, error) {
	now := uc.now()
	from, to, err := MonthRange(month, now)
	if err != nil {
		return nil, err
	}
	// El desglose diario termina en el último día del mes o en hoy si el mes está en curso.
	ref := to
	if now.Before(to) {
		ref = now
	}

	// ── 1. Datos del mes ──────────────────────────────────────────────────────
	sales, err := uc.src.Sales.ListByDate(ctx, s.Scope(), from, to)
	if err != nil {
		return nil, fmt.Errorf("report: ventas del mes: %w", err)
	}
	expenses, err := listAll(ctx, uc.src.Expenses, s)
	if err != nil {
		return nil, fmt.Errorf("report: gastos: %w", err)
	}
	deposits, err := listAll(ctx, uc.src.Deposits, s)
	if err != nil {
		return nil, fmt.Errorf("report: depósitos: %w", err)
	}
	expenses = agg.Filter(expenses, func(e entity.Expense) bool { return agg.InRange(e.Date.Time, from, to) })
	deposits = agg.Filter(deposits, func(d entity.BankDeposit) bool { return agg.InRange(d.DepositDate.Time, from, to) })

	// ── 2. Resumen ────────────────────────────────────────────────────────────
	in := dto.MonthlySummary{
		Organization: s.OrganizationID,
		MonthLabel:   from.Format("January 2006"),
		GeneratedAt:  now,
		Sales:        analytics.SummarizeSales(sales, from, to, ref),
		Expenses:     analytics.SummarizeExpenses(expenses, ref),
		Deposits:     analytics.SummarizeDeposits(deposits, "", ref),
	}
	approved := agg.Sum(
		agg.Filter(expenses, func(e entity.Expense) bool { return strings.EqualFold(e.Status, entity.ExpenseApproved) }),
		func(e entity.Expense) decimal.Decimal { return e.Amount },
	)
	in.Net = in.Sales.TotalSales.Sub(approved)

	// ── 3. Render ─────────────────────────────────────────────────────────────
	content, err := uc.pdf.RenderMonthlySummary(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("report: generar PDF: %w", err)
	}
	return &File{
		Content:     content,
		Filename:    fmt.Sprintf("monthly-summary-%s.pdf", from.Format(monthLayout)),
		ContentType: ContentTypePDF,
	}, nil
}

// InventorySheet tanques y productos en una hoja Excel.
func (uc *ReportUseCase) InventorySheet(ctx context.Context, s *session.Session) (*File, error) {
	now := uc.now()
	products, err := listAll(ctx, uc.src.Products, s)
	if err != nil {
		return nil, fmt.Errorf("report: productos: %w", err)
	}
	threshold := s.Tracker().Threshold()
	in := dto.InventoryReport{
		Organization: s.OrganizationID,
		GeneratedAt:  now,
		Tanks:        make([]dto.TankDTO, 0, len(products)),
		Products:     make([]dto.ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		in.Tanks = append(in.Tanks, inventory.ToTankDTO(p, threshold))
		in.Products = append(in.Products, *inventory.ToProductResponse(p))
	}

	content, err := uc.sheet.RenderInventorySheet(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("report: generar Excel: %w", err)
	}
	return &File{
		Content:     content,
		Filename:    fmt.Sprintf("inventory-%s.xlsx", now.Format(entity.DateLayout)),
		ContentType: ContentTypeXLSX,
	}, nil
}

func listAll[T any](ctx context.Context, c repository.Collection[T], s *session.Session) ([]T, error) {
	page, err := c.List(ctx, s.Scope(), repository.ListOptions{})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
