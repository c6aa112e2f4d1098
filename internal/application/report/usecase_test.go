package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finflux-dashboard/internal/application/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

var now = time.Date(2026, 10, 16, 10, 0, 0, 0, time.Local)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(m time.Month, dd int) time.Time { return time.Date(2026, m, dd, 9, 0, 0, 0, time.Local) }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCollection[T any] struct {
	items []T
	err   error
}

func (f *fakeCollection[T]) List(context.Context, repository.Scope, repository.ListOptions) (*repository.Page[T], error) {
	if f.err != nil {
		return nil, f.err
	}
	return &repository.Page[T]{Items: f.items}, nil
}

func (f *fakeCollection[T]) Get(context.Context, repository.Scope, string) (*T, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeCollection[T]) Create(context.Context, repository.Scope, any) (*T, error) {
	return nil, errors.New("no usado")
}

func (f *fakeCollection[T]) Update(context.Context, repository.Scope, string, any) (*T, error) {
	return nil, errors.New("no usado")
}

func (f *fakeCollection[T]) Delete(context.Context, repository.Scope, string) error { return nil }

type fakeSales struct {
	fakeCollection[entity.SaleRecord]
	from, to time.Time
}

func (f *fakeSales) ListByDate(_ context.Context, _ repository.Scope, from, to time.Time) ([]entity.SaleRecord, error) {
	f.from, f.to = from, to
	return f.items, f.err
}

type fakePDF struct {
	got *dto.MonthlySummary
	err error
}

func (f *fakePDF) RenderMonthlySummary(_ context.Context, in dto.MonthlySummary) ([]byte, error) {
	f.got = &in
	return []byte("%PDF"), f.err
}

type fakeSheet struct{ got *dto.InventoryReport }

func (f *fakeSheet) RenderInventorySheet(_ context.Context, in dto.InventoryReport) ([]byte, error) {
	f.got = &in
	return []byte("PK"), nil
}

func newSession() *session.Session {
	u := entity.User{ID: "1", Username: "owner", Role: "owner", OrganizationID: "org-1"}
	return session.New("s1", u, "tok", 20, now)
}

// ──────────────────────────────────────────────────────────────────────────────
// MonthRange
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthRange(t *testing.T) {
	from, to, err := MonthRange("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local), from)
	assert.Equal(t, 31, to.Day())
	assert.Equal(t, 23, to.Hour())

	from, to, err = MonthRange("2026-02", now)
	require.NoError(t, err)
	assert.Equal(t, time.February, from.Month())
	assert.Equal(t, 28, to.Day(), "febrero de 2026 no es bisiesto")

	_, _, err = MonthRange("2026-11", now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "mes futuro")

	_, _, err = MonthRange("octubre", now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen mensual
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlySummary_DatosDelMes(t *testing.T) {
	sales := &fakeSales{}
	sales.items = []entity.SaleRecord{
		{ProductName: "Diesel", SalesInRupees: d(6000), CashReceived: d(6000), DateTime: entity.Timestamp{Time: day(10, 2)}},
		{ProductName: "Petrol", SalesInRupees: d(4000), PhonePay: d(4000), DateTime: entity.Timestamp{Time: day(10, 15)}},
	}
	expenses := &fakeCollection[entity.Expense]{items: []entity.Expense{
		{Amount: d(1000), Category: "Utilities", Status: "approved", Date: entity.NewDate(day(10, 3))},
		{Amount: d(500), Category: "Repairs", Status: "pending", Date: entity.NewDate(day(10, 4))},
		{Amount: d(9000), Category: "Utilities", Status: "approved", Date: entity.NewDate(day(9, 20))},
	}}
	deposits := &fakeCollection[entity.BankDeposit]{items: []entity.BankDeposit{
		{Amount: d(7000), BankName: "SBI", DepositDate: entity.NewDate(day(10, 5))},
		{Amount: d(3000), BankName: "HDFC", DepositDate: entity.NewDate(day(9, 30))},
	}}
	pdf := &fakePDF{}
	uc := NewReportUseCase(analytics.Sources{Sales: sales, Expenses: expenses, Deposits: deposits}, pdf, &fakeSheet{})
	uc.now = func() time.Time { return now }

	f, err := uc.MonthlySummary(context.Background(), newSession(), "")
	require.NoError(t, err)
	assert.Equal(t, "monthly-summary-2026-10.pdf", f.Filename)
	assert.Equal(t, ContentTypePDF, f.ContentType)
	assert.Equal(t, []byte("%PDF"), f.Content)

	require.NotNil(t, pdf.got)
	assert.Equal(t, "October 2026", pdf.got.MonthLabel)
	assert.Equal(t, "org-1", pdf.got.Organization)
	assert.True(t, d(10000).Equal(pdf.got.Sales.TotalSales))
	assert.Equal(t, 2, pdf.got.Expenses.Count, "gastos de septiembre fuera")
	assert.Equal(t, 1, pdf.got.Deposits.TotalCount)
	assert.True(t, d(9000).Equal(pdf.got.Net), "neto = ventas - gastos aprobados del mes")
	assert.Equal(t, 1, sales.from.Day())
	assert.Equal(t, 31, sales.to.Day())
}

func TestMonthlySummary_ErroresSePropagan(t *testing.T) {
	sales := &fakeSales{}
	sales.err = domain.ErrBackendUnavailable
	uc := NewReportUseCase(analytics.Sources{
		Sales:    sales,
		Expenses: &fakeCollection[entity.Expense]{},
		Deposits: &fakeCollection[entity.BankDeposit]{},
	}, &fakePDF{}, &fakeSheet{})
	uc.now = func() time.Time { return now }

	_, err := uc.MonthlySummary(context.Background(), newSession(), "2026-09")
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)

	sales.err = nil
	uc.pdf = &fakePDF{err: errors.New("fuente no encontrada")}
	_, err = uc.MonthlySummary(context.Background(), newSession(), "2026-09")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generar PDF")
}

// ──────────────────────────────────────────────────────────────────────────────
// Hoja de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventorySheet(t *testing.T) {
	products := &fakeCollection[entity.Product]{items: []entity.Product{
		{ID: "p1", ProductName: "Diesel", TankCapacity: d(1000), CurrentLevel: d(150), Status: true},
		{ID: "p2", ProductName: "Petrol", TankCapacity: d(1000), CurrentLevel: d(900), Status: true},
	}}
	sheet := &fakeSheet{}
	uc := NewReportUseCase(analytics.Sources{Products: products}, &fakePDF{}, sheet)
	uc.now = func() time.Time { return now }

	f, err := uc.InventorySheet(context.Background(), newSession())
	require.NoError(t, err)
	assert.Equal(t, "inventory-2026-10-16.xlsx", f.Filename)
	assert.Equal(t, ContentTypeXLSX, f.ContentType)

	require.NotNil(t, sheet.got)
	require.Len(t, sheet.got.Tanks, 2)
	assert.True(t, sheet.got.Tanks[0].Low, "15% bajo el umbral de 20%")
	assert.False(t, sheet.got.Tanks[1].Low)
	assert.Len(t, sheet.got.Products, 2)

	products.err = domain.ErrUnauthorized
	_, err = uc.InventorySheet(context.Background(), newSession())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
