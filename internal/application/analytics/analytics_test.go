package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/session"
	"github.com/jhoicas/finflux-dashboard/internal/domain"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
	"github.com/jhoicas/finflux-dashboard/internal/domain/repository"
)

// Viernes 16 de octubre de 2026, 10:00 local.
var now = time.Date(2026, 10, 16, 10, 0, 0, 0, time.Local)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func eqDec(t *testing.T, want, got decimal.Decimal, msg ...string) {
	t.Helper()
	assert.Truef(t, want.Equal(got), "esperado %s, obtenido %s %v", want, got, msg)
}

func ts(t time.Time) entity.Timestamp { return entity.Timestamp{Time: t} }

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

type fakeAttendance struct {
	fakeCollection[entity.Attendance]
}

func (f *fakeAttendance) ListByEmployee(context.Context, repository.Scope, string) ([]entity.Attendance, error) {
	return f.items, f.err
}

type fakeTasks struct {
	fakeCollection[entity.Task]
}

func (f *fakeTasks) ListByEmployee(context.Context, repository.Scope, string, string) ([]entity.Task, error) {
	return f.items, f.err
}

func newSession() *session.Session {
	return session.New("s1", entity.User{ID: "1", Role: "owner", OrganizationID: "org-1"}, "tok", 20, now)
}

func sale(product string, rupees, cash, upi, card int64, at time.Time) entity.SaleRecord {
	return entity.SaleRecord{
		ProductName:   product,
		SalesInRupees: d(rupees),
		SalesInLiters: d(rupees / 100),
		CashReceived:  d(cash),
		PhonePay:      d(upi),
		CreditCard:    d(card),
		DateTime:      ts(at),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarizeSales_TresVentasDiesel(t *testing.T) {
	records := []entity.SaleRecord{
		sale("Diesel", 100, 100, 0, 0, now),
		sale("Diesel", 200, 0, 200, 0, now.Add(-time.Hour)),
		sale("Diesel", 300, 0, 0, 300, now.AddDate(0, 0, -1)),
	}
	from, to, err := SalesRange(dto.SalesQuery{Preset: "month"}, now)
	require.NoError(t, err)

	out := SummarizeSales(records, from, to, now)
	assert.Equal(t, 3, out.Records)
	eqDec(t, d(600), out.TotalSales)
	require.Len(t, out.FuelDistribution, 1)
	assert.Equal(t, "Diesel", out.FuelDistribution[0].Name)
	assert.Equal(t, 100, out.FuelDistribution[0].Percent)

	require.Len(t, out.PaymentMethods, 3)
	byName := map[string]int{}
	for _, p := range out.PaymentMethods {
		byName[p.Name] = p.Percent
	}
	assert.Equal(t, map[string]int{"Cash": 17, "UPI": 33, "Card": 50}, byName)

	require.Len(t, out.Daily, 7)
	eqDec(t, d(300), out.Daily[6].Value)
	eqDec(t, d(300), out.Daily[5].Value)
	assert.Equal(t, "2026-10-16", out.Daily[6].Date)
}

func TestSummarizeSales_FueraDeRango(t *testing.T) {
	records := []entity.SaleRecord{
		sale("Petrol", 500, 500, 0, 0, now.AddDate(0, -1, 0)),
		sale("Petrol", 50, 50, 0, 0, now),
	}
	from, to, err := SalesRange(dto.SalesQuery{Preset: "today"}, now)
	require.NoError(t, err)
	out := SummarizeSales(records, from, to, now)
	assert.Equal(t, 1, out.Records)
	eqDec(t, d(50), out.TotalSales)
}

func TestSummarizeSales_SinRegistros(t *testing.T) {
	out := SummarizeSales(nil, time.Time{}, time.Time{}, now)
	assert.True(t, out.TotalSales.IsZero())
	assert.Empty(t, out.FuelDistribution)
	for _, p := range out.PaymentMethods {
		assert.Equal(t, 0, p.Percent, "total cero no produce NaN")
	}
	assert.Len(t, out.Daily, 7)
}

func TestSalesRange(t *testing.T) {
	from, to, err := SalesRange(dto.SalesQuery{Preset: "custom", From: "2026-10-01", To: "2026-10-05"}, now)
	require.NoError(t, err)
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 5, to.Day())
	assert.Equal(t, 23, to.Hour(), "to incluye todo el día")

	_, _, err = SalesRange(dto.SalesQuery{Preset: "custom", From: "2026-10-05", To: "2026-10-01"}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = SalesRange(dto.SalesQuery{Preset: "custom", From: "2026-10-05"}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = SalesRange(dto.SalesQuery{Preset: "year"}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	from, _, err = SalesRange(dto.SalesQuery{}, now)
	require.NoError(t, err)
	assert.Equal(t, 16, from.Day(), "sin preset es hoy")
}

func TestAnalyticsUseCase_SalesConsultaRango(t *testing.T) {
	sales := &fakeSales{}
	sales.items = []entity.SaleRecord{sale("CNG", 70, 70, 0, 0, now)}
	uc := NewAnalyticsUseCase(Sources{Sales: sales})
	uc.now = func() time.Time { return now }

	out, err := uc.Sales(context.Background(), newSession(), dto.SalesQuery{Preset: "week"})
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, sales.from.Weekday())
	assert.Equal(t, 11, sales.from.Day())
	eqDec(t, d(70), out.TotalSales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos, depósitos, clientes, asistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarizeExpenses(t *testing.T) {
	items := []entity.Expense{
		{Amount: d(100), Category: "Maintenance", Status: "pending", Date: entity.NewDate(now)},
		{Amount: d(200), Category: "Utilities", Status: "APPROVED", Date: entity.NewDate(now)},
		{Amount: d(300), Category: "Utilities", Status: "approved", Date: entity.NewDate(now.AddDate(0, 0, -2))},
	}
	out := SummarizeExpenses(items, now)
	assert.Equal(t, 3, out.Count)
	eqDec(t, d(600), out.Total)
	assert.Equal(t, 1, out.Pending)
	assert.Equal(t, 1, out.ApprovedToday)
	eqDec(t, d(200), out.Average)
	require.Len(t, out.ByCategory, 2)
	assert.Equal(t, "Utilities", out.ByCategory[0].Name)
	assert.Equal(t, 83, out.ByCategory[0].Percent)

	empty := SummarizeExpenses(nil, now)
	eqDec(t, decimal.Zero, empty.Average, "sin gastos el promedio es 0")
}

func TestSummarizeDeposits_Busqueda(t *testing.T) {
	items := []entity.BankDeposit{
		{Amount: d(1000), BankName: "SBI", AccountNumber: "111", ReferenceNumber: "REF-A", DepositedBy: "Ravi", DepositDate: entity.NewDate(now)},
		{Amount: d(500), BankName: "HDFC", AccountNumber: "222", ReferenceNumber: "REF-B", DepositedBy: "Anil", DepositDate: entity.NewDate(now.AddDate(0, 0, -3))},
		{Amount: d(250), BankName: "SBI", AccountNumber: "333", ReferenceNumber: "REF-C", DepositedBy: "Kiran", DepositDate: entity.NewDate(now.AddDate(0, -1, 0))},
	}
	all := SummarizeDeposits(items, "", now)
	assert.Equal(t, 3, all.TotalCount)
	eqDec(t, d(1750), all.TotalAmount)
	assert.Equal(t, 1, all.TodayCount)
	eqDec(t, d(1000), all.TodayAmount)
	assert.Equal(t, 2, all.MonthCount)
	eqDec(t, d(1500), all.MonthAmount)

	sbi := SummarizeDeposits(items, "  sbi ", now)
	assert.Equal(t, 2, sbi.TotalCount)
	assert.Equal(t, "sbi", sbi.Search)

	assert.Len(t, FilterDeposits(items, "ref-b"), 1)
	assert.Len(t, FilterDeposits(items, "kiran"), 1)
	assert.Len(t, FilterDeposits(items, "222"), 1)
	assert.Empty(t, FilterDeposits(items, "axis"))
}

func TestSummarizeBorrowers(t *testing.T) {
	customers := []entity.Customer{
		{Name: "A", TotalBorrowed: d(1000), TotalRepaid: d(400), CreditLimit: d(700)},
		{Name: "B", TotalBorrowed: d(1000), TotalRepaid: d(600), Outstanding: d(400), CreditLimit: d(1000)},
	}
	out := SummarizeBorrowers(customers)
	eqDec(t, d(1000), out.TotalOutstanding)
	eqDec(t, d(2000), out.TotalBorrowed)
	eqDec(t, d(1000), out.TotalRepaid)
	assert.Equal(t, 50, out.CollectionRate)
	assert.Equal(t, []string{"A"}, out.NearLimit)

	assert.Equal(t, 0, SummarizeBorrowers(nil).CollectionRate)
}

func TestSummarizeAttendance(t *testing.T) {
	checkIn := time.Date(2026, 10, 16, 8, 0, 0, 0, time.Local)
	records := []entity.Attendance{
		{EmpID: "E1", Present: true, CheckIn: ts(checkIn), CheckOut: ts(checkIn.Add(8 * time.Hour))},
		{EmpID: "E2", CheckIn: ts(checkIn), CheckOut: ts(checkIn.Add(6 * time.Hour)),
			BreakIn: ts(checkIn.Add(2 * time.Hour)), BreakOut: ts(checkIn.Add(3 * time.Hour))},
		{EmpID: "E3", Absent: true},
		{EmpID: "E4", Present: true, CheckIn: ts(checkIn.AddDate(0, 0, -1)), CheckOut: ts(checkIn.AddDate(0, 0, -1).Add(time.Hour))},
	}
	out := SummarizeAttendance(records, now)
	assert.Equal(t, "2026-10-16", out.Date)
	assert.Equal(t, 3, out.Records)
	assert.Equal(t, 2, out.PresentToday)
	assert.Equal(t, 1, out.AbsentToday)
	eqDec(t, decimal.RequireFromString("6.5"), out.AverageHours)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func dashboardSources() (Sources, *fakeSales) {
	sales := &fakeSales{}
	sales.items = []entity.SaleRecord{
		sale("Diesel", 1000, 1000, 0, 0, now),
		sale("Petrol", 500, 500, 0, 0, now.AddDate(0, 0, -3)),
		sale("Petrol", 200, 200, 0, 0, time.Date(2026, 9, 30, 12, 0, 0, 0, time.Local)),
	}
	return Sources{
		Products: &fakeCollection[entity.Product]{items: []entity.Product{
			{ID: "p1", ProductName: "Diesel", TankCapacity: d(1000), CurrentLevel: d(100), Status: true},
			{ID: "p2", ProductName: "Petrol", TankCapacity: d(1000), CurrentLevel: d(900), Status: true},
			{ID: "p3", ProductName: "CNG", TankCapacity: d(1000), CurrentLevel: d(10), Status: false},
		}},
		Sales: sales,
		Expenses: &fakeCollection[entity.Expense]{items: []entity.Expense{
			{Amount: d(300), Status: "approved", Date: entity.NewDate(now)},
			{Amount: d(999), Status: "pending", Date: entity.NewDate(now)},
		}},
		Deposits: &fakeCollection[entity.BankDeposit]{items: []entity.BankDeposit{
			{Amount: d(1200), DepositDate: entity.NewDate(now)},
			{Amount: d(50), DepositDate: entity.NewDate(now.AddDate(0, -2, 0))},
		}},
	}, sales
}

func TestDashboard_GetSummary(t *testing.T) {
	src, sales := dashboardSources()
	uc := NewDashboardUseCase(src)
	uc.now = func() time.Time { return now }

	out, err := uc.GetSummary(context.Background(), newSession())
	require.NoError(t, err)
	eqDec(t, d(1000), out.TodaySales)
	eqDec(t, d(10), out.TodayLiters)
	eqDec(t, d(1500), out.MonthlySales, "septiembre no cuenta")
	eqDec(t, d(300), out.MonthlyExpenses, "solo aprobados")
	eqDec(t, d(1200), out.MonthlyDeposits)
	assert.Equal(t, 2, out.ActiveTanks)
	require.Len(t, out.LowTanks, 1)
	assert.Equal(t, "p1", out.LowTanks[0].ProductID)
	require.Len(t, out.Daily, 7)
	eqDec(t, d(1000), out.Daily[6].Value)
	assert.Equal(t, "October 2026", out.DateLabel)
	assert.Equal(t, 1, sales.from.Day(), "el mes empieza antes que la ventana de 7 días")
}

func TestDashboard_InicioDeMesPideSieteDias(t *testing.T) {
	src, sales := dashboardSources()
	uc := NewDashboardUseCase(src)
	early := time.Date(2026, 10, 2, 9, 0, 0, 0, time.Local)
	uc.now = func() time.Time { return early }

	_, err := uc.GetSummary(context.Background(), newSession())
	require.NoError(t, err)
	assert.Equal(t, time.September, sales.from.Month())
	assert.Equal(t, 26, sales.from.Day())
}

func TestDashboard_ErrorDeUnaFuente(t *testing.T) {
	src, _ := dashboardSources()
	src.Deposits = &fakeCollection[entity.BankDeposit]{err: domain.ErrBackendUnavailable}
	uc := NewDashboardUseCase(src)

	_, err := uc.GetSummary(context.Background(), newSession())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "depósitos")
}

func TestDashboard_EmpleadoSinDatosDeGestion(t *testing.T) {
	src, _ := dashboardSources()
	// Un empleado no debe tocar gastos, depósitos ni productos.
	src.Expenses = &fakeCollection[entity.Expense]{err: domain.ErrForbidden}
	src.Deposits = &fakeCollection[entity.BankDeposit]{err: domain.ErrForbidden}
	src.Products = &fakeCollection[entity.Product]{err: domain.ErrForbidden}
	src.Attendance = &fakeAttendance{fakeCollection[entity.Attendance]{items: []entity.Attendance{
		{EmpID: "E7", CheckIn: ts(now.Add(-2 * time.Hour)), CheckOut: ts(now.Add(-time.Hour)), Present: true},
		{EmpID: "E7", CheckIn: ts(now.AddDate(0, 0, -3)), CheckOut: ts(now.AddDate(0, 0, -3).Add(8 * time.Hour)), Present: true},
		{EmpID: "E7", CheckIn: ts(now.AddDate(0, -1, 0)), Present: true},
	}}}
	src.Tasks = &fakeTasks{fakeCollection[entity.Task]{items: []entity.Task{
		{Status: "pending"}, {Status: "in-progress"}, {Status: "Completed"},
	}}}
	uc := NewDashboardUseCase(src)
	uc.now = func() time.Time { return now }

	emp := session.New("s2", entity.User{ID: "2", Role: entity.RoleEmployee, OrganizationID: "org-1", EmpID: "E7"}, "tok", 20, now)
	out, err := uc.GetSummary(context.Background(), emp)
	require.NoError(t, err)
	assert.Nil(t, out.ManagementSummaryDTO)
	require.NotNil(t, out.Shift)
	assert.True(t, out.Shift.CheckedInToday)
	assert.Equal(t, 2, out.Shift.DaysPresent, "el mes anterior no cuenta")
	eqDec(t, d(9), out.Shift.HoursThisMonth)
	assert.Equal(t, 2, out.Shift.PendingTasks)
	eqDec(t, d(1000), out.TodaySales)
	assert.Equal(t, entity.RoleEmployee, out.Role)
}

func TestDashboard_EmpleadoSinEmpID(t *testing.T) {
	src, _ := dashboardSources()
	src.Attendance = &fakeAttendance{fakeCollection[entity.Attendance]{err: errors.New("no usado")}}
	uc := NewDashboardUseCase(src)
	uc.now = func() time.Time { return now }

	emp := session.New("s3", entity.User{ID: "3", Role: entity.RoleEmployee, OrganizationID: "org-1"}, "tok", 20, now)
	out, err := uc.GetSummary(context.Background(), emp)
	require.NoError(t, err)
	require.NotNil(t, out.Shift)
	assert.Zero(t, out.Shift.DaysPresent)
}

func TestAnalyticsUseCase_Listados(t *testing.T) {
	src, _ := dashboardSources()
	src.Customers = &fakeCollection[entity.Customer]{}
	src.Attendance = &fakeAttendance{}
	uc := NewAnalyticsUseCase(src)
	uc.now = func() time.Time { return now }
	s := newSession()

	exp, err := uc.Expenses(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 2, exp.Count)

	dep, err := uc.Deposits(context.Background(), s, "")
	require.NoError(t, err)
	assert.Equal(t, 2, dep.TotalCount)

	bor, err := uc.Borrowers(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 0, bor.Customers)
	assert.NotNil(t, bor.NearLimit)

	att, err := uc.Attendance(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 0, att.Records)
}
