package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	agg "github.com/jhoicas/finflux-dashboard/internal/domain/analytics"
	"github.com/jhoicas/finflux-dashboard/internal/domain/entity"
)

// SummarizeSales totales, repartos y desglose diario de las ventas dentro de [from, to].
func SummarizeSales(records []entity.SaleRecord, from, to, now time.Time) dto.SalesSummaryDTO {
	inRange := agg.Filter(records, func(r entity.SaleRecord) bool { return agg.InRange(r.DateTime.Time, from, to) })
	rupees := func(r entity.SaleRecord) decimal.Decimal { return r.SalesInRupees }

	cash := agg.Sum(inRange, func(r entity.SaleRecord) decimal.Decimal { return r.CashReceived })
	upi := agg.Sum(inRange, func(r entity.SaleRecord) decimal.Decimal { return r.PhonePay })
	card := agg.Sum(inRange, func(r entity.SaleRecord) decimal.Decimal { return r.CreditCard })

	return dto.SalesSummaryDTO{
		From:             from,
		To:               to,
		Records:          len(inRange),
		TotalSales:       agg.Sum(inRange, rupees),
		TotalLiters:      agg.Sum(inRange, func(r entity.SaleRecord) decimal.Decimal { return r.SalesInLiters }),
		CashReceived:     cash,
		PhonePay:         upi,
		CreditCard:       card,
		ShortCollections: agg.Sum(inRange, func(r entity.SaleRecord) decimal.Decimal { return r.ShortCollections }),
		FuelDistribution: toShares(agg.Shares(agg.GroupSum(inRange, func(r entity.SaleRecord) string { return r.ProductName }, rupees))),
		PaymentMethods: toShares(agg.Shares([]agg.Bucket{
			{Name: entity.PaymentCash, Value: cash},
			{Name: entity.PaymentUPI, Value: upi},
			{Name: entity.PaymentCard, Value: card},
		})),
		Daily: toDays(agg.DailyBreakdown(records, now, agg.DefaultDays, func(r entity.SaleRecord) time.Time { return r.DateTime.Time }, rupees)),
	}
}

// SummarizeExpenses total, pendientes, aprobados hoy, promedio y reparto por categoría.
func SummarizeExpenses(items []entity.Expense, now time.Time) dto.ExpenseSummaryDTO {
	amount := func(e entity.Expense) decimal.Decimal { return e.Amount }
	total := agg.Sum(items, amount)
	return dto.ExpenseSummaryDTO{
		Count:   len(items),
		Total:   total,
		Pending: agg.Count(items, func(e entity.Expense) bool { return statusIs(e.Status, entity.ExpensePending) }),
		ApprovedToday: agg.Count(items, func(e entity.Expense) bool {
			return statusIs(e.Status, entity.ExpenseApproved) && agg.IsToday(e.Date.Time, now)
		}),
		Average:    agg.Average(total, len(items)),
		ByCategory: toShares(agg.Shares(agg.GroupSum(items, func(e entity.Expense) string { return e.Category }, amount))),
		Daily:      toDays(agg.DailyBreakdown(items, now, agg.DefaultDays, func(e entity.Expense) time.Time { return e.Date.Time }, amount)),
	}
}

// SummarizeDeposits totales general, del día y del mes. search filtra por banco,
// cuenta, referencia o depositante sin distinguir mayúsculas.
func SummarizeDeposits(items []entity.BankDeposit, search string, now time.Time) dto.DepositSummaryDTO {
	search = strings.TrimSpace(search)
	filtered := FilterDeposits(items, search)
	amount := func(d entity.BankDeposit) decimal.Decimal { return d.Amount }
	today := agg.Filter(filtered, func(d entity.BankDeposit) bool { return agg.IsToday(d.DepositDate.Time, now) })
	month := agg.Filter(filtered, func(d entity.BankDeposit) bool { return agg.SameMonth(d.DepositDate.Time, now) })

	return dto.DepositSummaryDTO{
		TotalCount:  len(filtered),
		TotalAmount: agg.Sum(filtered, amount),
		TodayCount:  len(today),
		TodayAmount: agg.Sum(today, amount),
		MonthCount:  len(month),
		MonthAmount: agg.Sum(month, amount),
		ByBank:      toShares(agg.Shares(agg.GroupSum(filtered, func(d entity.BankDeposit) string { return d.BankName }, amount))),
		Search:      search,
	}
}

// FilterDeposits aplica la búsqueda de texto; vacío devuelve todo.
func FilterDeposits(items []entity.BankDeposit, search string) []entity.BankDeposit {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return items
	}
	return agg.Filter(items, func(d entity.BankDeposit) bool {
		for _, f := range []string{d.BankName, d.AccountNumber, d.ReferenceNumber, d.DepositedBy} {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	})
}

// SummarizeBorrowers saldo pendiente, prestado, cobrado y tasa de cobro.
func SummarizeBorrowers(customers []entity.Customer) dto.BorrowerSummaryDTO {
	borrowed := agg.Sum(customers, func(c entity.Customer) decimal.Decimal { return c.TotalBorrowed })
	repaid := agg.Sum(customers, func(c entity.Customer) decimal.Decimal { return c.TotalRepaid })
	near := []string{}
	for _, c := range customers {
		if c.NearLimit() {
			near = append(near, c.Name)
		}
	}
	return dto.BorrowerSummaryDTO{
		Customers:        len(customers),
		TotalOutstanding: agg.Sum(customers, entity.Customer.Balance),
		TotalBorrowed:    borrowed,
		TotalRepaid:      repaid,
		CollectionRate:   agg.Percentage(repaid, borrowed),
		NearLimit:        near,
	}
}

// SummarizeAttendance presentes, ausentes y horas promedio del día.
// Un registro sin entrada cuenta como del día: el backend lista la jornada en curso.
func SummarizeAttendance(records []entity.Attendance, now time.Time) dto.AttendanceSummaryDTO {
	today := agg.Filter(records, func(a entity.Attendance) bool {
		return a.CheckIn.IsZero() || agg.IsToday(a.CheckIn.Time, now)
	})
	present := agg.Filter(today, isPresent)
	worked := agg.Filter(present, func(a entity.Attendance) bool { return a.HoursWorked().IsPositive() })
	hours := agg.Sum(worked, entity.Attendance.HoursWorked)

	return dto.AttendanceSummaryDTO{
		Date:         agg.StartOfDay(now).Format(entity.DateLayout),
		PresentToday: len(present),
		AbsentToday:  len(today) - len(present),
		AverageHours: agg.Average(hours, len(worked)),
		Records:      len(today),
	}
}

func isPresent(a entity.Attendance) bool {
	if bool(a.Present) {
		return true
	}
	return !bool(a.Absent) && !a.CheckIn.IsZero()
}

func statusIs(status, want string) bool {
	return strings.EqualFold(strings.TrimSpace(status), want)
}

func toShares(in []agg.Share) []dto.ShareDTO {
	out := make([]dto.ShareDTO, 0, len(in))
	for _, s := range in {
		out = append(out, dto.ShareDTO{Name: s.Name, Value: s.Value, Percent: s.Percent})
	}
	return out
}

func toDays(in []agg.DayBucket) []dto.DayDTO {
	out := make([]dto.DayDTO, 0, len(in))
	for _, d := range in {
		out = append(out, dto.DayDTO{Date: d.Date.Format(entity.DateLayout), Label: d.Label, Value: d.Value, Count: d.Count})
	}
	return out
}
