package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_DecodeStatusFlexible(t *testing.T) {
	raw := `[
		{"id": 7, "productName": "Diesel", "tankCapacity": 10000, "currentLevel": 1500, "status": true},
		{"id": "a-1", "productName": "Petrol", "tankCapacity": "8000", "currentLevel": 6100, "status": "true"},
		{"id": null, "productName": "CNG", "tankCapacity": 3000, "currentLevel": 100, "status": "false"},
		{"productName": "Old", "tankCapacity": 0, "currentLevel": 0, "status": null}
	]`
	var products []Product
	require.NoError(t, json.Unmarshal([]byte(raw), &products))
	require.Len(t, products, 4)

	assert.Equal(t, ID("7"), products[0].ID)
	assert.True(t, products[0].IsActive())
	assert.Equal(t, 15, products[0].FillPercent())

	assert.Equal(t, ID("a-1"), products[1].ID)
	assert.True(t, products[1].IsActive(), "status \"true\" en string cuenta como activo")
	assert.Equal(t, 76, products[1].FillPercent())

	assert.False(t, products[2].IsActive())
	assert.False(t, products[3].IsActive())
	assert.Equal(t, 0, products[3].FillPercent(), "capacidad cero no divide")
}

func TestFillPercent_RedondeoMitadArriba(t *testing.T) {
	assert.Equal(t, 20, FillPercent(decimal.RequireFromString("199.5"), decimal.NewFromInt(1000)))
	assert.Equal(t, 19, FillPercent(decimal.RequireFromString("194.9"), decimal.NewFromInt(1000)))
	assert.Equal(t, 0, FillPercent(decimal.NewFromInt(10), decimal.NewFromInt(-5)))
}

func TestTimestamp_Layouts(t *testing.T) {
	cases := map[string]time.Time{
		`"2025-10-01T08:30:00Z"`:    time.Date(2025, 10, 1, 8, 30, 0, 0, time.UTC),
		`"2025-10-01T08:30:00"`:     time.Date(2025, 10, 1, 8, 30, 0, 0, time.Local),
		`"2025-10-01T08:30:00.123"`: time.Date(2025, 10, 1, 8, 30, 0, 123000000, time.Local),
		`"2024-01-08 14:30"`:        time.Date(2024, 1, 8, 14, 30, 0, 0, time.Local),
		`"2024-01-08"`:              time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local),
	}
	for in, want := range cases {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts), in)
		assert.True(t, want.Equal(ts.Time), "entrada %s: esperado %v, obtenido %v", in, want, ts.Time)
	}

	var empty Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())

	var bad Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"ayer"`), &bad))
}

func TestDate_RoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-09T17:45:00"`), &d))
	assert.Equal(t, "2025-03-09", d.String())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2025-03-09"`, string(out))

	out, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleOwner, NormalizeRole("OWNER"))
	assert.Equal(t, RoleManager, NormalizeRole("ROLE_MANAGER"))
	assert.Equal(t, RoleEmployee, NormalizeRole(" employee "))
	assert.Equal(t, RoleEmployee, NormalizeRole("superadmin"), "rol desconocido cae a employee")
	assert.Equal(t, RoleEmployee, NormalizeRole(""))
}

func TestAttendance_HoursWorked(t *testing.T) {
	in := time.Date(2025, 1, 2, 8, 0, 0, 0, time.Local)
	a := Attendance{
		CheckIn:  Timestamp{in},
		CheckOut: Timestamp{in.Add(9 * time.Hour)},
		BreakIn:  Timestamp{in.Add(4 * time.Hour)},
		BreakOut: Timestamp{in.Add(4*time.Hour + 30*time.Minute)},
	}
	assert.True(t, decimal.RequireFromString("8.5").Equal(a.HoursWorked()))

	a.CheckOut = Timestamp{}
	assert.True(t, a.HoursWorked().IsZero(), "sin salida no hay horas")
}

func TestCustomer_BalanceYLimite(t *testing.T) {
	c := Customer{
		CreditLimit:   decimal.NewFromInt(10000),
		TotalBorrowed: decimal.NewFromInt(15000),
		TotalRepaid:   decimal.NewFromInt(6000),
	}
	assert.True(t, decimal.NewFromInt(9000).Equal(c.Balance()))
	assert.True(t, c.NearLimit())
}
