package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDays tamaño del desglose diario del tablero.
const DefaultDays = 7

// StartOfDay medianoche local del día de t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay último instante del día de t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay compara día de calendario en la zona de now.
func SameDay(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	t = t.In(now.Location())
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

// IsToday indica si t cae en el día local de now.
func IsToday(t, now time.Time) bool { return SameDay(t, now) }

// SameMonth compara año y mes en la zona de now.
func SameMonth(t, now time.Time) bool {
	if t.IsZero() {
		return false
	}
	t = t.In(now.Location())
	return t.Year() == now.Year() && t.Month() == now.Month()
}

// InRange indica from <= t <= to. Un extremo cero no limita.
func InRange(t, from, to time.Time) bool {
	if t.IsZero() {
		return false
	}
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

// DayBucket un día del desglose.
type DayBucket struct {
	Date  time.Time       `json:"date"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Count int             `json:"count"`
}

// LastNDays devuelve n días terminando en el día de now, del más antiguo al más reciente,
// todos inicializados en cero. n <= 0 devuelve vacío.
func LastNDays(now time.Time, n int) []DayBucket {
	if n <= 0 {
		return []DayBucket{}
	}
	today := StartOfDay(now)
	out := make([]DayBucket, n)
	for i := 0; i < n; i++ {
		day := today.AddDate(0, 0, i-(n-1))
		out[i] = DayBucket{Date: day, Label: day.Format("Mon 02"), Value: decimal.Zero}
	}
	return out
}

// DailyBreakdown reparte records en los últimos n días. Lo que cae fuera se ignora.
func DailyBreakdown[T any](records []T, now time.Time, n int, at func(T) time.Time, value func(T) decimal.Decimal) []DayBucket {
	days := LastNDays(now, n)
	for _, r := range records {
		ts := at(r)
		for i := range days {
			if SameDay(ts, days[i].Date) {
				days[i].Value = days[i].Value.Add(value(r))
				days[i].Count++
				break
			}
		}
	}
	return days
}

// Preset rango rápido de fechas.
type Preset string

const (
	PresetToday  Preset = "today"
	PresetWeek   Preset = "week"
	PresetMonth  Preset = "month"
	PresetCustom Preset = "custom"
)

// RangeForPreset devuelve [from, to] para el preset. La semana empieza en domingo.
// custom no tiene rango implícito y devuelve error.
func RangeForPreset(p Preset, now time.Time) (time.Time, time.Time, error) {
	today := StartOfDay(now)
	switch p {
	case PresetToday, "":
		return today, EndOfDay(today), nil
	case PresetWeek:
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return start, EndOfDay(start.AddDate(0, 0, 6)), nil
	case PresetMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("preset sin rango implícito: %q", p)
	}
}
