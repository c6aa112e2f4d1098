// Package analytics contiene las agregaciones puras que alimentan el tablero:
// sumas agrupadas, porcentajes sobre el total y cubos diarios.
//
// Ninguna función guarda estado: misma entrada, misma salida.
package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

// Bucket suma de un grupo.
type Bucket struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// Share grupo con su porcentaje del total.
type Share struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Percent int             `json:"percent"`
}

// GroupSum agrupa records por key y suma value. Claves vacías van a "Unknown".
// El orden de salida es valor descendente y luego nombre.
func GroupSum[T any](records []T, key func(T) string, value func(T) decimal.Decimal) []Bucket {
	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		k := strings.TrimSpace(key(r))
		if k == "" {
			k = "Unknown"
		}
		sums[k] = sums[k].Add(value(r))
	}
	out := make([]Bucket, 0, len(sums))
	for k, v := range sums {
		out = append(out, Bucket{Name: k, Value: v})
	}
	sortBuckets(out)
	return out
}

// CountBy cuenta records por key, con el mismo orden que GroupSum.
func CountBy[T any](records []T, key func(T) string) []Bucket {
	return GroupSum(records, key, func(T) decimal.Decimal { return decimal.NewFromInt(1) })
}

func sortBuckets(b []Bucket) {
	sort.Slice(b, func(i, j int) bool {
		if c := b[i].Value.Cmp(b[j].Value); c != 0 {
			return c > 0
		}
		return b[i].Name < b[j].Name
	})
}

// Sum suma value sobre todos los records.
func Sum[T any](records []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(value(r))
	}
	return total
}

// Total suma de los buckets.
func Total(buckets []Bucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Value)
	}
	return total
}

// Count cuenta records que cumplen pred.
func Count[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Filter devuelve un slice nuevo con los records que cumplen pred.
func Filter[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Percentage round(100*part/total) con redondeo mitad hacia arriba. total == 0 devuelve 0.
func Percentage(part, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(part.Mul(hundred).Div(total).Add(half).Floor().IntPart())
}

// Shares calcula el porcentaje de cada bucket sobre la suma de todos.
func Shares(buckets []Bucket) []Share {
	total := Total(buckets)
	out := make([]Share, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Share{Name: b.Name, Value: b.Value, Percent: Percentage(b.Value, total)})
	}
	return out
}

// Average total/count redondeado a 2 decimales; count 0 devuelve 0.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// Etiquetas de estado de un tanque según su porcentaje.
const (
	StockCritical = "Critical"
	StockLow      = "Low"
	StockMedium   = "Medium"
	StockGood     = "Good"
)

// StockStatus etiqueta de nivel: <20 Critical, <40 Low, <70 Medium, resto Good.
func StockStatus(percent int) string {
	switch {
	case percent < 20:
		return StockCritical
	case percent < 40:
		return StockLow
	case percent < 70:
		return StockMedium
	default:
		return StockGood
	}
}
