// Package pdf genera el Resumen Mensual de la estación en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización          │  Mes + fecha de generación │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Ventas | Gastos | Depósitos | Neto                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Combustible | Monto | %                             │
//	│  TABLA: Forma de pago | Monto | %                           │
//	│  TABLA: Categoría de gasto | Monto | %                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
	"github.com/jhoicas/finflux-dashboard/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.MonthlySummaryRenderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.MonthlySummaryRenderer usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// RenderMonthlySummary genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderMonthlySummary(_ context.Context, in dto.MonthlySummary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Monthly Summary "+in.MonthLabel, true).
		WithAuthor(nonEmpty(in.Organization, "FinFlux"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Fuel distribution"))
	m.AddRows(tableHeaderRow("Product"))
	m.AddRows(shareRows(in.Sales.FuelDistribution)...)

	m.AddRows(sectionTitle("Payment methods"))
	m.AddRows(tableHeaderRow("Method"))
	m.AddRows(shareRows(in.Sales.PaymentMethods)...)

	m.AddRows(sectionTitle("Expenses by category"))
	m.AddRows(tableHeaderRow("Category"))
	m.AddRows(shareRows(in.Expenses.ByCategory)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(in))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(in dto.MonthlySummary) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(in.Organization, "FinFlux"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Monthly Summary", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(in.MonthLabel, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Generated: "+in.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// kpiRow cuatro recuadros con los totales del mes.
func kpiRow(in dto.MonthlySummary) core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 8, Align: align.Center}),
		)
	}
	return row.New(18).Add(
		kpi("Sales ("+strconv.Itoa(in.Sales.Records)+")", money.FormatINR(in.Sales.TotalSales)),
		kpi("Expenses ("+strconv.Itoa(in.Expenses.Count)+")", money.FormatINR(in.Expenses.Total)),
		kpi("Deposits ("+strconv.Itoa(in.Deposits.MonthCount)+")", money.FormatINR(in.Deposits.MonthAmount)),
		kpi("Net", money.FormatINR(in.Net)),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

// tableHeaderRow cabecera con fondo azul.
func tableHeaderRow(first string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h(first, 6, align.Left),
		h("Amount", 4, align.Right),
		h("%", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func shareRows(shares []dto.ShareDTO) []core.Row {
	if len(shares) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("No records", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	out := make([]core.Row, 0, len(shares))
	for _, s := range shares {
		out = append(out, row.New(7).Add(
			col.New(6).Add(text.New(s.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(money.FormatINR(s.Value), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(strconv.Itoa(s.Percent)+"%", props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

func footerRow(in dto.MonthlySummary) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"Short collections: %s   |   Card: %s   |   UPI: %s",
			money.FormatINR(in.Sales.ShortCollections),
			money.FormatINR(in.Sales.CreditCard),
			money.FormatINR(in.Sales.PhonePay),
		), props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
