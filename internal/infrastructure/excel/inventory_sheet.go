// Package excel genera el Inventory Report en formato xlsx.
package excel

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/finflux-dashboard/internal/application/dto"
	"github.com/jhoicas/finflux-dashboard/internal/application/ports"
)

const (
	// TanksSheet hoja con el estado actual de los tanques.
	TanksSheet = "Tanks"
	// ProductsSheet hoja con el catálogo y su valorización.
	ProductsSheet = "Products"
)

var _ ports.InventorySheetRenderer = (*InventorySheetGenerator)(nil)

// InventorySheetGenerator implementa ports.InventorySheetRenderer con excelize.
type InventorySheetGenerator struct{}

// NewInventorySheetGenerator construye el generador.
func NewInventorySheetGenerator() *InventorySheetGenerator { return &InventorySheetGenerator{} }

var tankHeaders = []interface{}{"Product", "Current Level", "Tank Capacity", "Fill %", "Status", "Active", "Low"}

var productHeaders = []interface{}{"Product", "Price", "Current Level", "Tank Capacity", "Stock Value", "Supplier", "Active"}

// RenderInventorySheet devuelve el libro serializado.
func (g *InventorySheetGenerator) RenderInventorySheet(_ context.Context, in dto.InventoryReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// La hoja por defecto se renombra para no dejar "Sheet1" vacía.
	if err := f.SetSheetName("Sheet1", TanksSheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(ProductsSheet); err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}

	if err := writeRow(f, TanksSheet, 1, tankHeaders); err != nil {
		return nil, err
	}
	for i, t := range in.Tanks {
		cur, _ := t.CurrentLevel.Float64()
		capacity, _ := t.TankCapacity.Float64()
		if err := writeRow(f, TanksSheet, i+2, []interface{}{
			t.ProductName, cur, capacity, t.Percent, t.Status, yesNo(t.Active), yesNo(t.Low),
		}); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, ProductsSheet, 1, productHeaders); err != nil {
		return nil, err
	}
	for i, p := range in.Products {
		price, _ := p.Price.Float64()
		cur, _ := p.CurrentLevel.Float64()
		capacity, _ := p.TankCapacity.Float64()
		value, _ := p.StockValue.Round(2).Float64()
		if err := writeRow(f, ProductsSheet, i+2, []interface{}{
			p.ProductName, price, cur, capacity, value, p.Supplier, yesNo(p.Active),
		}); err != nil {
			return nil, err
		}
	}

	for _, sheet := range []string{TanksSheet, ProductsSheet} {
		if err := f.SetCellStyle(sheet, "A1", "G1", bold); err != nil {
			return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
		}
		if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
			return nil, fmt.Errorf("excel: ancho columna: %w", err)
		}
	}
	if in.Organization != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: "Inventory Report", Creator: in.Organization}); err != nil {
			return nil, fmt.Errorf("excel: propiedades: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNo int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return fmt.Errorf("excel: celda: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("excel: escribir fila %d: %w", rowNo, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
