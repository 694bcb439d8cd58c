package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appreport "github.com/jhoicas/g-inventory/internal/application/report"
)

var _ appreport.Renderer = (*XLSXRenderer)(nil)

// XLSXRenderer genera el reporte como hoja de cálculo con excelize.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

var xlsxHeader = []interface{}{"Producto", "Tipo", "Mínimo", "Máximo", "Entradas", "Salidas", "Nivel", "Estado"}

// Render una fila de encabezado, una por producto y una hoja "Info" con los metadatos.
func (r *XLSXRenderer) Render(_ context.Context, doc appreport.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "Inventario"); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	sheet = "Inventario"

	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(sheet, "A1", "H1", bold)
	}

	for i, l := range doc.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			l.Description, l.Type, l.InventoryMinimum, l.InventoryMaximum,
			l.Inputs, l.Outputs, l.Level, l.Status,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 40)

	if _, err := f.NewSheet("Info"); err != nil {
		return nil, fmt.Errorf("xlsx: hoja info: %w", err)
	}
	info := [][]interface{}{
		{"Empresa", doc.Company},
		{"Reporte", doc.Title},
		{"Filtros", doc.Filters},
		{"Generado", doc.GeneratedAt.Format("2006-01-02 15:04:05")},
	}
	for i, kv := range info {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		row := kv
		if err := f.SetSheetRow("Info", cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx: info: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
