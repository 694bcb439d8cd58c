// Package report renderiza los reportes de inventario.
//
// Layout del PDF (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título      │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FILTROS aplicados                                           │
//	│  TABLA: Producto | Tipo | Mín | Máx | Ent | Sal | Nivel | Est│
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: productos bajos / altos                            │
//	└─────────────────────────────────────────────────────────────┘
package report

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

	appreport "github.com/jhoicas/g-inventory/internal/application/report"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
)

var _ appreport.Renderer = (*PDFRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLow     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorHigh    = &props.Color{Red: 200, Green: 120, Blue: 0}
)

// PDFRenderer genera el reporte con Maroto v2.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

// Render genera el PDF y devuelve sus bytes.
func (g *PDFRenderer) Render(_ context.Context, doc appreport.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		WithAuthor(doc.Company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if doc.Filters != "" {
		m.AddRows(row.New(7).Add(col.New(12).Add(
			text.New("Filtros: "+doc.Filters, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(doc.Rows)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(doc.Rows))

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdf.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(doc appreport.Document) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(doc.Company, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Title, props.Text{Size: 10, Top: 9}),
		),
		col.New(4).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+doc.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Tipo", 2, align.Left),
		h("Mín", 1, align.Right),
		h("Máx", 1, align.Right),
		h("Entr.", 1, align.Right),
		h("Sal.", 1, align.Right),
		h("Nivel", 1, align.Right),
		h("Estado", 1, align.Center),
	)
}

func tableRows(levels []entity.InventoryLevel) []core.Row {
	result := make([]core.Row, 0, len(levels))
	num := func(v int64, size int) core.Col {
		return col.New(size).Add(text.New(strconv.FormatInt(v, 10), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}))
	}
	for _, l := range levels {
		status := props.Text{Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold}
		switch l.Status {
		case entity.LevelStatusLow:
			status.Color = colorLow
		case entity.LevelStatusHigh:
			status.Color = colorHigh
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(l.Description, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Type, props.Text{Size: 8, Top: 1, Left: 1})),
			num(int64(l.InventoryMinimum), 1),
			num(int64(l.InventoryMaximum), 1),
			num(l.Inputs, 1),
			num(l.Outputs, 1),
			num(l.Level, 1),
			col.New(1).Add(text.New(l.Status, status)),
		))
	}
	return result
}

func summaryRow(levels []entity.InventoryLevel) core.Row {
	var low, high int
	for _, l := range levels {
		switch l.Status {
		case entity.LevelStatusLow:
			low++
		case entity.LevelStatusHigh:
			high++
		}
	}
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Productos: %d   |   Bajo mínimo: %d   |   Sobre máximo: %d", len(levels), low, high),
			props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 3, Color: colorPrimary}),
	))
}
