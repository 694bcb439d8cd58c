package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	appreport "github.com/jhoicas/g-inventory/internal/application/report"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/infrastructure/report"
)

func sampleDocument() appreport.Document {
	return appreport.Document{
		Title:       "Stock bajo",
		Company:     "G Inventory",
		Filters:     "status=LOW",
		GeneratedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		Rows: []entity.InventoryLevel{
			{ProductID: "p1", Description: "Tornillo", Type: "ferretería", Inputs: 20, Outputs: 17, Level: 3, InventoryMinimum: 5, InventoryMaximum: 10, Status: entity.LevelStatusLow},
		},
	}
}

func TestXLSXRenderer(t *testing.T) {
	content, err := report.NewXLSXRenderer().Render(context.Background(), sampleDocument())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventario")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Producto", rows[0][0])
	assert.Equal(t, []string{"Tornillo", "ferretería", "5", "10", "20", "17", "3", "LOW"}, rows[1])

	company, err := f.GetCellValue("Info", "B1")
	require.NoError(t, err)
	assert.Equal(t, "G Inventory", company)
}

func TestPDFRenderer(t *testing.T) {
	content, err := report.NewPDFRenderer().Render(context.Background(), sampleDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}
