package report

import (
	"context"
	"time"

	"github.com/jhoicas/g-inventory/internal/domain/entity"
)

// Document datos ya resueltos de un reporte de inventario, listos para renderizar.
type Document struct {
	Title       string
	Company     string
	Filters     string
	GeneratedAt time.Time
	Rows        []entity.InventoryLevel
}

// Renderer convierte un Document en bytes de un formato concreto (XLSX, PDF).
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

// Format asocia un Renderer con su tipo MIME y extensión.
type Format struct {
	Renderer    Renderer
	ContentType string
	Extension   string
}
