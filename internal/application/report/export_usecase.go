package report

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/inventory"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

const defaultCompanyName = "G Inventory"

// ExportUseCase genera el documento de un reporte guardado.
// Filters del reporte es un query string con las claves type, productId (repetible) y status.
type ExportUseCase struct {
	reports  repository.ReportRepository
	products repository.ProductRepository
	inputs   repository.ProductInputRepository
	outputs  repository.ProductOutputRepository
	configs  repository.ConfigurationRepository
	formats  map[string]Format
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso con los formatos disponibles (clave: "xlsx", "pdf").
func NewExportUseCase(
	reports repository.ReportRepository,
	products repository.ProductRepository,
	inputs repository.ProductInputRepository,
	outputs repository.ProductOutputRepository,
	configs repository.ConfigurationRepository,
	formats map[string]Format,
) *ExportUseCase {
	return &ExportUseCase{
		reports:  reports,
		products: products,
		inputs:   inputs,
		outputs:  outputs,
		configs:  configs,
		formats:  formats,
		now:      time.Now,
	}
}

// Export carga el reporte, calcula los niveles filtrados y los renderiza en format.
func (uc *ExportUseCase) Export(ctx context.Context, reportID, format string) (*dto.ReportFile, error) {
	f, ok := uc.formats[strings.ToLower(format)]
	if !ok {
		return nil, domain.NewValidationError("format", "oneof")
	}

	rep, err := uc.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("report: obtener reporte: %w", err)
	}
	if rep == nil {
		return nil, domain.ErrNotFound
	}

	filter, err := parseFilters(rep.Filters)
	if err != nil {
		return nil, err
	}

	rows, err := uc.levels(ctx, filter)
	if err != nil {
		return nil, err
	}

	company := defaultCompanyName
	if c, err := uc.configs.GetByName(ctx, entity.ConfigCompanyName); err != nil {
		return nil, fmt.Errorf("report: obtener empresa: %w", err)
	} else if c != nil && c.Data != "" {
		company = c.Data
	}

	doc := Document{
		Title:       rep.Description,
		Company:     company,
		Filters:     rep.Filters,
		GeneratedAt: uc.now(),
		Rows:        rows,
	}
	content, err := f.Renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("report: renderizar %s: %w", format, err)
	}
	return &dto.ReportFile{
		Filename:    fmt.Sprintf("reporte-%s.%s", rep.ID, f.Extension),
		ContentType: f.ContentType,
		Content:     content,
	}, nil
}

type filters struct {
	productType string
	productIDs  map[string]struct{}
	status      string
}

func parseFilters(raw string) (filters, error) {
	var f filters
	q, err := url.ParseQuery(raw)
	if err != nil {
		return f, domain.NewValidationError("filters", "query")
	}
	f.productType = q.Get("type")
	if ids := q["productId"]; len(ids) > 0 {
		f.productIDs = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			f.productIDs[id] = struct{}{}
		}
	}
	f.status = strings.ToUpper(q.Get("status"))
	switch f.status {
	case "", entity.LevelStatusOK, entity.LevelStatusLow, entity.LevelStatusHigh:
	default:
		return f, domain.NewValidationError("filters.status", "oneof")
	}
	return f, nil
}

func (uc *ExportUseCase) levels(ctx context.Context, f filters) ([]entity.InventoryLevel, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: listar productos: %w", err)
	}
	rows := make([]entity.InventoryLevel, 0, len(products))
	for _, p := range products {
		if f.productType != "" && p.Type != f.productType {
			continue
		}
		if f.productIDs != nil {
			if _, ok := f.productIDs[p.ID]; !ok {
				continue
			}
		}
		ins, err := uc.inputs.ListByProduct(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("report: entradas de %s: %w", p.ID, err)
		}
		outs, err := uc.outputs.ListByProduct(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("report: salidas de %s: %w", p.ID, err)
		}
		lvl := inventory.Snapshot(p, ins, outs)
		if f.status != "" && lvl.Status != f.status {
			continue
		}
		rows = append(rows, lvl)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Description < rows[j].Description })
	return rows, nil
}
