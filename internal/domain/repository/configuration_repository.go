package repository

import (
	"context"

	"github.com/jhoicas/g-inventory/internal/domain/entity"
)

// ConfigurationRepository pares nombre/valor.
type ConfigurationRepository interface {
	Store[entity.Configuration]
	GetByName(ctx context.Context, name string) (*entity.Configuration, error)
}

// ReportRepository definiciones de reportes.
type ReportRepository interface {
	Store[entity.Report]
}
