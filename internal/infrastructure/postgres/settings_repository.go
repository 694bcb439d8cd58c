package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

var (
	_ repository.ConfigurationRepository = (*ConfigurationRepo)(nil)
	_ repository.ReportRepository        = (*ReportRepo)(nil)
)

// ConfigurationRepo configuraciones sobre PostgreSQL. El nombre no se actualiza.
type ConfigurationRepo struct {
	q Querier
}

func NewConfigurationRepository(q Querier) *ConfigurationRepo {
	return &ConfigurationRepo{q: q}
}

const configurationColumns = `id, name, data, created_at, modified_at`

func scanConfiguration(row pgx.Row) (*entity.Configuration, error) {
	var c entity.Configuration
	if err := row.Scan(&c.ID, &c.Name, &c.Data, &c.CreatedAt, &c.ModifiedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ConfigurationRepo) Create(ctx context.Context, c *entity.Configuration) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO configurations (`+configurationColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Data, c.CreatedAt, c.ModifiedAt)
	if err != nil {
		return writeError("insert configuration", err)
	}
	return nil
}

func (r *ConfigurationRepo) GetByID(ctx context.Context, id string) (*entity.Configuration, error) {
	return queryOne(ctx, r.q, scanConfiguration, "get configuration",
		`SELECT `+configurationColumns+` FROM configurations WHERE id = $1`, id)
}

// GetByName se consulta en cada envío de aviso (ALERT_EMAIL), sin caché.
func (r *ConfigurationRepo) GetByName(ctx context.Context, name string) (*entity.Configuration, error) {
	return queryOne(ctx, r.q, scanConfiguration, "get configuration by name",
		`SELECT `+configurationColumns+` FROM configurations WHERE name = $1`, name)
}

func (r *ConfigurationRepo) List(ctx context.Context) ([]*entity.Configuration, error) {
	return queryAll(ctx, r.q, scanConfiguration, "list configurations",
		`SELECT `+configurationColumns+` FROM configurations ORDER BY created_at, id`)
}

func (r *ConfigurationRepo) Update(ctx context.Context, c *entity.Configuration) error {
	return execOne(ctx, r.q, "update configuration",
		`UPDATE configurations SET data = $2, modified_at = $3 WHERE id = $1`,
		c.ID, c.Data, c.ModifiedAt)
}

func (r *ConfigurationRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete configuration", `DELETE FROM configurations WHERE id = $1`, id)
}

// ReportRepo definiciones de reporte sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

const reportColumns = `id, description, filters, created_at, modified_at`

func scanReport(row pgx.Row) (*entity.Report, error) {
	var rep entity.Report
	if err := row.Scan(&rep.ID, &rep.Description, &rep.Filters, &rep.CreatedAt, &rep.ModifiedAt); err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepo) Create(ctx context.Context, rep *entity.Report) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO reports (`+reportColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		rep.ID, rep.Description, rep.Filters, rep.CreatedAt, rep.ModifiedAt)
	if err != nil {
		return writeError("insert report", err)
	}
	return nil
}

func (r *ReportRepo) GetByID(ctx context.Context, id string) (*entity.Report, error) {
	return queryOne(ctx, r.q, scanReport, "get report",
		`SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
}

func (r *ReportRepo) List(ctx context.Context) ([]*entity.Report, error) {
	return queryAll(ctx, r.q, scanReport, "list reports",
		`SELECT `+reportColumns+` FROM reports ORDER BY created_at, id`)
}

func (r *ReportRepo) Update(ctx context.Context, rep *entity.Report) error {
	return execOne(ctx, r.q, "update report",
		`UPDATE reports SET description = $2, filters = $3, modified_at = $4 WHERE id = $1`,
		rep.ID, rep.Description, rep.Filters, rep.ModifiedAt)
}

func (r *ReportRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete report", `DELETE FROM reports WHERE id = $1`, id)
}
