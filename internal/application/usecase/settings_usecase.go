package usecase

import (
	"context"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

// ConfigurationUseCase CRUD de configuraciones. En edición solo cambia Data.
type ConfigurationUseCase struct {
	crud *CRUD[entity.Configuration, *entity.Configuration]
}

func NewConfigurationUseCase(repo repository.ConfigurationRepository) *ConfigurationUseCase {
	return &ConfigurationUseCase{crud: NewCRUD[entity.Configuration](repo)}
}

func (uc *ConfigurationUseCase) List(ctx context.Context) ([]dto.ConfigurationResponse, error) {
	list, err := uc.crud.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromConfiguration), nil
}

func (uc *ConfigurationUseCase) GetByID(ctx context.Context, id string) (*dto.ConfigurationResponse, error) {
	c, err := uc.crud.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromConfiguration(c)
	return &out, nil
}

func (uc *ConfigurationUseCase) Create(ctx context.Context, in dto.ConfigurationRequest) (*dto.ConfigurationResponse, error) {
	c, err := uc.crud.Create(ctx, in, func() (*entity.Configuration, error) {
		return &entity.Configuration{Name: in.Name, Data: in.Data}, nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromConfiguration(c)
	return &out, nil
}

func (uc *ConfigurationUseCase) Update(ctx context.Context, id string, in dto.ConfigurationRequest) (*dto.ConfigurationResponse, error) {
	c, err := uc.crud.Update(ctx, id, in.ID, in, func(c *entity.Configuration) error {
		c.Data = in.Data
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromConfiguration(c)
	return &out, nil
}

func (uc *ConfigurationUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.Delete(ctx, id)
}

// PermissionUseCase CRUD de permisos.
type PermissionUseCase struct {
	crud *CRUD[entity.Permission, *entity.Permission]
}

func NewPermissionUseCase(repo repository.PermissionRepository) *PermissionUseCase {
	return &PermissionUseCase{crud: NewCRUD[entity.Permission](repo)}
}

func (uc *PermissionUseCase) List(ctx context.Context) ([]dto.PermissionResponse, error) {
	list, err := uc.crud.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromPermission), nil
}

func (uc *PermissionUseCase) GetByID(ctx context.Context, id string) (*dto.PermissionResponse, error) {
	p, err := uc.crud.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromPermission(p)
	return &out, nil
}

func (uc *PermissionUseCase) Create(ctx context.Context, in dto.PermissionRequest) (*dto.PermissionResponse, error) {
	p, err := uc.crud.Create(ctx, in, func() (*entity.Permission, error) {
		return &entity.Permission{Description: in.Description}, nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromPermission(p)
	return &out, nil
}

func (uc *PermissionUseCase) Update(ctx context.Context, id string, in dto.PermissionRequest) (*dto.PermissionResponse, error) {
	p, err := uc.crud.Update(ctx, id, in.ID, in, func(p *entity.Permission) error {
		p.Description = in.Description
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromPermission(p)
	return &out, nil
}

func (uc *PermissionUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.Delete(ctx, id)
}

// ReportUseCase CRUD de definiciones de reporte.
type ReportUseCase struct {
	crud *CRUD[entity.Report, *entity.Report]
}

func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{crud: NewCRUD[entity.Report](repo)}
}

func (uc *ReportUseCase) List(ctx context.Context) ([]dto.ReportResponse, error) {
	list, err := uc.crud.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromReport), nil
}

func (uc *ReportUseCase) GetByID(ctx context.Context, id string) (*dto.ReportResponse, error) {
	r, err := uc.crud.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromReport(r)
	return &out, nil
}

func (uc *ReportUseCase) Create(ctx context.Context, in dto.ReportRequest) (*dto.ReportResponse, error) {
	r, err := uc.crud.Create(ctx, in, func() (*entity.Report, error) {
		return &entity.Report{Description: in.Description, Filters: in.Filters}, nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromReport(r)
	return &out, nil
}

func (uc *ReportUseCase) Update(ctx context.Context, id string, in dto.ReportRequest) (*dto.ReportResponse, error) {
	r, err := uc.crud.Update(ctx, id, in.ID, in, func(r *entity.Report) error {
		r.Description = in.Description
		r.Filters = in.Filters
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromReport(r)
	return &out, nil
}

func (uc *ReportUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.Delete(ctx, id)
}
