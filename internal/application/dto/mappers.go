package dto

import "github.com/jhoicas/g-inventory/internal/domain/entity"

func auditOf(a entity.Audit) AuditResponse {
	return AuditResponse{Created: a.CreatedAt, Modified: a.ModifiedAt}
}

// FromProduct convierte la entidad a su salida HTTP.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Description:      p.Description,
		Type:             p.Type,
		InventoryMinimum: p.InventoryMinimum,
		InventoryMaximum: p.InventoryMaximum,
		Observations:     p.Observations,
		UserID:           p.UserID,
		AuditResponse:    auditOf(p.Audit),
	}
}

func FromProductInput(i *entity.ProductInput) ProductInputResponse {
	return ProductInputResponse{
		ID:            i.ID,
		ProductID:     i.ProductID,
		Barcode:       i.Barcode,
		Supplier:      i.Supplier,
		PurchaseValue: i.PurchaseValue,
		PurchaseDate:  i.PurchaseDate,
		Quantity:      i.Quantity,
		Observations:  i.Observations,
		UserID:        i.UserID,
		AuditResponse: auditOf(i.Audit),
	}
}

func FromProductOutput(o *entity.ProductOutput) ProductOutputResponse {
	return ProductOutputResponse{
		ID:            o.ID,
		ProductID:     o.ProductID,
		Barcode:       o.Barcode,
		Buyer:         o.Buyer,
		SaleValue:     o.SaleValue,
		SaleDate:      o.SaleDate,
		Quantity:      o.Quantity,
		Observations:  o.Observations,
		UserID:        o.UserID,
		AuditResponse: auditOf(o.Audit),
	}
}

func FromInventoryLevel(l entity.InventoryLevel) InventoryLevelResponse {
	return InventoryLevelResponse{
		ProductID:        l.ProductID,
		Description:      l.Description,
		Inputs:           l.Inputs,
		Outputs:          l.Outputs,
		Level:            l.Level,
		InventoryMinimum: l.InventoryMinimum,
		InventoryMaximum: l.InventoryMaximum,
		Status:           l.Status,
	}
}

func FromUser(u *entity.User) UserResponse {
	ids := u.PermissionIDs
	if ids == nil {
		ids = []string{}
	}
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Role:          u.Role,
		Username:      u.Username,
		Status:        u.Status,
		PermissionIDs: ids,
		AuditResponse: auditOf(u.Audit),
	}
}

func FromPermission(p *entity.Permission) PermissionResponse {
	return PermissionResponse{ID: p.ID, Description: p.Description, AuditResponse: auditOf(p.Audit)}
}

func FromConfiguration(c *entity.Configuration) ConfigurationResponse {
	return ConfigurationResponse{ID: c.ID, Name: c.Name, Data: c.Data, AuditResponse: auditOf(c.Audit)}
}

func FromReport(r *entity.Report) ReportResponse {
	return ReportResponse{ID: r.ID, Description: r.Description, Filters: r.Filters, AuditResponse: auditOf(r.Audit)}
}

// MapList aplica fn a cada elemento; nunca devuelve nil para que el JSON sea [].
func MapList[E any, R any](items []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
