package entity

// Permission autoridad asignable a usuarios; Description es el nombre que viaja en el token.
type Permission struct {
	ID          string
	Description string
	Audit
}

func (p *Permission) GetID() string   { return p.ID }
func (p *Permission) SetID(id string) { p.ID = id }

// Catálogo de permisos.
const (
	PermViewUsers          = "VIEW_USERS"
	PermEditUsers          = "EDIT_USERS"
	PermDeleteUsers        = "DELETE_USERS"
	PermViewProducts       = "VIEW_PRODUCTS"
	PermEditProducts       = "EDIT_PRODUCTS"
	PermDeleteProducts     = "DELETE_PRODUCTS"
	PermViewInputs         = "VIEW_INPUTS"
	PermEditInputs         = "EDIT_INPUTS"
	PermDeleteInputs       = "DELETE_INPUTS"
	PermViewOutputs        = "VIEW_OUTPUTS"
	PermEditOutputs        = "EDIT_OUTPUTS"
	PermDeleteOutputs      = "DELETE_OUTPUTS"
	PermGenerateReports    = "GENERATE_REPORTS"
	PermEditConfigurations = "EDIT_CONFIGURATIONS"
)

// PermissionCatalog lista todos los permisos en orden estable.
func PermissionCatalog() []string {
	return []string{
		PermViewUsers, PermEditUsers, PermDeleteUsers,
		PermViewProducts, PermEditProducts, PermDeleteProducts,
		PermViewInputs, PermEditInputs, PermDeleteInputs,
		PermViewOutputs, PermEditOutputs, PermDeleteOutputs,
		PermGenerateReports, PermEditConfigurations,
	}
}
