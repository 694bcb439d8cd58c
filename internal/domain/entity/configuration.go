package entity

// Nombres de configuración conocidos.
const (
	ConfigCompanyName = "COMPANY_NAME"
	ConfigCompanyLogo = "COMPANY_LOGO"
	ConfigAlertEmail  = "ALERT_EMAIL"
)

// Configuration par nombre/valor. Name no cambia después de creado.
type Configuration struct {
	ID   string
	Name string
	Data string
	Audit
}

func (c *Configuration) GetID() string   { return c.ID }
func (c *Configuration) SetID(id string) { c.ID = id }
