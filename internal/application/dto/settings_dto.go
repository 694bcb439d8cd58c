package dto

// ConfigurationRequest alta o edición de configuración. En edición solo cambia Data.
type ConfigurationRequest struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required,max=20"`
	Data string `json:"data" validate:"max=1024"`
}

// ConfigurationResponse salida de una configuración.
type ConfigurationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Data string `json:"data"`
	AuditResponse
}

// ReportRequest alta o edición de reporte.
type ReportRequest struct {
	ID          string `json:"id"`
	Description string `json:"description" validate:"required,max=125"`
	Filters     string `json:"filters" validate:"max=1024"`
}

// ReportResponse salida de un reporte.
type ReportResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Filters     string `json:"filters"`
	AuditResponse
}

// ReportFile documento exportado.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
