package dto

import "time"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Status  int               `json:"status"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// AuditResponse fechas de auditoría; Modified es null hasta la primera actualización.
type AuditResponse struct {
	Created  time.Time  `json:"created"`
	Modified *time.Time `json:"modified"`
}
