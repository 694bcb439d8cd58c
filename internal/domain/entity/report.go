package entity

// Report definición guardada de un reporte; Filters es un query string (type=...&status=LOW).
type Report struct {
	ID          string
	Description string
	Filters     string
	Audit
}

func (r *Report) GetID() string   { return r.ID }
func (r *Report) SetID(id string) { r.ID = id }
