package entity

import "time"

// Audit campos de auditoría comunes a todas las entidades.
// ModifiedAt es nil hasta la primera actualización.
type Audit struct {
	CreatedAt  time.Time
	ModifiedAt *time.Time
}

// MarkCreated fija la fecha de creación y limpia la de modificación.
func (a *Audit) MarkCreated(now time.Time) {
	a.CreatedAt = now
	a.ModifiedAt = nil
}

// MarkModified fija la fecha de modificación.
func (a *Audit) MarkModified(now time.Time) {
	t := now
	a.ModifiedAt = &t
}

// Record lo implementan los punteros a entidades persistibles.
type Record interface {
	GetID() string
	SetID(id string)
	MarkCreated(now time.Time)
	MarkModified(now time.Time)
}
