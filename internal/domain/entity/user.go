package entity

// Estados válidos para User.
const (
	UserStatusActive   = "ACTIVE"
	UserStatusDeactive = "DEACTIVE"
)

// User usuario del sistema. Los permisos se guardan por id.
type User struct {
	ID            string
	Name          string
	Role          string
	Username      string
	PasswordHash  string // bcrypt, nunca se serializa
	Status        string
	PermissionIDs []string
	Audit
}

func (u *User) GetID() string   { return u.ID }
func (u *User) SetID(id string) { u.ID = id }

// IsActive indica si el usuario puede autenticarse.
func (u *User) IsActive() bool { return u.Status == UserStatusActive }

// Clone copia el usuario sin compartir el slice de permisos.
func (u *User) Clone() *User {
	c := *u
	c.PermissionIDs = append([]string(nil), u.PermissionIDs...)
	return &c
}
