package dto

// LoginRequest credenciales para /auth/signing.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido y id del usuario.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// UserRequest alta o edición de usuario. Password vacío en edición conserva el actual.
type UserRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name" validate:"required,max=125"`
	Role          string   `json:"role" validate:"required,max=125"`
	Username      string   `json:"username" validate:"required,max=20"`
	Password      string   `json:"password" validate:"omitempty,bcryptlen"`
	Status        string   `json:"status" validate:"required,oneof=ACTIVE DEACTIVE"`
	PermissionIDs []string `json:"permissionIds" validate:"dive,required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Username      string   `json:"username"`
	Status        string   `json:"status"`
	PermissionIDs []string `json:"permissionIds"`
	AuditResponse
}

// PermissionRequest alta o edición de permiso.
type PermissionRequest struct {
	ID          string `json:"id"`
	Description string `json:"description" validate:"required,max=19"`
}

// PermissionResponse salida de un permiso.
type PermissionResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	AuditResponse
}
