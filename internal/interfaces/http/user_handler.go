package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/application/usecase"
)

// UserHandler administración de usuarios. El hash de la contraseña nunca sale en la respuesta.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/v1/user [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario
// @Tags         user
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/user/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         user
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserRequest  true  "Usuario"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/user [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Description  Sin password se conserva la actual.
// @Tags         user
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UserRequest  true  "Usuario"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/user/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         user
// @Security     Bearer
// @Param        id   path  string  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/user/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PermissionHandler catálogo de permisos.
type PermissionHandler struct {
	uc *usecase.PermissionUseCase
}

func NewPermissionHandler(uc *usecase.PermissionUseCase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// List godoc
// @Summary      Listar permisos
// @Tags         permission
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PermissionResponse
// @Router       /api/v1/permission [get]
func (h *PermissionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener permiso
// @Tags         permission
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del permiso"
// @Success      200  {object}  dto.PermissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/permission/{id} [get]
func (h *PermissionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear permiso
// @Tags         permission
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PermissionRequest  true  "Permiso"
// @Success      200   {object}  dto.PermissionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/permission [post]
func (h *PermissionHandler) Create(c *fiber.Ctx) error {
	var in dto.PermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar permiso
// @Tags         permission
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del permiso"
// @Param        body  body  dto.PermissionRequest  true  "Permiso"
// @Success      200   {object}  dto.PermissionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/permission/{id} [put]
func (h *PermissionHandler) Update(c *fiber.Ctx) error {
	var in dto.PermissionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar permiso
// @Tags         permission
// @Security     Bearer
// @Param        id   path  string  true  "ID del permiso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/permission/{id} [delete]
func (h *PermissionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
