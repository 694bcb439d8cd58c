package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         product
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         product
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/product/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         product
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         product
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/product/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         product
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/product/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Inputs godoc
// @Summary      Entradas del producto
// @Tags         product
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}   dto.ProductInputResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/product/{id}/inputs [get]
func (h *ProductHandler) Inputs(c *fiber.Ctx) error {
	out, err := h.uc.Inputs(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Outputs godoc
// @Summary      Salidas del producto
// @Tags         product
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}   dto.ProductOutputResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/product/{id}/outputs [get]
func (h *ProductHandler) Outputs(c *fiber.Ctx) error {
	out, err := h.uc.Outputs(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Nivel de inventario del producto
// @Tags         product
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.InventoryLevelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/product/{id}/inventory [get]
func (h *ProductHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Level(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
