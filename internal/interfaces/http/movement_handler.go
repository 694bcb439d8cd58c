package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/application/inventory"
)

// MovementHandler entradas y salidas de stock. Cada alta, cambio o baja recalcula el nivel
// del producto y puede encolar un aviso; la respuesta no espera al envío.
type MovementHandler struct {
	inputs  *inventory.ProductInputUseCase
	outputs *inventory.ProductOutputUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(inputs *inventory.ProductInputUseCase, outputs *inventory.ProductOutputUseCase) *MovementHandler {
	return &MovementHandler{inputs: inputs, outputs: outputs}
}

// ListInputs godoc
// @Summary      Listar entradas
// @Tags         product-input
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductInputResponse
// @Router       /api/v1/product-input [get]
func (h *MovementHandler) ListInputs(c *fiber.Ctx) error {
	out, err := h.inputs.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetInput godoc
// @Summary      Obtener entrada
// @Tags         product-input
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.ProductInputResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/product-input/{id} [get]
func (h *MovementHandler) GetInput(c *fiber.Ctx) error {
	out, err := h.inputs.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateInput godoc
// @Summary      Registrar entrada
// @Tags         product-input
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductInputRequest  true  "Entrada"
// @Success      200   {object}  dto.ProductInputResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/product-input [post]
func (h *MovementHandler) CreateInput(c *fiber.Ctx) error {
	var in dto.ProductInputRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.inputs.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateInput godoc
// @Summary      Actualizar entrada
// @Tags         product-input
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrada"
// @Param        body  body  dto.ProductInputRequest  true  "Entrada"
// @Success      200   {object}  dto.ProductInputResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/product-input/{id} [put]
func (h *MovementHandler) UpdateInput(c *fiber.Ctx) error {
	var in dto.ProductInputRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.inputs.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteInput godoc
// @Summary      Eliminar entrada
// @Tags         product-input
// @Security     Bearer
// @Param        id   path  string  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/product-input/{id} [delete]
func (h *MovementHandler) DeleteInput(c *fiber.Ctx) error {
	if err := h.inputs.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListOutputs godoc
// @Summary      Listar salidas
// @Tags         product-output
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductOutputResponse
// @Router       /api/v1/product-output [get]
func (h *MovementHandler) ListOutputs(c *fiber.Ctx) error {
	out, err := h.outputs.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetOutput godoc
// @Summary      Obtener salida
// @Tags         product-output
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la salida"
// @Success      200  {object}  dto.ProductOutputResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/product-output/{id} [get]
func (h *MovementHandler) GetOutput(c *fiber.Ctx) error {
	out, err := h.outputs.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateOutput godoc
// @Summary      Registrar salida
// @Tags         product-output
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductOutputRequest  true  "Salida"
// @Success      200   {object}  dto.ProductOutputResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/product-output [post]
func (h *MovementHandler) CreateOutput(c *fiber.Ctx) error {
	var in dto.ProductOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.outputs.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateOutput godoc
// @Summary      Actualizar salida
// @Tags         product-output
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la salida"
// @Param        body  body  dto.ProductOutputRequest  true  "Salida"
// @Success      200   {object}  dto.ProductOutputResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/product-output/{id} [put]
func (h *MovementHandler) UpdateOutput(c *fiber.Ctx) error {
	var in dto.ProductOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.outputs.Update(c.UserContext(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteOutput godoc
// @Summary      Eliminar salida
// @Tags         product-output
// @Security     Bearer
// @Param        id   path  string  true  "ID de la salida"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/product-output/{id} [delete]
func (h *MovementHandler) DeleteOutput(c *fiber.Ctx) error {
	if err := h.outputs.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
