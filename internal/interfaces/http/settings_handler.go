package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/application/report"
	"github.com/jhoicas/g-inventory/internal/application/usecase"
)

// ConfigurationHandler pares nombre/valor (COMPANY_NAME, COMPANY_LOGO, ALERT_EMAIL...).
type ConfigurationHandler struct {
	uc *usecase.ConfigurationUseCase
}

func NewConfigurationHandler(uc *usecase.ConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{uc: uc}
}

// List godoc
// @Summary      Listar configuraciones
// @Tags         configuration
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConfigurationResponse
// @Router       /api/v1/configuration [get]
func (h *ConfigurationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener configuración
// @Tags         configuration
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.ConfigurationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/configuration/{id} [get]
func (h *ConfigurationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear configuración
// @Tags         configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfigurationRequest  true  "Configuración"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/configuration [post]
func (h *ConfigurationHandler) Create(c *fiber.Ctx) error {
	var in dto.ConfigurationRequest
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
// @Summary      Actualizar configuración
// @Tags         configuration
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.ConfigurationRequest  true  "Configuración"
// @Success      200   {object}  dto.ConfigurationResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/configuration/{id} [put]
func (h *ConfigurationHandler) Update(c *fiber.Ctx) error {
	var in dto.ConfigurationRequest
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
// @Summary      Eliminar configuración
// @Tags         configuration
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/configuration/{id} [delete]
func (h *ConfigurationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReportHandler reportes guardados y su exportación.
type ReportHandler struct {
	uc     *usecase.ReportUseCase
	export *report.ExportUseCase
}

func NewReportHandler(uc *usecase.ReportUseCase, export *report.ExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar reportes
// @Tags         report
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReportResponse
// @Router       /api/v1/report [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reporte
// @Tags         report
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/report/{id} [get]
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear reporte
// @Tags         report
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportRequest  true  "Reporte"
// @Success      200   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/report [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in dto.ReportRequest
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
// @Summary      Actualizar reporte
// @Tags         report
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.ReportRequest  true  "Reporte"
// @Success      200   {object}  dto.ReportResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/report/{id} [put]
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	var in dto.ReportRequest
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
// @Summary      Eliminar reporte
// @Tags         report
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/report/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar reporte
// @Description  Genera el documento con los niveles de inventario filtrados por el reporte.
// @Tags         report
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id      path   string  true   "ID"
// @Param        format  query  string  false  "xlsx | pdf"  default(xlsx)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/report/{id}/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	file, err := h.export.Export(c.UserContext(), c.Params("id"), c.Query("format", "xlsx"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Content)
}

