package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/g-inventory/internal/application/auth"
	"github.com/jhoicas/g-inventory/internal/application/inventory"
	"github.com/jhoicas/g-inventory/internal/application/report"
	"github.com/jhoicas/g-inventory/internal/application/usecase"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	InputUC         *inventory.ProductInputUseCase
	OutputUC        *inventory.ProductOutputUseCase
	UserUC          *usecase.UserUseCase
	PermissionUC    *usecase.PermissionUseCase
	ConfigurationUC *usecase.ConfigurationUseCase
	ReportUC        *usecase.ReportUseCase
	ExportUC        *report.ExportUseCase
	JWTSecret       string
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/signing", authHandler.Signing)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/product")
	products.Get("/", RequirePermission(entity.PermViewProducts), productHandler.List)
	products.Get("/:id", RequirePermission(entity.PermViewProducts), productHandler.GetByID)
	products.Get("/:id/inputs", RequirePermission(entity.PermViewInputs), productHandler.Inputs)
	products.Get("/:id/outputs", RequirePermission(entity.PermViewOutputs), productHandler.Outputs)
	products.Get("/:id/inventory", RequirePermission(entity.PermViewProducts), productHandler.Inventory)
	products.Post("/", RequirePermission(entity.PermEditProducts), productHandler.Create)
	products.Put("/:id", RequirePermission(entity.PermEditProducts), productHandler.Update)
	products.Delete("/:id", RequirePermission(entity.PermDeleteProducts), productHandler.Delete)

	// Movimientos de stock
	movementHandler := NewMovementHandler(deps.InputUC, deps.OutputUC)
	inputs := protected.Group("/product-input")
	inputs.Get("/", RequirePermission(entity.PermViewInputs), movementHandler.ListInputs)
	inputs.Get("/:id", RequirePermission(entity.PermViewInputs), movementHandler.GetInput)
	inputs.Post("/", RequirePermission(entity.PermEditInputs), movementHandler.CreateInput)
	inputs.Put("/:id", RequirePermission(entity.PermEditInputs), movementHandler.UpdateInput)
	inputs.Delete("/:id", RequirePermission(entity.PermDeleteInputs), movementHandler.DeleteInput)

	outputs := protected.Group("/product-output")
	outputs.Get("/", RequirePermission(entity.PermViewOutputs), movementHandler.ListOutputs)
	outputs.Get("/:id", RequirePermission(entity.PermViewOutputs), movementHandler.GetOutput)
	outputs.Post("/", RequirePermission(entity.PermEditOutputs), movementHandler.CreateOutput)
	outputs.Put("/:id", RequirePermission(entity.PermEditOutputs), movementHandler.UpdateOutput)
	outputs.Delete("/:id", RequirePermission(entity.PermDeleteOutputs), movementHandler.DeleteOutput)

	// Users
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/user")
	users.Get("/", RequirePermission(entity.PermViewUsers), userHandler.List)
	users.Get("/:id", RequirePermission(entity.PermViewUsers), userHandler.GetByID)
	users.Post("/", RequirePermission(entity.PermEditUsers), userHandler.Create)
	users.Put("/:id", RequirePermission(entity.PermEditUsers), userHandler.Update)
	users.Delete("/:id", RequirePermission(entity.PermDeleteUsers), userHandler.Delete)

	// Permissions: lectura para cualquier usuario autenticado
	permissionHandler := NewPermissionHandler(deps.PermissionUC)
	permissions := protected.Group("/permission")
	permissions.Get("/", permissionHandler.List)
	permissions.Get("/:id", permissionHandler.GetByID)
	permissions.Post("/", RequirePermission(entity.PermEditUsers), permissionHandler.Create)
	permissions.Put("/:id", RequirePermission(entity.PermEditUsers), permissionHandler.Update)
	permissions.Delete("/:id", RequirePermission(entity.PermDeleteUsers), permissionHandler.Delete)

	// Configurations: lectura para cualquier usuario autenticado
	configurationHandler := NewConfigurationHandler(deps.ConfigurationUC)
	configurations := protected.Group("/configuration")
	configurations.Get("/", configurationHandler.List)
	configurations.Get("/:id", configurationHandler.GetByID)
	configurations.Post("/", RequirePermission(entity.PermEditConfigurations), configurationHandler.Create)
	configurations.Put("/:id", RequirePermission(entity.PermEditConfigurations), configurationHandler.Update)
	configurations.Delete("/:id", RequirePermission(entity.PermEditConfigurations), configurationHandler.Delete)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC, deps.ExportUC)
	reports := protected.Group("/report", RequirePermission(entity.PermGenerateReports))
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Get("/:id/export", reportHandler.Export)
	reports.Post("/", reportHandler.Create)
	reports.Put("/:id", reportHandler.Update)
	reports.Delete("/:id", reportHandler.Delete)
}
