package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-oracle-api/internal/application/inventory"
	"github.com/jhoicas/inventario-oracle-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProcedureUC *inventory.ProcedureUseCase
	Logger      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Procedimientos PL/SQL de inventario (solo POST; el resto de verbos -> 405)
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.ProcedureUC, deps.Logger)
	invGroup.Post("/update-inventory", inventoryHandler.UpdateInventory)
	invGroup.All("/update-inventory", inventoryHandler.MethodNotAllowed)
	invGroup.Post("/query-inventory", inventoryHandler.QueryInventory)
	invGroup.All("/query-inventory", inventoryHandler.MethodNotAllowed)
}
