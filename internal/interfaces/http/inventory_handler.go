package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-oracle-api/internal/application/dto"
	"github.com/jhoicas/inventario-oracle-api/internal/application/inventory"
	"github.com/jhoicas/inventario-oracle-api/internal/domain"
	"github.com/jhoicas/inventario-oracle-api/pkg/logger"
)

// InventoryHandler expone los procedimientos PL/SQL de inventario por HTTP.
type InventoryHandler struct {
	uc  *inventory.ProcedureUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.ProcedureUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// UpdateInventory godoc
// @Summary      Actualizar inventario (sp_update_inventory)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateInventoryRequest  true  "prod_id, quantity (enteros o strings numéricos), warehouse"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      405   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/update-inventory [post]
func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	log := h.log.WithRequestID(requestID(c))

	var in dto.UpdateInventoryRequest
	if err := decodeJSON(c.Body(), &in); err != nil {
		return respondError(c, log, domain.NewInvalidJSONError(err), nil)
	}

	fields := map[string]any{"prod_id": in.ProdID, "quantity": in.Quantity, "warehouse": in.Warehouse}
	log.Info().Fields(fields).Msg("datos recibidos")

	if err := h.uc.UpdateInventory(c.UserContext(), in); err != nil {
		return respondError(c, log, err, fields)
	}

	log.Info().Fields(fields).Msg(inventory.UpdateSuccessMessage)
	return c.JSON(dto.MessageResponse{Message: inventory.UpdateSuccessMessage})
}

// QueryInventory godoc
// @Summary      Consultar inventario de un producto (fn_get_product_inventory)
// @Description  Devuelve las líneas que la función escribió en DBMS_OUTPUT, en orden.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QueryInventoryRequest  true  "prod_id"
// @Success      200   {object}  dto.OutputResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      405   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory/query-inventory [post]
func (h *InventoryHandler) QueryInventory(c *fiber.Ctx) error {
	log := h.log.WithRequestID(requestID(c))

	var in dto.QueryInventoryRequest
	if err := decodeJSON(c.Body(), &in); err != nil {
		return respondError(c, log, domain.NewInvalidJSONError(err), nil)
	}

	fields := map[string]any{"prod_id": in.ProdID}
	log.Info().Fields(fields).Msg("consulta de inventario recibida")

	lines, err := h.uc.QueryInventory(c.UserContext(), in)
	if err != nil {
		return respondError(c, log, err, fields)
	}

	log.Info().Fields(fields).Strs("output", lines).Msg("función ejecutada")
	return c.JSON(dto.OutputResponse{Output: lines})
}

// MethodNotAllowed responde 405 para cualquier verbo distinto de POST, sin mirar el cuerpo.
func (h *InventoryHandler) MethodNotAllowed(c *fiber.Ctx) error {
	log := h.log.WithRequestID(requestID(c))
	return respondError(c, log, domain.ErrMethodNotAllowed, map[string]any{"method": c.Method(), "path": c.Path()})
}

// decodeJSON decodifica un único valor JSON; los números quedan como json.Number.
func decodeJSON(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("extra data after JSON value")
	}
	return nil
}
