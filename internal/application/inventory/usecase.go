package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-oracle-api/internal/application/dto"
	"github.com/jhoicas/inventario-oracle-api/internal/domain"
	"github.com/jhoicas/inventario-oracle-api/internal/domain/repository"
)

// Mensajes expuestos al cliente.
const (
	UpdateSuccessMessage   = "Stored procedure sp_update_inventory executed successfully."
	MissingUpdateParamsMsg = "Missing parameters. Expected prod_id, quantity, and warehouse."
	MissingProdIDMsg       = "prod_id parameter is required"
	ProdIDNotIntegerMsg    = "prod_id must be an integer"
	WarehouseNotStringMsg  = "warehouse must be a string or number"
)

// ProcedureUseCase valida la entrada y delega en los procedimientos almacenados.
// No tiene lógica de negocio propia: presencia de campos y conversión a entero.
type ProcedureUseCase struct {
	repo repository.InventoryProcedureRepository
}

// NewProcedureUseCase construye el caso de uso.
func NewProcedureUseCase(repo repository.InventoryProcedureRepository) *ProcedureUseCase {
	return &ProcedureUseCase{repo: repo}
}

// UpdateInventory valida prod_id, quantity y warehouse y ejecuta sp_update_inventory.
func (uc *ProcedureUseCase) UpdateInventory(ctx context.Context, in dto.UpdateInventoryRequest) error {
	if in.ProdID == nil || in.Quantity == nil || in.Warehouse == nil {
		return domain.NewValidationError(MissingUpdateParamsMsg)
	}

	prodID, err := coerceInt(in.ProdID)
	if err != nil {
		return integersError(err)
	}
	quantity, err := coerceInt(in.Quantity)
	if err != nil {
		return integersError(err)
	}
	warehouse, ok := coerceIdentifier(in.Warehouse)
	if !ok {
		return domain.NewValidationError(WarehouseNotStringMsg)
	}

	return uc.repo.UpdateInventory(ctx, prodID, quantity, warehouse)
}

// QueryInventory valida prod_id y devuelve la salida de fn_get_product_inventory.
func (uc *ProcedureUseCase) QueryInventory(ctx context.Context, in dto.QueryInventoryRequest) ([]string, error) {
	if in.ProdID == nil {
		return nil, domain.NewValidationError(MissingProdIDMsg)
	}
	prodID, err := coerceInt(in.ProdID)
	if err != nil {
		return nil, domain.NewValidationError(ProdIDNotIntegerMsg)
	}

	lines, err := uc.repo.QueryInventory(ctx, prodID)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}

func integersError(err error) *domain.Error {
	return domain.NewValidationError(fmt.Sprintf("prod_id and quantity must be integers. Error: %s", err))
}
