package oracle

import (
	"context"
	"database/sql"

	"github.com/jhoicas/inventario-oracle-api/internal/domain/repository"
)

var _ repository.InventoryProcedureRepository = (*InventoryProcedureRepo)(nil)

const (
	updateInventorySQL = `
		BEGIN
			sp_update_inventory(:prod_id, :quantity, :warehouse);
		END;`

	queryInventorySQL = `
		DECLARE
			v_inventory_level NUMBER;
		BEGIN
			v_inventory_level := fn_get_product_inventory(:prod_id);
			dbms_output.put_line(
				'Inventory : ' || v_inventory_level || ' for product id=' || :prod_id
			);
		END;`
)

// InventoryProcedureRepo implementación de InventoryProcedureRepository sobre Oracle.
type InventoryProcedureRepo struct {
	runner *SessionRunner
}

// NewInventoryProcedureRepository construye el adaptador.
func NewInventoryProcedureRepository(runner *SessionRunner) *InventoryProcedureRepo {
	return &InventoryProcedureRepo{runner: runner}
}

// UpdateInventory ejecuta sp_update_inventory con parámetros enlazados y hace commit.
func (r *InventoryProcedureRepo) UpdateInventory(ctx context.Context, prodID, quantity int64, warehouse string) error {
	return r.runner.Tx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, updateInventorySQL,
			sql.Named("prod_id", prodID),
			sql.Named("quantity", quantity),
			sql.Named("warehouse", warehouse),
		)
		return err
	})
}

// QueryInventory activa DBMS_OUTPUT, evalúa fn_get_product_inventory y vacía el buffer de salida.
// Todo ocurre en la misma sesión porque DBMS_OUTPUT es por sesión.
func (r *InventoryProcedureRepo) QueryInventory(ctx context.Context, prodID int64) ([]string, error) {
	var lines []string
	err := r.runner.Session(ctx, func(ctx context.Context, conn *sql.Conn) error {
		if err := enableOutput(ctx, conn); err != nil {
			return err
		}
		if _, err := conn.ExecContext(ctx, queryInventorySQL, sql.Named("prod_id", prodID)); err != nil {
			return err
		}
		out, err := drainOutput(ctx, getLine(conn))
		if err != nil {
			return err
		}
		lines = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
