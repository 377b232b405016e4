package repository

import "context"

// InventoryProcedureRepository define el puerto hacia los procedimientos PL/SQL de inventario (DIP).
// Toda la lógica de inventario vive en la base de datos; el adaptador solo enlaza parámetros.
type InventoryProcedureRepository interface {
	// UpdateInventory ejecuta sp_update_inventory y hace commit en la misma sesión.
	UpdateInventory(ctx context.Context, prodID, quantity int64, warehouse string) error

	// QueryInventory evalúa fn_get_product_inventory y devuelve las líneas de DBMS_OUTPUT
	// en el orden en que se produjeron. Nunca devuelve nil en éxito.
	QueryInventory(ctx context.Context, prodID int64) ([]string, error)
}
