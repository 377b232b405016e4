package dto

// UpdateInventoryRequest body para POST /api/inventory/update-inventory.
// Los campos son `any` porque prod_id y quantity pueden llegar como número o como string numérico;
// nil significa ausente (o null).
type UpdateInventoryRequest struct {
	ProdID    any `json:"prod_id" swaggertype:"integer"`
	Quantity  any `json:"quantity" swaggertype:"integer"`
	Warehouse any `json:"warehouse" swaggertype:"string"`
}

// QueryInventoryRequest body para POST /api/inventory/query-inventory.
type QueryInventoryRequest struct {
	ProdID any `json:"prod_id" swaggertype:"integer"`
}

// MessageResponse respuesta de éxito de update-inventory.
type MessageResponse struct {
	Message string `json:"message"`
}

// OutputResponse líneas de DBMS_OUTPUT en orden de producción.
type OutputResponse struct {
	Output []string `json:"output"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
}
