package oracle

import (
	"errors"

	"github.com/sijms/go-ora/v2/network"

	"github.com/jhoicas/inventario-oracle-api/internal/domain"
)

// OracleErrorCode devuelve el código ORA-xxxxx del error, o 0 si no viene del servidor.
func OracleErrorCode(err error) int {
	var oraErr *network.OracleError
	if errors.As(err, &oraErr) {
		return oraErr.ErrCode
	}
	return 0
}

// asDatabaseError conserva los errores de dominio y envuelve el resto como error de base de datos.
func asDatabaseError(err error) error {
	if err == nil {
		return nil
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.NewDatabaseError(err)
}
