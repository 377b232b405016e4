package oracle

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/sijms/go-ora/v2" // registra el driver "oracle"

	"github.com/jhoicas/inventario-oracle-api/pkg/config"
)

// DriverName nombre con el que go-ora se registra en database/sql.
const DriverName = "oracle"

// Open prepara el *sql.DB de Oracle. No abre ninguna sesión: cada petición toma la suya
// con Session y la libera al terminar. MaxIdleConns=0 cierra la sesión en lugar de reutilizarla.
func Open(cfg config.OracleConfig) (*sql.DB, error) {
	db, err := sql.Open(DriverName, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("abrir driver oracle: %w", err)
	}
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(time.Hour)
	return db, nil
}

// Ping verifica conectividad. Con timeout<=0 solo aplica el plazo de ctx, igual que Session.
func Ping(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping oracle: %w", err)
	}
	return nil
}
