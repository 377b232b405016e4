package oracle

import (
	"context"
	"database/sql"
	"time"

	"github.com/jhoicas/inventario-oracle-api/internal/domain"
)

// SessionRunner ejecuta callbacks sobre una sesión Oracle dedicada, con liberación garantizada.
type SessionRunner struct {
	db      *sql.DB
	timeout time.Duration
}

// NewSessionRunner construye el runner. timeout<=0 desactiva el límite por llamada.
func NewSessionRunner(db *sql.DB, timeout time.Duration) *SessionRunner {
	return &SessionRunner{db: db, timeout: timeout}
}

// Session toma una conexión (una sesión Oracle), ejecuta fn y la cierra en cualquier salida.
// Los errores que no son de dominio se devuelven como errores de base de datos.
func (r *SessionRunner) Session(ctx context.Context, fn func(ctx context.Context, conn *sql.Conn) error) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return domain.NewDatabaseError(err)
	}
	defer func() { _ = conn.Close() }()

	return asDatabaseError(fn(ctx, conn))
}

// Tx abre una sesión, inicia una transacción, ejecuta fn y hace Commit o Rollback.
// Si fn falla no hay commit.
func (r *SessionRunner) Tx(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	return r.Session(ctx, func(ctx context.Context, conn *sql.Conn) error {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		if err := fn(ctx, tx); err != nil {
			return err
		}
		return tx.Commit()
	})
}
