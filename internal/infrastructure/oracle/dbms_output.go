package oracle

import (
	"context"
	"database/sql"

	go_ora "github.com/sijms/go-ora/v2"
)

const (
	enableOutputSQL = `BEGIN DBMS_OUTPUT.ENABLE(NULL); END;`
	getLineSQL      = `BEGIN DBMS_OUTPUT.GET_LINE(:line, :status); END;`

	// Longitud máxima de una línea de DBMS_OUTPUT.
	maxOutputLineSize = 32767
)

// execer lo cumplen *sql.Conn y *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// lineReader devuelve la siguiente línea del buffer; done=true cuando ya no quedan.
type lineReader func(ctx context.Context) (line string, done bool, err error)

// enableOutput activa DBMS_OUTPUT en la sesión (buffer ilimitado).
func enableOutput(ctx context.Context, ex execer) error {
	_, err := ex.ExecContext(ctx, enableOutputSQL)
	return err
}

// getLine lee con DBMS_OUTPUT.GET_LINE. El fin del buffer es status<>0 o línea NULL.
func getLine(ex execer) lineReader {
	return func(ctx context.Context) (string, bool, error) {
		var (
			line   sql.NullString
			status int64
		)
		_, err := ex.ExecContext(ctx, getLineSQL,
			sql.Named("line", go_ora.Out{Dest: &line, Size: maxOutputLineSize}),
			sql.Named("status", go_ora.Out{Dest: &status}),
		)
		if err != nil {
			return "", false, err
		}
		if status != 0 || !line.Valid {
			return "", true, nil
		}
		return line.String, false, nil
	}
}

// drainOutput pide líneas hasta el centinela y las devuelve en orden de producción.
// El número de líneas lo decide el código PL/SQL, no hay tope fijo.
func drainOutput(ctx context.Context, next lineReader) ([]string, error) {
	lines := make([]string, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, done, err := next(ctx)
		if err != nil {
			return nil, err
		}
		if done {
			return lines, nil
		}
		lines = append(lines, line)
	}
}
