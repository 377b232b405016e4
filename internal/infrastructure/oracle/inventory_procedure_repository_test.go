package oracle

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	go_ora "github.com/sijms/go-ora/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-oracle-api/internal/domain"
)

// outParamConverter deja pasar los parámetros OUT de go-ora sin convertirlos.
type outParamConverter struct{}

func (outParamConverter) ConvertValue(v any) (driver.Value, error) {
	if o, ok := v.(go_ora.Out); ok {
		return o, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newMockRepo(t *testing.T) (*InventoryProcedureRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.ValueConverterOption(outParamConverter{}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewInventoryProcedureRepository(NewSessionRunner(db, 5*time.Second)), mock
}

func TestUpdateInventory_BindsAndCommits(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(updateInventorySQL).
		WithArgs(sql.Named("prod_id", int64(42)), sql.Named("quantity", int64(5)), sql.Named("warehouse", "WH1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateInventory(context.Background(), 42, 5, "WH1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInventory_ExecErrorRollsBackWithoutCommit(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(updateInventorySQL).
		WithArgs(sql.Named("prod_id", int64(42)), sql.Named("quantity", int64(5)), sql.Named("warehouse", "WH1")).
		WillReturnError(errors.New("ORA-20001: producto no existe"))
	mock.ExpectRollback()

	err := repo.UpdateInventory(context.Background(), 42, 5, "WH1")
	require.Error(t, err)
	assert.Equal(t, domain.KindDatabase, domain.KindOf(err))
	assert.Equal(t, "Database error: ORA-20001: producto no existe", err.Error())
	require.NoError(t, mock.ExpectationsWereMet(), "no debe haber commit")
}

func TestUpdateInventory_CommitErrorIsDatabaseError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(updateInventorySQL).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("ORA-02091: transaction rolled back"))

	err := repo.UpdateInventory(context.Background(), 1, 1, "WH1")
	require.Error(t, err)
	assert.Equal(t, domain.KindDatabase, domain.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInventory_BeginErrorIsDatabaseError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("ORA-12541: TNS:no listener"))

	err := repo.UpdateInventory(context.Background(), 1, 1, "WH1")
	assert.Equal(t, domain.KindDatabase, domain.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryInventory_EnablesExecutesAndDrains(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(enableOutputSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(queryInventorySQL).
		WithArgs(sql.Named("prod_id", int64(42))).
		WillReturnResult(sqlmock.NewResult(0, 0))
	// El mock no escribe los OUT: la línea queda NULL y se interpreta como fin del buffer.
	mock.ExpectExec(getLineSQL).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	lines, err := repo.QueryInventory(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryInventory_BlockErrorSkipsDrain(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(enableOutputSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(queryInventorySQL).
		WithArgs(sql.Named("prod_id", int64(7))).
		WillReturnError(errors.New("ORA-06550: line 4, column 5"))

	lines, err := repo.QueryInventory(context.Background(), 7)
	require.Error(t, err)
	assert.Nil(t, lines)
	assert.Equal(t, domain.KindDatabase, domain.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryInventory_EnableErrorIsDatabaseError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(enableOutputSQL).WillReturnError(errors.New("ORA-01031: insufficient privileges"))

	_, err := repo.QueryInventory(context.Background(), 7)
	assert.Equal(t, domain.KindDatabase, domain.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOracleErrorCode_NonOracleError(t *testing.T) {
	assert.Zero(t, OracleErrorCode(errors.New("plain")))
	assert.Zero(t, OracleErrorCode(nil))
}
