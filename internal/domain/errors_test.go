package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-oracle-api/internal/domain"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("ORA-12541: TNS:no listener")

	assert.Equal(t, domain.KindValidation, domain.KindOf(domain.NewValidationError("x")))
	assert.Equal(t, domain.KindDatabase, domain.KindOf(domain.NewDatabaseError(cause)))
	assert.Equal(t, domain.KindMethodNotAllowed, domain.KindOf(domain.ErrMethodNotAllowed))
	assert.Equal(t, domain.KindInternal, domain.KindOf(errors.New("boom")))

	// Un error de dominio envuelto conserva su tipo.
	wrapped := fmt.Errorf("update inventory: %w", domain.NewDatabaseError(cause))
	assert.Equal(t, domain.KindDatabase, domain.KindOf(wrapped))
}

func TestMessages(t *testing.T) {
	cause := errors.New("ORA-06550: line 1, column 7")

	assert.Equal(t, "Database error: ORA-06550: line 1, column 7", domain.NewDatabaseError(cause).Error())
	assert.Equal(t, "Unexpected error: boom", domain.AsError(errors.New("boom")).Error())
	assert.Equal(t, "Invalid JSON: unexpected EOF", domain.NewInvalidJSONError(errors.New("unexpected EOF")).Error())
	assert.Equal(t, "Only POST method is allowed", domain.ErrMethodNotAllowed.Error())

	assert.ErrorIs(t, domain.NewDatabaseError(cause), cause)
	assert.Nil(t, domain.AsError(nil))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "validation", domain.KindValidation.String())
	assert.Equal(t, "database", domain.KindDatabase.String())
	assert.Equal(t, "method_not_allowed", domain.KindMethodNotAllowed.String())
	assert.Equal(t, "internal", domain.KindInternal.String())
}
