package tracing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-oracle-api/pkg/tracing"
)

func TestInit_WithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := tracing.Init(context.Background(), "inventario-oracle-api", "")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
