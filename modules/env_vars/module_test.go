package env_vars

import (
	"context"
	"testing"

	"github.com/specialistvlad/funcgrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvNumber(t *testing.T) {
	t.Setenv("FUNCGRID_ROWS", " 1250.5 ")

	v, frag, err := EnvNumber(context.Background(), registry.Args{"name": "FUNCGRID_ROWS"})

	require.NoError(t, err)
	assert.Equal(t, 1250.5, v)
	assert.Equal(t, "$FUNCGRID_ROWS=1250.5", frag)
}

func TestEnvNumber_Unset(t *testing.T) {
	v, frag, err := EnvNumber(context.Background(), registry.Args{"name": "FUNCGRID_DEFINITELY_UNSET"})

	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, "$FUNCGRID_DEFINITELY_UNSET unset", frag)
}

func TestEnvNumber_Errors(t *testing.T) {
	t.Setenv("FUNCGRID_WORD", "many")

	_, _, err := EnvNumber(context.Background(), registry.Args{"name": "FUNCGRID_WORD"})
	require.Error(t, err)
	assert.False(t, registry.IsPrecondition(err))

	_, _, err = EnvNumber(context.Background(), registry.Args{"name": 3})
	require.Error(t, err)
	assert.True(t, registry.IsPrecondition(err))
}
