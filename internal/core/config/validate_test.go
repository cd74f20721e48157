package config

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Headers = map[string]string{"Authorization": "Bearer abc"}

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_ConfigFile(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("missing file is fine", func(t *testing.T) {
		assert.NoError(t, cfg.ValidateDeep(t.TempDir()+"/missing.yaml"))
	})

	t.Run("directory is rejected", func(t *testing.T) {
		err := cfg.ValidateDeep(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})
}

func TestValidateDeep_ReservedHeaders(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Headers = map[string]string{
		"content-type": "text/plain",
		"X-Request-ID": "fixed",
	}

	err := cfg.ValidateDeep("")
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Contains(t, err.Error(), "header is set by taskhub")
}
