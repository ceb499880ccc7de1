package sysregs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	data := `[registers.SCR_EL3.field_descriptions]
NS = "Non-secure bit."

[registers.MIDR_EL1]
`
	path := filepath.Join(t.TempDir(), "registers.toml")
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Len(t, cfg.Registers, 2)
	assert.Equal(t, "Non-secure bit.", cfg.Registers["SCR_EL3"].FieldDescriptions["NS"])
	_, ok := cfg.Registers["MIDR_EL1"]
	assert.True(t, ok)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
