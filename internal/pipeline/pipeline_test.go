package pipeline

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/retroenv/aarch64dec/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestExecuteText(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := options.Program{
		Register: "esr",
		Values:   []string{"0x96000045"},
		Quiet:    true,
	}

	var buf bytes.Buffer
	pipe := New(logger)
	err := pipe.Execute(context.Background(), opts, &buf)
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "ESR 0x00000000000000000000000096000045:")
	assert.Contains(t, output, "Data Abort taken without a change in Exception level")
	assert.Contains(t, output, "06     WnR: true")
	assert.Contains(t, output, "Abort caused by writing to memory")
}

func TestExecuteHTML(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := options.Program{
		Register: "midr",
		Values:   []string{"0x410fd083"},
		HTML:     true,
		Quiet:    true,
	}

	var buf bytes.Buffer
	pipe := New(logger)
	err := pipe.Execute(context.Background(), opts, &buf)
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "<h2>MIDR 0x")
	assert.Contains(t, output, `<td colspan="8">Implementer: 0x41</td>`)
	assert.Contains(t, output, `<td colspan="8">Arm Limited</td>`)
}

func TestExecuteContinuesAfterError(t *testing.T) {
	logger := log.NewTestLogger(t)

	// the first value has an unassigned exception class, the second is valid
	opts := options.Program{
		Register: "esr",
		Values:   []string{"0xfc000000", "0x82001e10"},
		Quiet:    true,
	}

	var buf bytes.Buffer
	pipe := New(logger)
	err := pipe.Execute(context.Background(), opts, &buf)
	assert.NoError(t, err)

	assert.Contains(t, buf.String(), "ESR 0x00000000000000000000000082001e10:")
}

func TestExecuteCancelled(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := options.Program{
		Register: "esr",
		Values:   []string{"0x96000045"},
		Quiet:    true,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	pipe := New(logger)
	err := pipe.Execute(ctx, opts, &buf)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, buf.Len())
}

func TestExecuteUnsupportedRegister(t *testing.T) {
	logger := log.NewTestLogger(t)

	opts := options.Program{
		Register: "sctlr",
		Values:   []string{"0x1"},
		Quiet:    true,
	}

	var buf bytes.Buffer
	pipe := New(logger)
	err := pipe.Execute(context.Background(), opts, &buf)
	assert.Error(t, err)
}
