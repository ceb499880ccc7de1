// Package config handles application configuration and setup
package config

import (
	"fmt"

	"github.com/retroenv/aarch64dec/internal/esr"
	"github.com/retroenv/aarch64dec/internal/field"
	"github.com/retroenv/aarch64dec/internal/midr"
	"github.com/retroenv/aarch64dec/internal/smccc"
	"github.com/retroenv/retrogolib/log"
)

// Decoder decodes a register value into its annotated fields.
type Decoder func(value uint64) ([]field.Field, error)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateDecoder returns the decoder for the given register kind.
func CreateDecoder(register string) (Decoder, error) {
	switch register {
	case "esr":
		return esr.Decode, nil
	case "midr":
		return midr.Decode, nil
	case "smccc":
		return smccc.Decode, nil
	default:
		return nil, fmt.Errorf("unsupported register '%s'", register)
	}
}
