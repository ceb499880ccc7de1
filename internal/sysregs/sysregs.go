// Package sysregs generates Go source code for Arm system registers from
// the machine readable specification files published for the A-profile
// architecture.
package sysregs

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"slices"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Generator creates Go source files from system register specifications.
type Generator struct {
	logger *log.Logger
}

// New creates a new generator.
func New(logger *log.Logger) *Generator {
	return &Generator{
		logger: logger,
	}
}

// Generate writes a Go source file with typed accessors for all registers of
// the listing that the configuration selects.
func (g *Generator) Generate(cfg Config, entries []RegisterEntry, pkg string,
	writer io.Writer) error {

	infos := g.collect(cfg, entries)

	var buf bytes.Buffer
	writeHeader(&buf, pkg)
	for _, info := range infos {
		writeRegister(&buf, info)
	}
	writeSnapshot(&buf, infos)

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	if _, err := writer.Write(source); err != nil {
		return fmt.Errorf("writing generated source: %w", err)
	}
	return nil
}

// collect flattens all configured registers of the listing in name order.
func (g *Generator) collect(cfg Config, entries []RegisterEntry) []RegisterInfo {
	infos := make([]RegisterInfo, 0, len(cfg.Registers))

	for _, entry := range entries {
		if entry.Type != entryTypeRegister {
			continue
		}
		registerConfig, ok := cfg.Registers[entry.Name]
		if !ok {
			continue
		}

		info := g.flatten(entry)
		addDescriptions(&info, registerConfig)
		infos = append(infos, info)

		g.logger.Debug("Collected register",
			log.String("name", info.Name),
			log.Int("fields", len(info.Fields)))
	}

	slices.SortFunc(infos, func(a, b RegisterInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos
}

// addDescriptions applies the configured field description overrides.
func addDescriptions(info *RegisterInfo, cfg RegisterConfig) {
	for i, field := range info.Fields {
		if description, ok := cfg.FieldDescriptions[field.Name]; ok {
			info.Fields[i].Description = description
		}
	}
}
