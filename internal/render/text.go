// Package render writes decoded register field trees as text or HTML.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/aarch64dec/internal/field"
)

// Text writes the decoded fields of a register value as an indented tree,
// one line per field with its bit range and value, followed by the field
// description and its subfields, indented by two spaces per nesting level.
func Text(writer io.Writer, register string, value uint64, fields []field.Field) error {
	if _, err := fmt.Fprintf(writer, "%s %#034x:\n", register, value); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return writeFields(writer, fields, 0)
}

func writeFields(writer io.Writer, fields []field.Field, level int) error {
	indentation := strings.Repeat("  ", level)

	for _, f := range fields {
		var err error
		if f.Width == 1 {
			_, err = fmt.Fprintf(writer, "%s%02d     %s\n", indentation, f.Start, f)
		} else {
			_, err = fmt.Fprintf(writer, "%s%02d..%02d %s\n",
				indentation, f.Start, f.Start+f.Width-1, f)
		}
		if err != nil {
			return fmt.Errorf("writing field: %w", err)
		}

		if f.Description != "" {
			if _, err := fmt.Fprintf(writer, "%s  # %s\n", indentation, f.Description); err != nil {
				return fmt.Errorf("writing description: %w", err)
			}
		}

		if err := writeFields(writer, f.Subfields, level+1); err != nil {
			return err
		}
	}
	return nil
}
