package render

import (
	"fmt"
	"html"
	"io"

	"github.com/retroenv/aarch64dec/internal/field"
)

// tableBits is the number of bit columns of the HTML table.
const tableBits = 64

// HTML writes the decoded fields of a register value as an HTML table
// fragment: a row of bit numbers, the hexadecimal digits and binary bits of
// the value, then one row per decode level with a cell per field spanning
// its bits and the field descriptions in a row below it. Gaps between
// fields are padded with empty cells, all text is HTML escaped.
func HTML(writer io.Writer, register string, value uint64, fields []field.Field) error {
	if _, err := fmt.Fprintf(writer, "<h2>%s %#034x</h2>\n",
		html.EscapeString(register), value); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(writer, "<table>"); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	if err := writeBitNumberRow(writer); err != nil {
		return err
	}
	if err := writeHexRow(writer, value); err != nil {
		return err
	}
	if err := writeBinaryRow(writer, value); err != nil {
		return err
	}

	for level := fields; len(level) > 0; level = subfields(level) {
		if err := writeFieldRow(writer, level); err != nil {
			return err
		}
		if err := writeDescriptionRow(writer, level); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(writer, "</table>"); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

// subfields collects the next nesting level of the given fields, keeping the
// descending bit order of the parents.
func subfields(fields []field.Field) []field.Field {
	var next []field.Field
	for _, f := range fields {
		next = append(next, f.Subfields...)
	}
	return next
}

func writeBitNumberRow(writer io.Writer) error {
	if _, err := fmt.Fprint(writer, "<tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	for bit := tableBits - 1; bit >= 0; bit-- {
		if _, err := fmt.Fprintf(writer, "<th>%d</th>", bit); err != nil {
			return fmt.Errorf("writing bit number: %w", err)
		}
	}
	if _, err := fmt.Fprintln(writer, "</tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return nil
}

func writeHexRow(writer io.Writer, value uint64) error {
	if _, err := fmt.Fprint(writer, "<tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	for nibble := tableBits/4 - 1; nibble >= 0; nibble-- {
		if _, err := fmt.Fprintf(writer, `<td colspan="4">%x</td>`, value>>(nibble*4)&0xf); err != nil {
			return fmt.Errorf("writing hex digit: %w", err)
		}
	}
	if _, err := fmt.Fprintln(writer, "</tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return nil
}

func writeBinaryRow(writer io.Writer, value uint64) error {
	if _, err := fmt.Fprint(writer, "<tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	for bit := tableBits - 1; bit >= 0; bit-- {
		if _, err := fmt.Fprintf(writer, "<td>%d</td>", value>>bit&1); err != nil {
			return fmt.Errorf("writing bit: %w", err)
		}
	}
	if _, err := fmt.Fprintln(writer, "</tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return nil
}

func writeFieldRow(writer io.Writer, fields []field.Field) error {
	if _, err := fmt.Fprint(writer, "<tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}

	next := uint(tableBits)
	for _, f := range fields {
		if end := f.Start + f.Width; end < next {
			if err := writeFillerCell(writer, next-end); err != nil {
				return err
			}
		}
		label := fmt.Sprintf("%s: %s", f.Name, f.ValueString())
		if _, err := fmt.Fprintf(writer, `<td colspan="%d">%s</td>`,
			f.Width, html.EscapeString(label)); err != nil {
			return fmt.Errorf("writing field cell: %w", err)
		}
		next = f.Start
	}
	if next > 0 {
		if err := writeFillerCell(writer, next); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(writer, "</tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return nil
}

func writeDescriptionRow(writer io.Writer, fields []field.Field) error {
	hasDescription := false
	for _, f := range fields {
		if f.Description != "" {
			hasDescription = true
			break
		}
	}
	if !hasDescription {
		return nil
	}

	if _, err := fmt.Fprint(writer, "<tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}

	next := uint(tableBits)
	for _, f := range fields {
		if end := f.Start + f.Width; end < next {
			if err := writeFillerCell(writer, next-end); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(writer, `<td colspan="%d">%s</td>`,
			f.Width, html.EscapeString(f.Description)); err != nil {
			return fmt.Errorf("writing description cell: %w", err)
		}
		next = f.Start
	}
	if next > 0 {
		if err := writeFillerCell(writer, next); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(writer, "</tr>"); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	return nil
}

func writeFillerCell(writer io.Writer, width uint) error {
	if _, err := fmt.Fprintf(writer, `<td colspan="%d"></td>`, width); err != nil {
		return fmt.Errorf("writing filler cell: %w", err)
	}
	return nil
}
