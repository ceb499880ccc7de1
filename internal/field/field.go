// Package field provides the decoded bit field record shared by all register decoders.
package field

import "fmt"

// Extract returns the bits [start, end) of value, shifted down to start at bit 0.
// The caller guarantees start < end <= 64 through fixed per-field constants.
func Extract(value uint64, start, end uint) uint64 {
	width := end - start
	mask := ^uint64(0) >> (64 - width)
	return (value >> start) & mask
}

// Field describes one decoded bit range of a register value.
type Field struct {
	Name        string  // short name from the architecture manual, e.g. "ISS"
	LongName    string  // human readable expansion, e.g. "Instruction Specific Syndrome"
	Start       uint    // index of the lowest bit of the field
	Width       uint    // number of bits in the field
	Value       uint64  // extracted value
	Description string  // explanation of the field value, if available
	Subfields   []Field // nested decode of the value, if any
}

// New extracts the bits [start, end) of register into a field record.
func New(register uint64, name, longName string, start, end uint) Field {
	return Field{
		Name:     name,
		LongName: longName,
		Start:    start,
		Width:    end - start,
		Value:    Extract(register, start, end),
	}
}

// NewBit extracts the single bit at the given position into a field record.
func NewBit(register uint64, name, longName string, bit uint) Field {
	return New(register, name, longName, bit, bit+1)
}

// WithDescription returns a copy of the field with the description attached.
func (f Field) WithDescription(description string) Field {
	f.Description = description
	return f
}

// WithSubfields returns a copy of the field with the nested decode attached.
func (f Field) WithSubfields(subfields []Field) Field {
	f.Subfields = subfields
	return f
}

// Bit returns the boolean interpretation of a single bit field.
// Calling it on a wider field is a programming error and panics.
func (f Field) Bit() bool {
	if f.Width != 1 {
		panic(fmt.Sprintf("field %s has width %d, expected a single bit", f.Name, f.Width))
	}
	return f.Value == 1
}

// DescribeBit attaches the description that the describer returns for the
// boolean interpretation of a single bit field.
// Calling it on a wider field is a programming error and panics.
func (f Field) DescribeBit(describer func(bool) string) Field {
	return f.WithDescription(describer(f.Bit()))
}

// Describe attaches the description that the classifier returns for the field
// value. A classification error aborts the decode and is returned unchanged.
func (f Field) Describe(describer func(uint64) (string, error)) (Field, error) {
	description, err := describer(f.Value)
	if err != nil {
		return Field{}, err
	}
	return f.WithDescription(description), nil
}

// CheckRes0 returns the field unchanged if all reserved bits read as zero.
// A nonzero value means an unrecognized architecture extension or a corrupt
// register value, both terminal for the decode.
func (f Field) CheckRes0() (Field, error) {
	if f.Value != 0 {
		return Field{}, InvalidRes0Error{Res0: f.Value}
	}
	return f, nil
}

// ValueString returns the value as a zero-padded hexadecimal literal, or
// "true" and "false" for single bit fields.
func (f Field) ValueString() string {
	if f.Width == 1 {
		if f.Value == 1 {
			return "true"
		}
		return "false"
	}
	return fmt.Sprintf("%#0*x", int((f.Width+3)/4+2), f.Value)
}

// BinaryString returns the value as a binary literal with one digit per bit.
func (f Field) BinaryString() string {
	return fmt.Sprintf("%#0*b", int(f.Width+2), f.Value)
}

// String renders the field name and value the way the console output shows it.
func (f Field) String() string {
	if f.Width == 1 {
		return fmt.Sprintf("%s: %s", f.Name, f.ValueString())
	}
	return fmt.Sprintf("%s: %s %s", f.Name, f.ValueString(), f.BinaryString())
}
