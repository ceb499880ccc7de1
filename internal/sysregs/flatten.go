package sysregs

import (
	"cmp"
	"math"
	"slices"

	"github.com/retroenv/retrogolib/log"
)

// RegisterInfo is the flattened form of one register listing entry.
type RegisterInfo struct {
	Name  string
	Title string
	// Fields holds the flattened fields ordered by bit index.
	Fields []FieldInfo
	// Res1 collects all bits that are reserved as one.
	Res1 uint64
	// Writable is set when any field of the register is writable.
	Writable bool
}

// FieldInfo is one flattened register field.
type FieldInfo struct {
	// Name of the field, with a <var> placeholder for array fields.
	Name string
	// Description of the field, set from the configuration overrides.
	Description string
	// Index of the least significant bit of the field.
	Index uint
	// Width of the field in bits, per element for array fields.
	Width uint
	// Writable is false for fields with a constant value.
	Writable bool
	// Array is set for repeated fields.
	Array *ArrayInfo
}

// ArrayInfo describes the index range of a repeated field.
type ArrayInfo struct {
	// Start is the first valid field index.
	Start uint
	// End is the first index past the valid range.
	End uint
	// IndexVariable is the placeholder variable of the field name.
	IndexVariable string
}

// placeholder returns the index placeholder used in the field name.
func (a ArrayInfo) placeholder() string {
	return "<" + a.IndexVariable + ">"
}

// equal reports whether two flattened fields describe the same bits.
func (f FieldInfo) equal(other FieldInfo) bool {
	if f.Name != other.Name || f.Description != other.Description ||
		f.Index != other.Index || f.Width != other.Width ||
		f.Writable != other.Writable {

		return false
	}
	if f.Array == nil || other.Array == nil {
		return f.Array == other.Array
	}
	return *f.Array == *other.Array
}

// flatten converts a register listing entry into its flattened field form.
// Reserved and implementation defined records carry no stable layout and are
// dropped, reserved RES1 ranges accumulate into the register RES1 mask.
func (g *Generator) flatten(entry RegisterEntry) RegisterInfo {
	info := RegisterInfo{
		Name:  entry.Name,
		Title: entry.Title,
	}

	for _, fieldset := range entry.Fieldsets {
		for _, value := range fieldset.Values {
			if field, ok := g.flattenEntry(value, 0); ok {
				info.Fields = append(info.Fields, field)
			}

			if value.Type == fieldTypeReserved && value.Value == "RES1" {
				for _, bits := range value.Rangeset {
					info.Res1 |= ones(bits.Width) << bits.Start
				}
			}
		}
	}

	slices.SortStableFunc(info.Fields, func(a, b FieldInfo) int {
		return cmp.Compare(a.Index, b.Index)
	})
	info.Fields = slices.CompactFunc(info.Fields, FieldInfo.equal)

	for _, field := range info.Fields {
		if field.Writable {
			info.Writable = true
			break
		}
	}
	return info
}

func (g *Generator) flattenEntry(entry FieldEntry, offset uint) (FieldInfo, bool) {
	switch entry.Type {
	case fieldTypeField:
		return g.flattenField(entry, offset, true)

	case fieldTypeConstant:
		return g.flattenField(entry, offset, false)

	case fieldTypeConditional:
		return g.flattenConditional(entry, offset)

	case fieldTypeArray:
		return g.flattenArray(entry, offset)

	case fieldTypeReserved:
		return FieldInfo{}, false

	case fieldTypeImplementationDefined:
		g.logger.Debug("Skipping implementation defined field",
			log.String("field", entry.Name))
		return FieldInfo{}, false

	case fieldTypeDynamic, fieldTypeVector:
		g.logger.Debug("Skipping field without a static layout",
			log.String("field", entry.Name),
			log.String("type", entry.Type))
		return FieldInfo{}, false

	default:
		g.logger.Debug("Skipping unknown field entry type",
			log.String("field", entry.Name),
			log.String("type", entry.Type))
		return FieldInfo{}, false
	}
}

func (g *Generator) flattenField(entry FieldEntry, offset uint, writable bool) (FieldInfo, bool) {
	if len(entry.Rangeset) != 1 {
		g.logger.Debug("Skipping field with multiple ranges",
			log.String("field", entry.Name))
		return FieldInfo{}, false
	}

	bits := entry.Rangeset[0]
	return FieldInfo{
		Name:     entry.Name,
		Index:    offset + bits.Start,
		Width:    bits.Width,
		Writable: writable,
	}, true
}

// flattenConditional flattens a field whose layout depends on a
// configuration condition. All branches have to flatten to the same field, a
// field whose branches disagree is dropped entirely.
func (g *Generator) flattenConditional(entry FieldEntry, offset uint) (FieldInfo, bool) {
	if len(entry.Rangeset) != 1 {
		g.logger.Debug("Skipping conditional field with multiple ranges",
			log.String("field", entry.Name))
		return FieldInfo{}, false
	}

	start := entry.Rangeset[0].Start
	var first FieldInfo
	found := false

	for _, branch := range entry.Fields {
		field, ok := g.flattenEntry(branch.Field, offset+start)
		if !found {
			first = field
			found = ok
			continue
		}
		if !ok || !field.equal(first) {
			g.logger.Debug("Dropping conditional field with disagreeing branches",
				log.String("field", entry.Name))
			return FieldInfo{}, false
		}
	}
	return first, found
}

func (g *Generator) flattenArray(entry FieldEntry, offset uint) (FieldInfo, bool) {
	if len(entry.Rangeset) != 1 {
		g.logger.Debug("Skipping array field with multiple ranges",
			log.String("field", entry.Name))
		return FieldInfo{}, false
	}
	if len(entry.Indexes) != 1 || entry.Indexes[0].Width == 0 {
		g.logger.Debug("Skipping array field without a single index range",
			log.String("field", entry.Name))
		return FieldInfo{}, false
	}

	bits := entry.Rangeset[0]
	indexes := entry.Indexes[0]
	return FieldInfo{
		Name:     entry.Name,
		Index:    offset + bits.Start,
		Width:    bits.Width / indexes.Width,
		Writable: true,
		Array: &ArrayInfo{
			Start:         indexes.Start,
			End:           indexes.Start + indexes.Width,
			IndexVariable: entry.IndexVariable,
		},
	}, true
}

// ones returns a value with the n lowest bits set.
func ones(n uint) uint64 {
	return math.MaxUint64 >> (64 - n)
}
