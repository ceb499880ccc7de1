package sysregs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestFlattenFields(t *testing.T) {
	gen := New(log.NewTestLogger(t))

	entry := RegisterEntry{
		Type: entryTypeRegister,
		Name: "SCTLR_EL1",
		Fieldsets: []Fieldset{{
			Width: 64,
			Values: []FieldEntry{
				{Type: fieldTypeField, Name: "M", Rangeset: []Range{{Start: 0, Width: 1}}},
				{Type: fieldTypeReserved, Value: "RES1", Rangeset: []Range{{Start: 28, Width: 2}}},
				{Type: fieldTypeField, Name: "EE", Rangeset: []Range{{Start: 25, Width: 1}}},
				{Type: fieldTypeConstant, Name: "ID", Rangeset: []Range{{Start: 4, Width: 4}}},
				{Type: fieldTypeImplementationDefined, Rangeset: []Range{{Start: 40, Width: 4}}},
			},
		}},
	}

	info := gen.flatten(entry)

	expected := RegisterInfo{
		Name: "SCTLR_EL1",
		Fields: []FieldInfo{
			{Name: "M", Index: 0, Width: 1, Writable: true},
			{Name: "ID", Index: 4, Width: 4},
			{Name: "EE", Index: 25, Width: 1, Writable: true},
		},
		Res1:     0x30000000,
		Writable: true,
	}
	if diff := cmp.Diff(expected, info); diff != "" {
		t.Errorf("flattened register mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenDuplicateFieldsets(t *testing.T) {
	gen := New(log.NewTestLogger(t))

	field := FieldEntry{Type: fieldTypeField, Name: "M", Rangeset: []Range{{Start: 0, Width: 1}}}
	entry := RegisterEntry{
		Type: entryTypeRegister,
		Name: "SCTLR_EL1",
		Fieldsets: []Fieldset{
			{Values: []FieldEntry{field}},
			{Values: []FieldEntry{field}},
		},
	}

	info := gen.flatten(entry)

	assert.Len(t, info.Fields, 1)
	assert.Equal(t, "M", info.Fields[0].Name)
}

func TestFlattenMultipleRanges(t *testing.T) {
	gen := New(log.NewTestLogger(t))

	entry := RegisterEntry{
		Type: entryTypeRegister,
		Name: "ID_AA64MMFR4_EL1",
		Fieldsets: []Fieldset{{
			Values: []FieldEntry{{
				Type:     fieldTypeField,
				Name:     "SPLIT",
				Rangeset: []Range{{Start: 0, Width: 2}, {Start: 8, Width: 2}},
			}},
		}},
	}

	info := gen.flatten(entry)
	assert.Empty(t, info.Fields)
}

func TestFlattenConditionalAgreement(t *testing.T) {
	gen := New(log.NewTestLogger(t))

	branch := Branch{Field: FieldEntry{
		Type:     fieldTypeField,
		Name:     "D",
		Rangeset: []Range{{Start: 0, Width: 1}},
	}}
	entry := RegisterEntry{
		Type: entryTypeRegister,
		Name: "SPSR_EL1",
		Fieldsets: []Fieldset{{
			Values: []FieldEntry{{
				Type:     fieldTypeConditional,
				Name:     "D",
				Rangeset: []Range{{Start: 9, Width: 1}},
				Fields:   []Branch{branch, branch},
			}},
		}},
	}

	info := gen.flatten(entry)

	assert.Len(t, info.Fields, 1)
	assert.Equal(t, uint(9), info.Fields[0].Index)
	assert.Equal(t, uint(1), info.Fields[0].Width)
}

func TestFlattenConditionalDisagreement(t *testing.T) {
	gen := New(log.NewTestLogger(t))

	entry := RegisterEntry{
		Type: entryTypeRegister,
		Name: "SPSR_EL1",
		Fieldsets: []Fieldset{{
			Values: []FieldEntry{{
				Type:     fieldTypeConditional,
				Name:     "D",
				Rangeset: []Range{{Start: 9, Width: 1}},
				Fields: []Branch{
					{Field: FieldEntry{
						Type:     fieldTypeField,
						Name:     "D",
						Rangeset: []Range{{Start: 0, Width: 1}},
					}},
					{Field: FieldEntry{
						Type:     fieldTypeField,
						Name:     "AA",
						Rangeset: []Range{{Start: 0, Width: 1}},
					}},
				},
			}},
		}},
	}

	info := gen.flatten(entry)
	assert.Empty(t, info.Fields)
}

func TestFlattenArrayField(t *testing.T) {
	gen := New(log.NewTestLogger(t))

	entry := RegisterEntry{
		Type: entryTypeRegister,
		Name: "AMCNTENSET0_EL0",
		Fieldsets: []Fieldset{{
			Values: []FieldEntry{{
				Type:          fieldTypeArray,
				Name:          "P<n>",
				Rangeset:      []Range{{Start: 0, Width: 16}},
				IndexVariable: "n",
				Indexes:       []Range{{Start: 0, Width: 16}},
			}},
		}},
	}

	info := gen.flatten(entry)

	expected := []FieldInfo{{
		Name:     "P<n>",
		Index:    0,
		Width:    1,
		Writable: true,
		Array: &ArrayInfo{
			Start:         0,
			End:           16,
			IndexVariable: "n",
		},
	}}
	if diff := cmp.Diff(expected, info.Fields); diff != "" {
		t.Errorf("flattened fields mismatch (-want +got):\n%s", diff)
	}
}

func TestOnes(t *testing.T) {
	assert.Equal(t, uint64(0), ones(0))
	assert.Equal(t, uint64(1), ones(1))
	assert.Equal(t, uint64(0xff), ones(8))
	assert.Equal(t, uint64(0xffffffffffffffff), ones(64))
}
