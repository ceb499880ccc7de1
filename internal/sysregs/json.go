package sysregs

import (
	"encoding/json"
	"fmt"
)

// Register listing entry types.
const (
	entryTypeRegister      = "Register"
	entryTypeRegisterArray = "RegisterArray"
	entryTypeRegisterBlock = "RegisterBlock"
)

// Fieldset entry types.
const (
	fieldTypeField                 = "Fieldset.Field"
	fieldTypeReserved              = "Fieldset.Reserved"
	fieldTypeImplementationDefined = "Fieldset.ImplementationDefined"
	fieldTypeConditional           = "Fieldset.ConditionalField"
	fieldTypeArray                 = "Fieldset.Array"
	fieldTypeConstant              = "Fieldset.ConstantField"
	fieldTypeDynamic               = "Fieldset.Dynamic"
	fieldTypeVector                = "Fieldset.Vector"
)

// RegisterEntry is one entry of the system register JSON listing. The
// listing mixes plain registers, register arrays and memory mapped register
// blocks, distinguished by the _type tag. Attributes the generator does not
// consume are ignored.
type RegisterEntry struct {
	Type      string     `json:"_type"`
	Name      string     `json:"name"`
	Title     string     `json:"title"`
	Fieldsets []Fieldset `json:"fieldsets"`
}

// Fieldset is one bit layout of a register.
type Fieldset struct {
	Name   string       `json:"name"`
	Width  uint         `json:"width"`
	Values []FieldEntry `json:"values"`
}

// FieldEntry is one field record of a fieldset. Records carry a _type
// discriminator and only the attributes their type defines, the rest stay
// zero.
type FieldEntry struct {
	Type          string   `json:"_type"`
	Name          string   `json:"name"`
	Value         string   `json:"value"`
	Rangeset      []Range  `json:"rangeset"`
	IndexVariable string   `json:"index_variable"`
	Indexes       []Range  `json:"indexes"`
	Fields        []Branch `json:"fields"`
}

// Branch is one alternative layout of a conditional field entry. The
// condition is kept verbatim, branches are compared structurally instead of
// evaluating it.
type Branch struct {
	Condition json.RawMessage `json:"condition"`
	Field     FieldEntry      `json:"field"`
}

// Range is a run of width bits starting at bit start.
type Range struct {
	Start uint `json:"start"`
	Width uint `json:"width"`
}

// ParseRegisters parses the system register JSON listing.
func ParseRegisters(data []byte) ([]RegisterEntry, error) {
	var entries []RegisterEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshalling register listing: %w", err)
	}
	return entries, nil
}
