package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeBti decodes the syndrome of a Branch Target Exception.
func decodeBti(iss uint64) ([]field.Field, error) {
	res0, err := field.New(iss, "RES0", "Reserved", 2, 25).CheckRes0()
	if err != nil {
		return nil, err
	}
	btype := field.New(iss, "BTYPE", "PSTATE.BTYPE value", 0, 2)

	return []field.Field{res0, btype}, nil
}
