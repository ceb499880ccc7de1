package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeHvc decodes the syndrome of an SVC, HVC or SMC instruction.
func decodeHvc(iss uint64) ([]field.Field, error) {
	res0, err := field.New(iss, "RES0", "Reserved", 16, 25).CheckRes0()
	if err != nil {
		return nil, err
	}
	imm16 := field.New(iss, "imm16", "Value of the immediate field", 0, 16)

	return []field.Field{res0, imm16}, nil
}
