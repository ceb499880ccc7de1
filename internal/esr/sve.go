package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeSve decodes the syndrome of a trapped SVE, Advanced SIMD or FP
// instruction.
func decodeSve(iss uint64) ([]field.Field, error) {
	cv := field.NewBit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCv)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 24)
	res0, err := field.New(iss, "RES0", "Reserved", 0, 20).CheckRes0()
	if err != nil {
		return nil, err
	}

	return []field.Field{cv, cond, res0}, nil
}
