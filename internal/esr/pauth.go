package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodePauth decodes the syndrome of a Pointer Authentication failure.
func decodePauth(iss uint64) ([]field.Field, error) {
	res0, err := field.New(iss, "RES0", "Reserved", 2, 25).CheckRes0()
	if err != nil {
		return nil, err
	}
	instructionOrData := field.NewBit(iss, "IorD", "Instruction key or Data key", 1).
		DescribeBit(describeInstructionOrData)
	aOrB := field.NewBit(iss, "AorB", "A key or B key", 0).DescribeBit(describeAOrB)

	return []field.Field{res0, instructionOrData, aOrB}, nil
}

func describeInstructionOrData(instructionOrData bool) string {
	if instructionOrData {
		return "Data Key"
	}
	return "Instruction Key"
}

func describeAOrB(aOrB bool) string {
	if aOrB {
		return "B Key"
	}
	return "A Key"
}
