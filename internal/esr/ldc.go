package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeLdc decodes the syndrome of a trapped LDC or STC instruction.
func decodeLdc(iss uint64) ([]field.Field, error) {
	cv := field.NewBit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCv)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 24)
	imm8 := field.New(iss, "imm8", "Immediate value of the trapped instruction", 12, 20)
	res0, err := field.New(iss, "RES0", "Reserved", 10, 12).CheckRes0()
	if err != nil {
		return nil, err
	}
	rn := field.New(iss, "Rn", "General-purpose register number of the trapped instruction", 5, 10)
	offset := field.NewBit(iss, "Offset", "Whether the offset is added or subtracted", 4).
		DescribeBit(describeOffset)
	am, err := field.New(iss, "AM", "Addressing Mode", 1, 4).Describe(describeAm)
	if err != nil {
		return nil, err
	}
	direction := field.NewBit(iss, "Direction", "Direction of the trapped instruction", 0).
		DescribeBit(describeLdcDirection)

	return []field.Field{cv, cond, imm8, res0, rn, offset, am, direction}, nil
}

func describeOffset(offset bool) string {
	if offset {
		return "Add offset"
	}
	return "Subtract offset"
}

func describeAm(am uint64) (string, error) {
	switch am {
	case 0b000:
		return "Immediate unindexed", nil
	case 0b001:
		return "Immediate post-indexed", nil
	case 0b010:
		return "Immediate offset", nil
	case 0b011:
		return "Immediate pre-indexed", nil
	case 0b100:
		return "Reserved for trapped STR or T32 LDC", nil
	case 0b110:
		return "Reserved for trapped STC", nil
	default:
		return "", field.InvalidAmError{AM: am}
	}
}

func describeLdcDirection(direction bool) string {
	if direction {
		return "Read from memory (LDC)"
	}
	return "Write to memory (STC)"
}
