package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeWf decodes the syndrome of a trapped WF* instruction.
func decodeWf(iss uint64) ([]field.Field, error) {
	cv := field.NewBit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCv)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 24)
	res0a, err := field.New(iss, "RES0", "Reserved", 10, 20).CheckRes0()
	if err != nil {
		return nil, err
	}
	rn := field.New(iss, "RN", "Register Number", 5, 10)
	res0b, err := field.New(iss, "RES0", "Reserved", 3, 5).CheckRes0()
	if err != nil {
		return nil, err
	}
	rv := field.NewBit(iss, "RV", "Register Valid", 2).DescribeBit(describeRv)
	ti := field.New(iss, "TI", "Trapped Instruction", 0, 2)
	ti = ti.WithDescription(describeTi(ti.Value))

	return []field.Field{cv, cond, res0a, rn, res0b, rv, ti}, nil
}

func describeRv(rv bool) string {
	if rv {
		return "RN is valid"
	}
	return "RN is not valid"
}

func describeTi(ti uint64) string {
	switch ti {
	case 0b00:
		return "WFI trapped"
	case 0b01:
		return "WFE trapped"
	case 0b10:
		return "WFIT trapped"
	default:
		return "WFET trapped"
	}
}
