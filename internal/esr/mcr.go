package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeMcr decodes the syndrome of a trapped MCR or MRC access.
func decodeMcr(iss uint64) ([]field.Field, error) {
	cv := field.NewBit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCv)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 24)
	opc2 := field.New(iss, "Opc2", "", 17, 20)
	opc1 := field.New(iss, "Opc1", "", 14, 17)
	crn := field.New(iss, "CRn", "", 10, 14)
	rt := field.New(iss, "Rt", "", 5, 10)
	crm := field.New(iss, "CRm", "", 1, 5)
	direction := field.NewBit(iss, "Direction", "Direction of the trapped instruction", 0).
		DescribeBit(describeMcrDirection)

	return []field.Field{cv, cond, opc2, opc1, crn, rt, crm, direction}, nil
}

// decodeMcrr decodes the syndrome of a trapped MCRR or MRRC access.
func decodeMcrr(iss uint64) ([]field.Field, error) {
	cv := field.NewBit(iss, "CV", "Condition code valid", 24).DescribeBit(describeCv)
	cond := field.New(iss, "COND", "Condition code of the trapped instruction", 20, 24)
	opc1 := field.New(iss, "Opc2", "", 16, 20)
	res0, err := field.NewBit(iss, "RES0", "Reserved", 15).CheckRes0()
	if err != nil {
		return nil, err
	}
	rt2 := field.New(iss, "Rt2", "", 10, 15)
	rt := field.New(iss, "Rt", "", 5, 10)
	crm := field.New(iss, "CRm", "", 1, 5)
	direction := field.NewBit(iss, "Direction", "Direction of the trapped instruction", 0).
		DescribeBit(describeMcrDirection)

	return []field.Field{cv, cond, opc1, res0, rt2, rt, crm, direction}, nil
}

func describeMcrDirection(direction bool) string {
	if direction {
		return "Read from system register (MRC or VMRS)"
	}
	return "Write to system register (MCR)"
}
