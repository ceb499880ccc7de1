package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeFp decodes the syndrome of a trapped floating-point exception.
func decodeFp(iss uint64) ([]field.Field, error) {
	res0a, err := field.NewBit(iss, "RES0", "Reserved", 24).CheckRes0()
	if err != nil {
		return nil, err
	}
	tfv := field.NewBit(iss, "TFV", "Trapped Fault Valid", 23).DescribeBit(describeTfv)
	res0b, err := field.New(iss, "RES0", "Reserved", 11, 23).CheckRes0()
	if err != nil {
		return nil, err
	}
	vecitr := field.New(iss, "VECITR", "RES1 or UNKNOWN", 8, 11)
	idf := field.NewBit(iss, "IDF", "Input Denormal", 7).DescribeBit(describeIdf)
	res0c, err := field.New(iss, "RES0", "Reserved", 5, 7).CheckRes0()
	if err != nil {
		return nil, err
	}
	ixf := field.NewBit(iss, "IXF", "Inexact", 4).DescribeBit(describeIxf)
	uff := field.NewBit(iss, "UFF", "Underflow", 3).DescribeBit(describeUff)
	off := field.NewBit(iss, "OFF", "Overflow", 2).DescribeBit(describeOff)
	dzf := field.NewBit(iss, "DZF", "Divide by Zero", 1).DescribeBit(describeDzf)
	iof := field.NewBit(iss, "IOF", "Invalid Operation", 0).DescribeBit(describeIof)

	return []field.Field{res0a, tfv, res0b, vecitr, idf, res0c, ixf, uff, off, dzf, iof}, nil
}

func describeTfv(tfv bool) string {
	if tfv {
		return "One or more floating-point exceptions occurred; IDF, IXF, UFF, OFF, DZF and " +
			"IOF hold information about what."
	}
	return "IDF, IXF, UFF, OFF, DZF and IOF do not hold valid information."
}

func describeIdf(idf bool) string {
	if idf {
		return "Input denormal floating-point exception occurred."
	}
	return "Input denormal floating-point exception did not occur."
}

func describeIxf(ixf bool) string {
	if ixf {
		return "Inexact floating-point exception occurred."
	}
	return "Inexact floating-point exception did not occur."
}

func describeUff(uff bool) string {
	if uff {
		return "Underflow floating-point exception occurred."
	}
	return "Underflow floating-point exception did not occur."
}

func describeOff(off bool) string {
	if off {
		return "Overflow floating-point exception occurred."
	}
	return "Overflow floating-point exception did not occur."
}

func describeDzf(dzf bool) string {
	if dzf {
		return "Divide by Zero floating-point exception occurred."
	}
	return "Divide by Zero floating-point exception did not occur."
}

func describeIof(iof bool) string {
	if iof {
		return "Invalid Operation floating-point exception occurred."
	}
	return "Invalid Operation floating-point exception did not occur."
}
