package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeVectorCatch decodes the syndrome of a Breakpoint or Vector Catch
// debug exception.
func decodeVectorCatch(iss uint64) ([]field.Field, error) {
	res0, err := field.New(iss, "RES0", "Reserved", 6, 25).CheckRes0()
	if err != nil {
		return nil, err
	}
	ifsc, err := field.New(iss, "IFSC", "Instruction Fault Status Code", 0, 6).
		Describe(describeDebugFsc)
	if err != nil {
		return nil, err
	}

	return []field.Field{res0, ifsc}, nil
}

// decodeSoftwareStep decodes the syndrome of a Software Step exception.
// The EX bit only carries meaning when ISV is set, otherwise it is reserved.
func decodeSoftwareStep(iss uint64) ([]field.Field, error) {
	isv := field.NewBit(iss, "ISV", "Instruction Syndrome Valid", 24).DescribeBit(describeStepIsv)
	res0, err := field.New(iss, "RES0", "Reserved", 7, 24).CheckRes0()
	if err != nil {
		return nil, err
	}
	var ex field.Field
	if isv.Bit() {
		ex = field.NewBit(iss, "EX", "Exclusive operation", 6).DescribeBit(describeEx)
	} else {
		ex, err = field.NewBit(iss, "RES0", "Reserved because ISV is false", 6).CheckRes0()
		if err != nil {
			return nil, err
		}
	}
	ifsc, err := field.New(iss, "IFSC", "Instruction Fault Status Code", 0, 6).
		Describe(describeDebugFsc)
	if err != nil {
		return nil, err
	}

	return []field.Field{isv, res0, ex, ifsc}, nil
}

// decodeWatchpoint decodes the syndrome of a Watchpoint exception.
func decodeWatchpoint(iss uint64) ([]field.Field, error) {
	res0a, err := field.New(iss, "RES0", "Reserved", 15, 25).CheckRes0()
	if err != nil {
		return nil, err
	}
	res0b, err := field.NewBit(iss, "RES0", "Reserved", 14).CheckRes0()
	if err != nil {
		return nil, err
	}
	vncr := field.NewBit(iss, "VNCR", "", 13)
	res0c, err := field.New(iss, "RES0", "Reserved", 9, 13).CheckRes0()
	if err != nil {
		return nil, err
	}
	cm := field.NewBit(iss, "CM", "Cache Maintenance", 8)
	res0d, err := field.NewBit(iss, "RES0", "Reserved", 7).CheckRes0()
	if err != nil {
		return nil, err
	}
	wnr := field.NewBit(iss, "WnR", "Write not Read", 6).DescribeBit(describeWatchpointWnr)
	dfsc, err := field.New(iss, "DFSC", "Data Fault Status Code", 0, 6).Describe(describeDebugFsc)
	if err != nil {
		return nil, err
	}

	return []field.Field{res0a, res0b, vncr, res0c, cm, res0d, wnr, dfsc}, nil
}

// decodeBreakpoint decodes the syndrome of a BKPT or BRK instruction.
func decodeBreakpoint(iss uint64) ([]field.Field, error) {
	res0, err := field.New(iss, "RES0", "Reserved", 16, 25).CheckRes0()
	if err != nil {
		return nil, err
	}
	comment := field.New(iss, "Comment", "Instruction comment field or immediate field", 0, 16)

	return []field.Field{res0, comment}, nil
}

// describeDebugFsc names the fault status code of a debug exception, which
// only ever reports the debug exception code itself.
func describeDebugFsc(fsc uint64) (string, error) {
	if fsc == 0b100010 {
		return "Debug exception", nil
	}
	return "", field.InvalidFscError{FSC: fsc}
}

func describeStepIsv(isv bool) string {
	if isv {
		return "EX bit is valid"
	}
	return "EX bit is RES0"
}

func describeEx(ex bool) string {
	if ex {
		return "A Load-Exclusive instruction was stepped"
	}
	return "Some instruction other than a Load-Exclusive was stepped"
}

func describeWatchpointWnr(wnr bool) string {
	if wnr {
		return "Watchpoint caused by writing to memory"
	}
	return "Watchpoint caused by reading from memory"
}
