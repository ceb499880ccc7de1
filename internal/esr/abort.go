package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeInstructionAbort decodes the syndrome of an Instruction Abort.
func decodeInstructionAbort(iss uint64) ([]field.Field, error) {
	res0a, err := field.New(iss, "RES0", "Reserved", 13, 25).CheckRes0()
	if err != nil {
		return nil, err
	}
	fnv := field.NewBit(iss, "FnV", "FAR not Valid", 10).DescribeBit(describeFnv)
	ea := field.NewBit(iss, "EA", "External abort type", 9)
	res0b, err := field.NewBit(iss, "RES0", "Reserved", 8).CheckRes0()
	if err != nil {
		return nil, err
	}
	s1ptw := field.NewBit(iss, "S1PTW", "Stage-1 translation table walk", 7)
	res0c, err := field.NewBit(iss, "RES0", "Reserved", 6).CheckRes0()
	if err != nil {
		return nil, err
	}
	ifsc, err := field.New(iss, "IFSC", "Instruction Fault Status Code", 0, 6).Describe(describeFsc)
	if err != nil {
		return nil, err
	}
	set, err := errorTypeField(iss, ifsc.Value)
	if err != nil {
		return nil, err
	}

	return []field.Field{res0a, set, fnv, ea, res0b, s1ptw, res0c, ifsc}, nil
}

// decodeDataAbort decodes the syndrome of a Data Abort. The instruction
// syndrome bits [14:24] only carry meaning when ISV is set, otherwise they
// are reserved.
func decodeDataAbort(iss uint64) ([]field.Field, error) {
	isv := field.NewBit(iss, "ISV", "Instruction Syndrome Valid", 24).DescribeBit(describeIsv)

	var instructionSyndrome []field.Field
	if isv.Bit() {
		sas := field.New(iss, "SAS", "Syndrome Access Size", 22, 24)
		sas = sas.WithDescription(describeSas(sas.Value))
		sse := field.NewBit(iss, "SSE", "Syndrome Sign Extend", 21)
		srt := field.New(iss, "SRT", "Syndrome Register Transfer", 16, 21)
		sf := field.NewBit(iss, "SF", "Sixty-Four", 15).DescribeBit(describeSf)
		ar := field.NewBit(iss, "AR", "Acquire/Release", 14).DescribeBit(describeAr)
		instructionSyndrome = []field.Field{sas, sse, srt, sf, ar}
	} else {
		res0, err := field.New(iss, "RES0", "Reserved", 14, 24).CheckRes0()
		if err != nil {
			return nil, err
		}
		instructionSyndrome = []field.Field{res0}
	}

	vncr := field.NewBit(iss, "VNCR", "", 13)
	fnv := field.NewBit(iss, "FnV", "FAR not Valid", 10).DescribeBit(describeFnv)
	ea := field.NewBit(iss, "EA", "External abort type", 9)
	cm := field.NewBit(iss, "CM", "Cache Maintenance", 8)
	s1ptw := field.NewBit(iss, "S1PTW", "Stage-1 translation table walk", 7)
	wnr := field.NewBit(iss, "WnR", "Write not Read", 6).DescribeBit(describeWnr)
	dfsc, err := field.New(iss, "DFSC", "Data Fault Status Code", 0, 6).Describe(describeFsc)
	if err != nil {
		return nil, err
	}
	set, err := errorTypeField(iss, dfsc.Value)
	if err != nil {
		return nil, err
	}

	fields := []field.Field{isv}
	fields = append(fields, instructionSyndrome...)
	fields = append(fields, vncr, set, fnv, ea, cm, s1ptw, wnr, dfsc)
	return fields, nil
}

// errorTypeField returns the SET field for fault codes that report a
// synchronous external abort, or the same bits as reserved for all other
// fault codes.
func errorTypeField(iss, fsc uint64) (field.Field, error) {
	if fsc == 0b010000 {
		return field.New(iss, "SET", "Synchronous Error Type", 11, 13).Describe(describeSet)
	}
	return field.New(iss, "RES0", "Reserved", 11, 13), nil
}

func describeIsv(isv bool) string {
	if isv {
		return "Valid instruction syndrome"
	}
	return "No valid instruction syndrome"
}

func describeSas(sas uint64) string {
	switch sas {
	case 0b00:
		return "byte"
	case 0b01:
		return "halfword"
	case 0b10:
		return "word"
	default:
		return "doubleword"
	}
}

func describeSf(sf bool) string {
	if sf {
		return "64-bit wide register"
	}
	return "32-bit wide register"
}

func describeAr(ar bool) string {
	if ar {
		return "Acquire/release semantics"
	}
	return "No acquire/release semantics"
}

func describeFnv(fnv bool) string {
	if fnv {
		return "FAR is not valid, it holds an unknown value"
	}
	return "FAR is valid"
}

func describeWnr(wnr bool) string {
	if wnr {
		return "Abort caused by writing to memory"
	}
	return "Abort caused by reading from memory"
}

// describeFsc names the fault status code of an abort. Codes that the
// architecture leaves unassigned abort the decode.
func describeFsc(fsc uint64) (string, error) {
	switch fsc {
	case 0b000000:
		return "Address size fault, level 0 of translation or translation table base register.", nil
	case 0b000001:
		return "Address size fault, level 1.", nil
	case 0b000010:
		return "Address size fault, level 2.", nil
	case 0b000011:
		return "Address size fault, level 3.", nil
	case 0b000100:
		return "Translation fault, level 0.", nil
	case 0b000101:
		return "Translation fault, level 1.", nil
	case 0b000110:
		return "Translation fault, level 2.", nil
	case 0b000111:
		return "Translation fault, level 3.", nil
	case 0b001000:
		return "Access flag fault, level 0.", nil
	case 0b001001:
		return "Access flag fault, level 1.", nil
	case 0b001010:
		return "Access flag fault, level 2.", nil
	case 0b001011:
		return "Access flag fault, level 3.", nil
	case 0b001100:
		return "Permission fault, level 0.", nil
	case 0b001101:
		return "Permission fault, level 1.", nil
	case 0b001110:
		return "Permission fault, level 2.", nil
	case 0b001111:
		return "Permission fault, level 3.", nil
	case 0b010000:
		return "Synchronous External abort, not on translation table walk or hardware update of " +
			"translation table.", nil
	case 0b010001:
		return "Synchronous Tag Check Fault.", nil
	case 0b010011:
		return "Synchronous External abort on translation table walk or hardware update of " +
			"translation table, level -1.", nil
	case 0b010100:
		return "Synchronous External abort on translation table walk or hardware update of " +
			"translation table, level 0.", nil
	case 0b010101:
		return "Synchronous External abort on translation table walk or hardware update of " +
			"translation table, level 1.", nil
	case 0b010110:
		return "Synchronous External abort on translation table walk or hardware update of " +
			"translation table, level 2.", nil
	case 0b010111:
		return "Synchronous External abort on translation table walk or hardware update of " +
			"translation table, level 3.", nil
	case 0b011000:
		return "Synchronous parity or ECC error on memory access, not on translation table walk.", nil
	case 0b011011:
		return "Synchronous parity or ECC error on memory access on translation table walk or " +
			"hardware update of translation table, level -1.", nil
	case 0b011100:
		return "Synchronous parity or ECC error on memory access on translation table walk or " +
			"hardware update of translation table, level 0.", nil
	case 0b011101:
		return "Synchronous parity or ECC error on memory access on translation table walk or " +
			"hardware update of translation table, level 1.", nil
	case 0b011110:
		return "Synchronous parity or ECC error on memory access on translation table walk or " +
			"hardware update of translation table, level 2.", nil
	case 0b011111:
		return "Synchronous parity or ECC error on memory access on translation table walk or " +
			"hardware update of translation table, level 3.", nil
	case 0b100001:
		return "Alignment fault.", nil
	case 0b101001:
		return "Address size fault, level -1.", nil
	case 0b101011:
		return "Translation fault, level -1.", nil
	case 0b110000:
		return "TLB conflict abort.", nil
	case 0b110001:
		return "Unsupported atomic hardware update fault.", nil
	case 0b110100:
		return "IMPLEMENTATION DEFINED fault (Lockdown).", nil
	case 0b110101:
		return "IMPLEMENTATION DEFINED fault (Unsupported Exclusive or Atomic access).", nil
	default:
		return "", field.InvalidFscError{FSC: fsc}
	}
}

func describeSet(set uint64) (string, error) {
	switch set {
	case 0b00:
		return "Recoverable state (UER)", nil
	case 0b10:
		return "Uncontainable (UC)", nil
	case 0b11:
		return "Restartable state (UEO)", nil
	default:
		return "", field.InvalidSetError{SET: set}
	}
}
