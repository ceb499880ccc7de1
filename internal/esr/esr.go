// Package esr decodes Exception Syndrome Register values of the AArch64
// architecture into annotated bit field trees.
//
// The register layout follows the Arm Architecture Reference Manual for
// A-profile, sections D17.2.37 (ESR_EL1), D17.2.38 (ESR_EL2) and
// D17.2.39 (ESR_EL3). The exception class selects the layout of the
// instruction specific syndrome, which in turn can gate the meaning of its
// own subfields on other bits of the value.
package esr

import (
	"github.com/retroenv/aarch64dec/internal/field"
)

// Decode decodes the given Exception Syndrome Register value into its ordered
// top level fields. Values with nonzero reserved bits, an unassigned exception
// class or an invalid syndrome encoding are rejected with a typed error.
func Decode(esr uint64) ([]field.Field, error) {
	res0, err := field.New(esr, "RES0", "Reserved", 37, 64).CheckRes0()
	if err != nil {
		return nil, err
	}
	iss2 := field.New(esr, "ISS2", "", 32, 37)
	ec := field.New(esr, "EC", "Exception Class", 26, 32)
	il := field.NewBit(esr, "IL", "Instruction Length", 25).DescribeBit(describeIl)
	iss := field.New(esr, "ISS", "Instruction Specific Syndrome", 0, 25)

	class, subfields, description, err := decodeClass(ec.Value, iss.Value)
	if err != nil {
		return nil, err
	}
	iss.Subfields = subfields
	iss.Description = description
	ec = ec.WithDescription(class)

	return []field.Field{res0, iss2, ec, il, iss}, nil
}

// decodeClass dispatches on the exception class to the syndrome decoder of the
// matching instruction specific syndrome layout. It returns the name of the
// exception class, the decoded syndrome subfields and an optional description
// of the syndrome as a whole.
func decodeClass(ec, iss uint64) (string, []field.Field, string, error) {
	var (
		class       string
		subfields   []field.Field
		description string
		err         error
	)

	switch ec {
	case 0b000000:
		class = "Unknown reason"
		subfields, err = decodeRes0(iss)
	case 0b000001:
		class = "Wrapped WF* instruction execution"
		subfields, err = decodeWf(iss)
	case 0b000011:
		class = "Trapped MCR or MRC access with coproc=0b1111"
		subfields, err = decodeMcr(iss)
	case 0b000100:
		class = "Trapped MCRR or MRRC access with coproc=0b1111"
		subfields, err = decodeMcrr(iss)
	case 0b000101:
		class = "Trapped MCR or MRC access with coproc=0b1110"
		subfields, err = decodeMcr(iss)
	case 0b000110:
		class = "Trapped LDC or STC access"
		subfields, err = decodeLdc(iss)
	case 0b000111:
		class = "Trapped access to SVE, Advanced SIMD or floating point"
		subfields, err = decodeSve(iss)
	case 0b001010:
		class = "Trapped execution of an LD64B, ST64B, ST64BV, or ST64BV0 instruction"
		subfields, err = decodeLd64b(iss)
	case 0b001100:
		class = "Trapped MRRC access with (coproc==0b1110)"
		subfields, err = decodeMcrr(iss)
	case 0b001101:
		class = "Branch Target Exception"
		subfields, err = decodeBti(iss)
	case 0b001110:
		class = "Illegal Execution state"
		subfields, err = decodeRes0(iss)
	case 0b010001:
		class = "SVC instruction execution in AArch32 state"
		subfields, err = decodeHvc(iss)
	case 0b010101:
		class = "SVC instruction execution in AArch64 state"
		subfields, err = decodeHvc(iss)
	case 0b010110:
		class = "HVC instruction execution in AArch64 state"
		subfields, err = decodeHvc(iss)
	case 0b010111:
		class = "SMC instruction execution in AArch64 state"
		subfields, err = decodeHvc(iss)
	case 0b011000:
		class = "Trapped MSR, MRS or System instruction execution in AArch64 state"
		subfields, description, err = decodeMsr(iss)
	case 0b011001:
		class = "Access to SVE functionality trapped as a result of CPACR_EL1.ZEN, " +
			"CPTR_EL2.ZEN, CPTR_EL2.TZ, or CPTR_EL3.EZ"
		subfields, err = decodeRes0(iss)
	case 0b011100:
		class = "Exception from a Pointer Authentication instruction authentication failure"
		subfields, err = decodePauth(iss)
	case 0b100000:
		class = "Instruction Abort from a lower Exception level"
		subfields, err = decodeInstructionAbort(iss)
	case 0b100001:
		class = "Instruction Abort taken without a change in Exception level"
		subfields, err = decodeInstructionAbort(iss)
	case 0b100010:
		class = "PC alignment fault exception"
		subfields, err = decodeRes0(iss)
	case 0b100100:
		class = "Data Abort from a lower Exception level"
		subfields, err = decodeDataAbort(iss)
	case 0b100101:
		class = "Data Abort taken without a change in Exception level"
		subfields, err = decodeDataAbort(iss)
	case 0b100110:
		class = "SP alignment fault exception"
		subfields, err = decodeRes0(iss)
	case 0b101000:
		class = "Trapped floating-point exception taken from AArch32 state"
		subfields, err = decodeFp(iss)
	case 0b101100:
		class = "Trapped floating-point exception taken from AArch64 state"
		subfields, err = decodeFp(iss)
	case 0b101111:
		class = "SError interrupt"
		subfields, err = decodeSerror(iss)
	case 0b110000:
		class = "Breakpoint exception from a lower Exception level"
		subfields, err = decodeVectorCatch(iss)
	case 0b110001:
		class = "Breakpoint exception taken without a change in Exception level"
		subfields, err = decodeVectorCatch(iss)
	case 0b110010:
		class = "Software Step exception from a lower Exception level"
		subfields, err = decodeSoftwareStep(iss)
	case 0b110011:
		class = "Software Step exception taken without a change in Exception level"
		subfields, err = decodeSoftwareStep(iss)
	case 0b110100:
		class = "Watchpoint exception from a lower Exception level"
		subfields, err = decodeWatchpoint(iss)
	case 0b110101:
		class = "Watchpoint exception taken without a change in Exception level"
		subfields, err = decodeWatchpoint(iss)
	case 0b111000:
		class = "BKPT instruction execution in AArch32 state"
		subfields, err = decodeBreakpoint(iss)
	case 0b111100:
		class = "BRK instruction execution in AArch64 state"
		subfields, err = decodeBreakpoint(iss)
	default:
		return "", nil, "", field.InvalidEcError{EC: ec}
	}

	if err != nil {
		return "", nil, "", err
	}
	return class, subfields, description, nil
}

// decodeRes0 decodes a syndrome layout that consists entirely of reserved bits.
func decodeRes0(iss uint64) ([]field.Field, error) {
	res0, err := field.New(iss, "RES0", "Reserved", 0, 25).CheckRes0()
	if err != nil {
		return nil, err
	}
	res0 = res0.WithDescription("ISS is RES0")
	return []field.Field{res0}, nil
}

func describeIl(il bool) string {
	if il {
		return "32-bit instruction trapped"
	}
	return "16-bit instruction trapped"
}
