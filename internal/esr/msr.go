package esr

import (
	"fmt"

	"github.com/retroenv/aarch64dec/internal/field"
)

// decodeMsr decodes the syndrome of a trapped MSR, MRS or System instruction.
// The five opcode subfields identify the accessed system register, which gives
// the syndrome as a whole a disassembly like description.
func decodeMsr(iss uint64) ([]field.Field, string, error) {
	res0, err := field.New(iss, "RES0", "Reserved", 22, 25).CheckRes0()
	if err != nil {
		return nil, "", err
	}
	op0 := field.New(iss, "Op0", "", 20, 22)
	op2 := field.New(iss, "Op2", "", 17, 20)
	op1 := field.New(iss, "Op1", "", 14, 17)
	crn := field.New(iss, "CRn", "", 10, 14)
	rt := field.New(iss, "Rt", "", 5, 10)
	crm := field.New(iss, "CRm", "", 1, 5)
	direction := field.NewBit(iss, "Direction", "Direction of the trapped instruction", 0).
		DescribeBit(describeMsrDirection)

	name := systemRegisterName(op0.Value, op1.Value, crn.Value, crm.Value, op2.Value)
	var description string
	if direction.Bit() {
		description = fmt.Sprintf("MRS x%d, %s", rt.Value, name)
	} else {
		description = fmt.Sprintf("MSR %s, x%d", name, rt.Value)
	}

	return []field.Field{res0, op0, op2, op1, crn, rt, crm, direction}, description, nil
}

// systemRegisterName returns the name of the encoded system register, or
// "unknown" for encodings without a named register.
func systemRegisterName(op0, op1, crn, crm, op2 uint64) string {
	name, ok := systemRegisterNames[op0<<14|op1<<11|crn<<7|crm<<3|op2]
	if !ok {
		return "unknown"
	}
	return name
}

func describeMsrDirection(direction bool) string {
	if direction {
		return "Read from system register (MRS)"
	}
	return "Write to system register (MSR)"
}
