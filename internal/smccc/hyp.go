package smccc

import (
	"github.com/retroenv/aarch64dec/internal/field"
)

// decodeHypService resolves the function number of the standard hypervisor
// service range.
func decodeHypService(smccc, convention uint64) field.Field {
	functionNumber := field.New(smccc, "Function Number", "", 0, 16)
	if convention == 0 {
		return functionNumber.WithDescription(general32Queries(functionNumber.Value))
	}
	return functionNumber.WithDescription(describeHyp64Service(functionNumber.Value))
}

func describeHyp64Service(service uint64) string {
	if service >= 0x20 && service <= 0x3f {
		return "PV Time 64-bit calls"
	}
	return ""
}
