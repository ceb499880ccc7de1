package smccc

import (
	"github.com/retroenv/aarch64dec/internal/field"
)

// decodeArmService resolves the function number of the Arm architecture
// service range.
func decodeArmService(smccc, convention uint64) field.Field {
	functionNumber := field.New(smccc, "Function Number", "", 0, 16)
	if convention == 0 {
		return functionNumber.WithDescription(describeArm32Service(functionNumber.Value))
	}
	return functionNumber.WithDescription(reservedFids(functionNumber.Value))
}

func describeArm32Service(service uint64) string {
	switch service {
	case 0x0000:
		return "SMCCC_VERSION"
	case 0x0001:
		return "SMCCC_ARCH_FEATURES"
	case 0x0002:
		return "SMCCC_ARCH_SOC_ID"
	case 0x3fff:
		return "SMCCC_ARCH_WORKAROUND_3"
	case 0x7fff:
		return "SMCCC_ARCH_WORKAROUND_2"
	case 0x8000:
		return "SMCCC_ARCH_WORKAROUND_1"
	case 0xff00:
		return "Call Count Query, deprecated from SMCCCv1.2"
	case 0xff01:
		return "Call UUID Query, deprecated from SMCCCv1.2"
	case 0xff03:
		return "Revision Query, deprecated from SMCCCv1.2"
	default:
		return reservedFids(service)
	}
}
