package smccc

import (
	"github.com/retroenv/aarch64dec/internal/field"
)

// decodeSecureService resolves the function number of the standard secure
// service range. Firmware Framework for Arm function identifiers take
// precedence over the range assignments.
func decodeSecureService(smccc, convention uint64) field.Field {
	functionNumber := field.New(smccc, "Function Number", "", 0, 16)
	if convention == 0 {
		return functionNumber.WithDescription(describeSecure32Service(functionNumber.Value))
	}
	return functionNumber.WithDescription(describeSecure64Service(functionNumber.Value))
}

func secureService(service uint64) string {
	switch {
	case service <= 0x01f:
		return "PSCI Call (Power Secure Control Interface)"
	case service >= 0x020 && service <= 0x03f:
		return "SDEI Call (Software Delegated Exception Interface)"
	case service >= 0x040 && service <= 0x04f:
		return "MM Call (Management Mode)"
	case service >= 0x050 && service <= 0x05f:
		return "TRNG Call"
	case service >= 0x060 && service <= 0x0ef:
		return "Unknown FF-A Call"
	case service >= 0x0f0 && service <= 0x10f:
		return "Errata Call"
	case service >= 0x150 && service <= 0x1cf:
		return "CCA Call"
	default:
		return ""
	}
}

func describeSecure32Service(service uint64) string {
	if ffaCall, ok := ffa32FunctionID(service); ok {
		return ffaCall
	}
	if service <= 0x1cf {
		return secureService(service)
	}
	return general32Queries(service)
}

func describeSecure64Service(service uint64) string {
	if ffaCall, ok := ffa64FunctionID(service); ok {
		return ffaCall
	}
	return secureService(service)
}
