// Package smccc decodes function identifiers of the Arm SMC Calling
// Convention, Arm DEN 0028E v1.4, into annotated bit field trees.
//
// Bit 31 selects between fast calls and yielding calls. Fast calls carry a
// calling convention bit and a service owner range that selects the table
// used to resolve the 16 bit function number.
package smccc

import (
	"github.com/retroenv/aarch64dec/internal/field"
)

// Decode decodes the given SMCCC function identifier into its ordered
// fields. Every value has a valid decoding, function numbers of unassigned
// ranges are reported without a description.
func Decode(smccc uint64) ([]field.Field, error) {
	callType := field.New(smccc, "Call Type", "", 31, 32)
	callType = callType.WithDescription(describeCall(callType.Value))

	var fields []field.Field
	if callType.Value == 1 {
		fields = decodeFastCall(smccc)
	} else {
		fields = decodeYieldingCall(smccc)
	}

	return append([]field.Field{callType}, fields...), nil
}

// decodeFastCall decodes the fields of a fast call, dispatching the function
// number resolution on the service owner range.
func decodeFastCall(smccc uint64) []field.Field {
	callConvention := field.New(smccc, "Call Convention", "", 30, 31)
	callConvention = callConvention.WithDescription(describeConvention(callConvention.Value))
	serviceCall := field.New(smccc, "Service Call", "", 24, 30)
	serviceCall = serviceCall.WithDescription(describeService(serviceCall.Value))
	mbz := field.New(smccc, "MBZ", "Some legacy Armv7 set this to 1", 17, 24)
	sve := field.New(smccc, "SVE live state",
		"No live state[1] From SMCCCv1.3, before SMCCCv1.3 MBZ", 16, 17)

	var functionNumber field.Field
	switch serviceCall.Value {
	case 0x00:
		functionNumber = decodeArmService(smccc, callConvention.Value)
	case 0x04:
		functionNumber = decodeSecureService(smccc, callConvention.Value)
	case 0x05:
		functionNumber = decodeHypService(smccc, callConvention.Value)
	case 0x30, 0x31:
		functionNumber = decodeTappService(smccc, callConvention.Value)
	default:
		functionNumber = decodeCommonService(smccc, callConvention.Value)
	}

	return []field.Field{callConvention, serviceCall, mbz, sve, functionNumber}
}

// decodeYieldingCall decodes a yielding call, which carries no structured
// fields besides the owning service type range.
func decodeYieldingCall(smccc uint64) []field.Field {
	serviceType := field.New(smccc, "Service Type", "", 0, 31)
	serviceType = serviceType.WithDescription(describeYieldService(serviceType.Value))
	return []field.Field{serviceType}
}

func describeYieldService(service uint64) string {
	switch {
	case service <= 0x0100ffff:
		return "Reserved for existing APIs (in use by the existing Armv7 devices)"
	case service >= 0x02000000 && service <= 0x1fffffff:
		return "Trusted OS Yielding Calls"
	case service >= 0x20000000:
		return "Reserved for future expansion of Trusted OS Yielding Calls"
	default:
		return "Unknown"
	}
}

func describeCall(call uint64) string {
	switch call {
	case 0x00:
		return "Yielding Call"
	case 0x01:
		return "Fast Call"
	default:
		return "Unknown"
	}
}

func describeConvention(convention uint64) string {
	switch convention {
	case 0x00:
		return "SMC32/HVC32"
	case 0x01:
		return "SMC64/HVC64"
	default:
		return "Unknown"
	}
}

func describeService(service uint64) string {
	switch {
	case service == 0x00:
		return "Arm Architecture Call"
	case service == 0x01:
		return "CPU Service Call"
	case service == 0x02:
		return "SiP Service Call"
	case service == 0x03:
		return "OEM Service Call"
	case service == 0x04:
		return "Standard Secure Service Call"
	case service == 0x05:
		return "Standard Hypervisor Service Call"
	case service == 0x06:
		return "Vendor Specific Hypervisor Service Call"
	case service >= 0x07 && service <= 0x2f:
		return "Reserved for future use"
	case service == 0x30 || service == 0x31:
		return "Trusted Application Call"
	case service >= 0x32 && service <= 0x3f:
		return "Trusted OS Call"
	default:
		return "Unknown"
	}
}
