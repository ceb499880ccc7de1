package smccc

import (
	"github.com/retroenv/aarch64dec/internal/field"
)

// decodeCommonService resolves the function number of the service ranges
// that define no calls of their own besides the general SMCCC queries.
func decodeCommonService(smccc, convention uint64) field.Field {
	functionNumber := field.New(smccc, "Function Number", "", 0, 16)
	if convention == 0 {
		return functionNumber.WithDescription(general32Queries(functionNumber.Value))
	}
	return functionNumber.WithDescription(reservedFids(functionNumber.Value))
}

// reservedFids marks the function number range that every service owner
// reserves for future expansion.
func reservedFids(function uint64) string {
	if function >= 0xff00 && function <= 0xffff {
		return "Reserved for future expansion"
	}
	return ""
}

// general32Queries resolves the general SMCCC queries that are only defined
// for the SMC32 calling convention.
func general32Queries(function uint64) string {
	switch function {
	case 0xff00:
		return "Call Count Query, deprecated from SMCCCv1.2"
	case 0xff01:
		return "Call UUID Query"
	case 0xff03:
		return "Revision Query"
	default:
		return reservedFids(function)
	}
}
