package smccc

import (
	"github.com/retroenv/aarch64dec/internal/field"
)

// decodeTappService resolves the function number of the trusted application
// service ranges, which define no calls of their own besides the general
// SMCCC queries.
func decodeTappService(smccc, convention uint64) field.Field {
	functionNumber := field.New(smccc, "Function Number", "", 0, 16)
	if convention == 0 {
		return functionNumber.WithDescription(general32Queries(functionNumber.Value))
	}
	return functionNumber.WithDescription(reservedFids(functionNumber.Value))
}
