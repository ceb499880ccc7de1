package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeLd64b decodes the syndrome of a trapped LD64B or ST64B* instruction.
// The whole syndrome names the trapped instruction instead of splitting into
// subfields.
func decodeLd64b(iss uint64) ([]field.Field, error) {
	instruction, err := field.New(iss, "ISS", "", 0, 25).Describe(describeLd64bIss)
	if err != nil {
		return nil, err
	}
	return []field.Field{instruction}, nil
}

func describeLd64bIss(iss uint64) (string, error) {
	switch iss {
	case 0b00:
		return "ST64BV trapped", nil
	case 0b01:
		return "ST64BV0 trapped", nil
	case 0b10:
		return "LD64B or ST64B trapped", nil
	default:
		return "", field.InvalidLd64bIssError{ISS: iss}
	}
}
