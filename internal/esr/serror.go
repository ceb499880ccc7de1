package esr

import "github.com/retroenv/aarch64dec/internal/field"

// decodeSerror decodes the syndrome of an SError interrupt. The IDS bit
// selects between an implementation defined syndrome and the architected
// layout, and the IESB bit only carries meaning for the fault code that
// reports an asynchronous SError interrupt.
func decodeSerror(iss uint64) ([]field.Field, error) {
	ids := field.NewBit(iss, "IDS", "Implementation Defined Syndrome", 24).DescribeBit(describeIds)

	if ids.Bit() {
		impdef := field.New(iss, "IMPDEF", "Implementation defined", 0, 24)
		return []field.Field{ids, impdef}, nil
	}

	dfsc, err := field.New(iss, "DFSC", "Data Fault Status Code", 0, 6).Describe(describeSerrorDfsc)
	if err != nil {
		return nil, err
	}
	res0a, err := field.New(iss, "RES0", "Reserved", 14, 24).CheckRes0()
	if err != nil {
		return nil, err
	}
	var iesb field.Field
	if dfsc.Value == 0b010001 {
		iesb = field.NewBit(iss, "IESB", "Implicit Error Synchronisation event", 13).
			DescribeBit(describeIesb)
	} else {
		iesb, err = field.NewBit(iss, "RES0", "Reserved for this DFSC value", 13).CheckRes0()
		if err != nil {
			return nil, err
		}
	}
	aet, err := field.New(iss, "AET", "Asynchronous Error Type", 10, 13).Describe(describeAet)
	if err != nil {
		return nil, err
	}
	ea := field.NewBit(iss, "EA", "External Abort type", 9)
	res0b, err := field.New(iss, "RES0", "Reserved", 6, 9).CheckRes0()
	if err != nil {
		return nil, err
	}

	return []field.Field{ids, res0a, iesb, aet, ea, res0b, dfsc}, nil
}

func describeIds(ids bool) string {
	if ids {
		return "The rest of the ISS is encoded in an implementation-defined format"
	}
	return "The rest of the ISS is encoded according to the platform"
}

func describeIesb(iesb bool) string {
	if iesb {
		return "The SError interrupt was synchronized by the implicit error synchronization " +
			"event and taken immediately."
	}
	return "The SError interrupt was not synchronized by the implicit error synchronization " +
		"event or not taken immediately."
}

func describeAet(aet uint64) (string, error) {
	switch aet {
	case 0b000:
		return "Uncontainable (UC)", nil
	case 0b001:
		return "Unrecoverable state (UEU)", nil
	case 0b010:
		return "Restartable state (UEO)", nil
	case 0b011:
		return "Recoverable state (UER)", nil
	case 0x110:
		return "Corrected (CE)", nil
	default:
		return "", field.InvalidAetError{AET: aet}
	}
}

func describeSerrorDfsc(dfsc uint64) (string, error) {
	switch dfsc {
	case 0b000000:
		return "Uncategorized error", nil
	case 0b010001:
		return "Asynchronous SError interrupt", nil
	default:
		return "", field.InvalidFscError{FSC: dfsc}
	}
}
