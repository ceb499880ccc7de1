// Package midr decodes Main ID Register values of the AArch64 architecture
// into annotated bit fields.
//
// The register layout follows the Arm Architecture Reference Manual for
// A-profile, section D17.2.100 (MIDR_EL1). The register identifies the
// implementer, part number and revision of the processing element.
package midr

import (
	"github.com/retroenv/aarch64dec/internal/field"
)

// Decode decodes the given Main ID Register value into its ordered fields.
// Values with nonzero reserved bits are rejected with a typed error.
func Decode(midr uint64) ([]field.Field, error) {
	res0, err := field.New(midr, "RES0", "Reserved", 32, 64).CheckRes0()
	if err != nil {
		return nil, err
	}
	implementer := field.New(midr, "Implementer", "", 24, 32)
	implementer = implementer.WithDescription(describeImplementer(implementer.Value))
	variant := field.New(midr, "Variant", "", 20, 24)
	architecture := field.New(midr, "Architecture", "", 16, 20)
	architecture = architecture.WithDescription(describeArchitecture(architecture.Value))
	partNum := field.New(midr, "PartNum", "Part number", 4, 16)
	revision := field.New(midr, "Revision", "", 0, 4)

	return []field.Field{res0, implementer, variant, architecture, partNum, revision}, nil
}

func describeImplementer(implementer uint64) string {
	switch implementer {
	case 0x00:
		return "Reserved for software use"
	case 0xc0:
		return "Ampere Computing"
	case 0x41:
		return "Arm Limited"
	case 0x42:
		return "Broadcom Corporation"
	case 0x43:
		return "Cavium Inc."
	case 0x44:
		return "Digital Equipment Corporation"
	case 0x46:
		return "Fujitsu Ltd."
	case 0x49:
		return "Infineon Technologies AG"
	case 0x4d:
		return "Motorola or Freescale Semiconductor Inc."
	case 0x4e:
		return "NVIDIA Corporation"
	case 0x50:
		return "Applied Micro Circuits Corporation"
	case 0x51:
		return "Qualcomm Inc."
	case 0x56:
		return "Marvell International Ltd."
	case 0x69:
		return "Intel Corporation"
	default:
		return "Unknown"
	}
}

func describeArchitecture(architecture uint64) string {
	switch architecture {
	case 0b0001:
		return "Armv4"
	case 0b0010:
		return "Armv4T"
	case 0b0011:
		return "Armv5"
	case 0b0100:
		return "Armv5T"
	case 0b0101:
		return "Armv5TE"
	case 0b0110:
		return "Armv5TEJ"
	case 0b0111:
		return "Armv6"
	case 0b1111:
		return "Architectural features are individually identified"
	default:
		return "Reserved"
	}
}
