package smccc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/aarch64dec/internal/field"
	"github.com/retroenv/retrogolib/assert"
)

// assertFields compares a decoded field tree against the expected one.
func assertFields(t *testing.T, expected, decoded []field.Field) {
	t.Helper()

	if diff := cmp.Diff(expected, decoded); diff != "" {
		t.Errorf("decoded fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFastCall(t *testing.T) {
	t.Parallel()

	// PSCI_VERSION: fast SMC32 call into the standard secure service range.
	decoded, err := Decode(0x84000000)
	assert.NoError(t, err)

	expected := []field.Field{
		{
			Name: "Call Type", Start: 31, Width: 1, Value: 1,
			Description: "Fast Call",
		},
		{
			Name: "Call Convention", Start: 30, Width: 1,
			Description: "SMC32/HVC32",
		},
		{
			Name: "Service Call", Start: 24, Width: 6, Value: 4,
			Description: "Standard Secure Service Call",
		},
		{Name: "MBZ", LongName: "Some legacy Armv7 set this to 1", Start: 17, Width: 7},
		{
			Name:     "SVE live state",
			LongName: "No live state[1] From SMCCCv1.3, before SMCCCv1.3 MBZ",
			Start:    16, Width: 1,
		},
		{
			Name: "Function Number", Start: 0, Width: 16,
			Description: "PSCI Call (Power Secure Control Interface)",
		},
	}
	assertFields(t, expected, decoded)
}

func TestDecodeFastCallHintBits(t *testing.T) {
	t.Parallel()

	decoded, err := Decode(0x80ff0000)
	assert.NoError(t, err)
	assert.Len(t, decoded, 6)

	assert.Equal(t, "MBZ", decoded[3].Name)
	assert.Equal(t, uint64(0x7f), decoded[3].Value)
	assert.Equal(t, "SVE live state", decoded[4].Name)
	assert.Equal(t, uint64(1), decoded[4].Value)
	assert.Equal(t, "SMCCC_VERSION", decoded[5].Description)
}

func TestDecodeYieldingCall(t *testing.T) {
	t.Parallel()

	decoded, err := Decode(0x02000000)
	assert.NoError(t, err)

	expected := []field.Field{
		{
			Name: "Call Type", Start: 31, Width: 1,
			Description: "Yielding Call",
		},
		{
			Name: "Service Type", Start: 0, Width: 31, Value: 0x02000000,
			Description: "Trusted OS Yielding Calls",
		},
	}
	assertFields(t, expected, decoded)
}

func TestDecodeYieldingRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name     string
		Value    uint64
		Expected string
	}{
		{
			Name:     "legacy range",
			Value:    0x00000001,
			Expected: "Reserved for existing APIs (in use by the existing Armv7 devices)",
		},
		{
			Name:     "future expansion range",
			Value:    0x20000000,
			Expected: "Reserved for future expansion of Trusted OS Yielding Calls",
		},
		{
			Name:     "unassigned gap",
			Value:    0x01800000,
			Expected: "Unknown",
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			decoded, err := Decode(test.Value)
			assert.NoError(t, err)
			assert.Len(t, decoded, 2)
			assert.Equal(t, "Service Type", decoded[1].Name)
			assert.Equal(t, test.Expected, decoded[1].Description)
		})
	}
}

func TestDecodeFunctionNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name     string
		Value    uint64
		Expected string
	}{
		{
			Name:     "smccc version query",
			Value:    0x80000000,
			Expected: "SMCCC_VERSION",
		},
		{
			Name:     "arch workaround",
			Value:    0x80008000,
			Expected: "SMCCC_ARCH_WORKAROUND_1",
		},
		{
			Name:     "ffa version",
			Value:    0x84000063,
			Expected: "FFA_VERSION_32",
		},
		{
			Name:     "ffa rxtx map with 64 bit arguments",
			Value:    0xc4000066,
			Expected: "FFA_RXTX_MAP_64",
		},
		{
			Name:     "psci cpu suspend",
			Value:    0xc4000001,
			Expected: "PSCI Call (Power Secure Control Interface)",
		},
		{
			Name:     "trng",
			Value:    0x84000050,
			Expected: "TRNG Call",
		},
		{
			Name:     "pv time features",
			Value:    0xc5000020,
			Expected: "PV Time 64-bit calls",
		},
		{
			Name:     "sip call count query",
			Value:    0x8200ff00,
			Expected: "Call Count Query, deprecated from SMCCCv1.2",
		},
		{
			Name:     "trusted application uuid query",
			Value:    0xb000ff01,
			Expected: "Call UUID Query",
		},
		{
			Name:     "oem unassigned function",
			Value:    0x83001234,
			Expected: "",
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			decoded, err := Decode(test.Value)
			assert.NoError(t, err)
			assert.Len(t, decoded, 6)
			assert.Equal(t, "Function Number", decoded[5].Name)
			assert.Equal(t, test.Expected, decoded[5].Description)
		})
	}
}
