package field

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name     string
		Value    uint64
		Start    uint
		End      uint
		Expected uint64
	}{
		{Name: "low bits", Value: 0x96000045, Start: 0, End: 6, Expected: 0x05},
		{Name: "middle bits", Value: 0x96000045, Start: 26, End: 32, Expected: 0x25},
		{Name: "single bit set", Value: 0x96000045, Start: 25, End: 26, Expected: 1},
		{Name: "single bit clear", Value: 0x96000045, Start: 24, End: 25, Expected: 0},
		{Name: "full width", Value: 0x8000000000000001, Start: 0, End: 64, Expected: 0x8000000000000001},
		{Name: "top bits", Value: 0x8000000000000001, Start: 32, End: 64, Expected: 0x80000000},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.Expected, Extract(test.Value, test.Start, test.End))
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	f := New(0x96000045, "EC", "Exception Class", 26, 32)

	assert.Equal(t, "EC", f.Name)
	assert.Equal(t, "Exception Class", f.LongName)
	assert.Equal(t, uint(26), f.Start)
	assert.Equal(t, uint(6), f.Width)
	assert.Equal(t, uint64(0x25), f.Value)
	assert.Equal(t, "", f.Description)
	assert.Len(t, f.Subfields, 0)
}

func TestNewBit(t *testing.T) {
	t.Parallel()

	f := NewBit(0x96000045, "IL", "Instruction Length", 25)

	assert.Equal(t, uint(25), f.Start)
	assert.Equal(t, uint(1), f.Width)
	assert.Equal(t, uint64(1), f.Value)
	assert.True(t, f.Bit())
}

func TestBitPanicsOnWideField(t *testing.T) {
	t.Parallel()

	f := New(0, "EC", "", 26, 32)

	defer func() {
		assert.NotNil(t, recover())
	}()
	f.Bit()
}

func TestWithDescriptionCopies(t *testing.T) {
	t.Parallel()

	f := NewBit(1, "WnR", "Write not Read", 0)
	described := f.DescribeBit(func(bit bool) string {
		if bit {
			return "Abort caused by writing to memory"
		}
		return "Abort caused by reading from memory"
	})

	assert.Equal(t, "Abort caused by writing to memory", described.Description)
	assert.Equal(t, "", f.Description)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	f := New(0x05, "DFSC", "Data Fault Status Code", 0, 6)

	described, err := f.Describe(func(value uint64) (string, error) {
		assert.Equal(t, uint64(0x05), value)
		return "Translation fault, level 1.", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "Translation fault, level 1.", described.Description)

	_, err = f.Describe(func(value uint64) (string, error) {
		return "", InvalidFscError{FSC: value}
	})
	assert.Error(t, err)
	assert.Equal(t, "Invalid DFSC or IFSC 0x5", err.Error())
}

func TestCheckRes0(t *testing.T) {
	t.Parallel()

	zero := New(0x96000045, "RES0", "Reserved", 37, 64)
	checked, err := zero.CheckRes0()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), checked.Value)

	bad := New(0xffff96000045, "RES0", "Reserved", 37, 64)
	_, err = bad.CheckRes0()
	assert.Error(t, err)
	assert.Equal(t, "Invalid ESR, res0 is 0x7ff", err.Error())
}

func TestValueString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name     string
		Field    Field
		Expected string
	}{
		{Name: "bit set", Field: NewBit(1, "IL", "", 0), Expected: "true"},
		{Name: "bit clear", Field: NewBit(0, "ISV", "", 0), Expected: "false"},
		{Name: "6 bit field", Field: New(0x96000045, "EC", "", 26, 32), Expected: "0x25"},
		{Name: "25 bit field", Field: New(0x96000045, "ISS", "", 0, 25), Expected: "0x0000045"},
		{Name: "4 bit zero", Field: New(0, "Revision", "", 0, 4), Expected: "0x0"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.Expected, test.Field.ValueString())
		})
	}
}

func TestBinaryString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0b100101", New(0x96000045, "EC", "", 26, 32).BinaryString())
	assert.Equal(t, "0b0000000000000000001000101", New(0x96000045, "ISS", "", 0, 25).BinaryString())
	assert.Equal(t, "0b000101", New(0x96000045, "DFSC", "", 0, 6).BinaryString())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "EC: 0x25 0b100101", New(0x96000045, "EC", "", 26, 32).String())
	assert.Equal(t, "IL: true", NewBit(0x96000045, "IL", "", 25).String())
	assert.Equal(t, "ISV: false", NewBit(0x96000045, "ISV", "", 24).String())
}
