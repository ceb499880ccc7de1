package sysregs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const midrPage = `<?xml version="1.0" encoding="utf-8"?>
<register_page>
  <registers>
    <register execution_state="AArch64" is_register="True" is_stub_entry="False">
      <reg_short_name>MIDR_EL1</reg_short_name>
      <reg_long_name>Main ID Register</reg_long_name>
      <access_mechanisms>
        <access_mechanism accessor="MRS MIDR_EL1">
          <encoding>
            <access_instruction>MRS &lt;Xt&gt;, MIDR_EL1</access_instruction>
            <enc n="op0" v="0b11"/>
            <enc n="op1" v="0b000"/>
            <enc n="CRn" v="0b0000"/>
            <enc n="CRm" v="0b0000"/>
            <enc n="op2" v="0b000"/>
          </encoding>
        </access_mechanism>
      </access_mechanisms>
    </register>
  </registers>
</register_page>`

const osdtrrxPage = `<?xml version="1.0" encoding="utf-8"?>
<register_page>
  <registers>
    <register execution_state="AArch64" is_register="True" is_stub_entry="False">
      <reg_short_name>OSDTRRX_EL1</reg_short_name>
      <reg_long_name>OS Lock Data Transfer Register, Receive</reg_long_name>
      <access_mechanisms>
        <access_mechanism accessor="MRS OSDTRRX_EL1">
          <encoding>
            <access_instruction>MRS &lt;Xt&gt;, OSDTRRX_EL1</access_instruction>
            <enc n="op0" v="0b10"/>
            <enc n="op1" v="0b000"/>
            <enc n="CRn" v="0b0000"/>
            <enc n="CRm" v="0b0000"/>
            <enc n="op2" v="0b010"/>
          </encoding>
        </access_mechanism>
        <access_mechanism accessor="MSR OSDTRRX_EL1">
          <encoding>
            <access_instruction>MSR OSDTRRX_EL1, &lt;Xt&gt;</access_instruction>
            <enc n="op0" v="0b10"/>
            <enc n="op1" v="0b000"/>
            <enc n="CRn" v="0b0000"/>
            <enc n="CRm" v="0b0000"/>
            <enc n="op2" v="0b010"/>
          </encoding>
        </access_mechanism>
      </access_mechanisms>
    </register>
  </registers>
</register_page>`

const dbgbvrPage = `<?xml version="1.0" encoding="utf-8"?>
<register_page>
  <registers>
    <register execution_state="AArch64" is_register="True" is_stub_entry="False">
      <reg_short_name>DBGBVR&lt;n&gt;_EL1</reg_short_name>
      <reg_long_name>Debug Breakpoint Value Registers</reg_long_name>
      <access_mechanisms>
        <access_mechanism accessor="MRS DBGBVR_EL1">
          <encoding>
            <access_instruction>MRS &lt;Xt&gt;, DBGBVR&lt;n&gt;_EL1</access_instruction>
            <enc n="op0" v="0b10"/>
            <enc n="op1" v="0b000"/>
            <enc n="CRn" v="0b0000"/>
            <enc n="CRm" v="0bxx00"/>
            <enc n="op2" v="0b100"/>
          </encoding>
        </access_mechanism>
      </access_mechanisms>
    </register>
  </registers>
</register_page>`

func TestMRSTable(t *testing.T) {
	gen := New(log.NewTestLogger(t))

	dir := t.TempDir()
	files := map[string]string{
		"midr_el1.xml":    midrPage,
		"osdtrrx_el1.xml": osdtrrxPage,
		"dbgbvrn_el1.xml": dbgbvrPage,
		"notice.xml":      "not even xml",
		"ext-index.xml":   "not even xml",
		"readme.txt":      "not even xml",
	}
	for name, data := range files {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
	}

	table, err := gen.MRSTable(dir)
	assert.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, "MIDR_EL1", table[0xc000])
	assert.Equal(t, "OSDTRRX_EL1", table[0x8002])
}

func TestMRSTableSkipsOtherExecutionStates(t *testing.T) {
	gen := New(log.NewTestLogger(t))

	page := `<?xml version="1.0" encoding="utf-8"?>
<register_page>
  <registers>
    <register execution_state="AArch32" is_register="True" is_stub_entry="False">
      <reg_short_name>MIDR</reg_short_name>
      <access_mechanisms>
        <access_mechanism accessor="MRC MIDR">
          <encoding>
            <access_instruction>MRC p15, 0, &lt;Rt&gt;, c0, c0, 0</access_instruction>
          </encoding>
        </access_mechanism>
      </access_mechanisms>
    </register>
  </registers>
</register_page>`

	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "midr.xml"), []byte(page), 0o644))

	table, err := gen.MRSTable(dir)
	assert.NoError(t, err)
	assert.Len(t, table, 0)
}

func TestWriteMRSTable(t *testing.T) {
	t.Parallel()

	table := map[uint64]string{
		0xc000: "MIDR_EL1",
		0x8002: "OSDTRRX_EL1",
		0xc005: "MPIDR_EL1",
	}

	var buf bytes.Buffer
	assert.NoError(t, WriteMRSTable(&buf, "esr", table))

	want := `// Code generated by sysreggen; DO NOT EDIT.

package esr

// systemRegisterNames maps packed system register encodings to the register
// names of the Arm A-profile architecture system register listing, keyed by
// Op0<<14 | Op1<<11 | CRn<<7 | CRm<<3 | Op2.
var systemRegisterNames = map[uint64]string{
	0x8002: "OSDTRRX_EL1",

	0xc000: "MIDR_EL1",
	0xc005: "MPIDR_EL1",
}
`
	assert.Equal(t, want, buf.String())
}

func TestSkipFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		skip bool
	}{
		{"midr_el1.xml", false},
		{"sctlr_el1.xml", false},
		{"notice.xml", true},
		{"amu.xml", true},
		{"pmu.xml", true},
		{"architecture_info.xml", true},
		{"instructions.xml", true},
		{"ext-index.xml", true},
		{"enc_index.xml", true},
		{"readme.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.skip, skipFile(tt.name))
		})
	}
}

func TestParseBinary(t *testing.T) {
	t.Parallel()

	value, err := parseBinary("0b11")
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), value)

	value, err = parseBinary("0b000")
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), value)

	_, err = parseBinary("11")
	assert.Error(t, err)

	_, err = parseBinary("0bxx00")
	assert.Error(t, err)
}

func TestTitlecaseBool(t *testing.T) {
	t.Parallel()

	value, err := titlecaseBool("True")
	assert.NoError(t, err)
	assert.True(t, value)

	value, err = titlecaseBool("False")
	assert.NoError(t, err)
	assert.False(t, value)

	_, err = titlecaseBool("true")
	assert.Error(t, err)
}
