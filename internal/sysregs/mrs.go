package sysregs

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// mrsPrefix selects the access instruction form that reads a system
// register into a general purpose register.
const mrsPrefix = "MRS <Xt>, "

// skippedFiles lists the files of the specification archive that carry no
// register page.
var skippedFiles = []string{
	"amu.xml",
	"architecture_info.xml",
	"instructions.xml",
	"notice.xml",
	"pmu.xml",
}

// registerPage is the document root of one system register XML file.
type registerPage struct {
	XMLName  xml.Name    `xml:"register_page"`
	Register xmlRegister `xml:"registers>register"`
}

// xmlRegister is the register description of a page. The schema writes
// booleans as the titlecase literals True and False.
type xmlRegister struct {
	ExecutionState string            `xml:"execution_state,attr"`
	IsRegister     string            `xml:"is_register,attr"`
	IsStubEntry    string            `xml:"is_stub_entry,attr"`
	ShortName      string            `xml:"reg_short_name"`
	LongName       string            `xml:"reg_long_name"`
	Mechanisms     []accessMechanism `xml:"access_mechanisms>access_mechanism"`
}

// accessMechanism is one way to access the register.
type accessMechanism struct {
	Accessor string      `xml:"accessor,attr"`
	Encoding xmlEncoding `xml:"encoding"`
}

// xmlEncoding is the operand encoding of one access instruction.
type xmlEncoding struct {
	Instruction string    `xml:"access_instruction"`
	Operands    []operand `xml:"enc"`
}

// operand is one encoding operand, the value is a 0b prefixed binary
// literal.
type operand struct {
	Name  string `xml:"n,attr"`
	Value string `xml:"v,attr"`
}

// MRSTable scans a directory of system register XML files and collects all
// encodings readable with the MRS instruction, keyed the way the exception
// syndrome decoder looks them up.
func (g *Generator) MRSTable(dir string) (map[uint64]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	table := map[uint64]string{}
	for _, entry := range entries {
		if entry.IsDir() || skipFile(entry.Name()) {
			continue
		}

		page, err := parseRegisterPage(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("parsing register page %s: %w", entry.Name(), err)
		}
		g.collectMRSEncodings(table, page)
	}
	return table, nil
}

// skipFile reports whether a specification file holds no register page.
func skipFile(name string) bool {
	if !strings.HasSuffix(name, ".xml") || strings.HasSuffix(name, "index.xml") {
		return true
	}
	return slices.Contains(skippedFiles, name)
}

func parseRegisterPage(path string) (registerPage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return registerPage{}, fmt.Errorf("reading file: %w", err)
	}

	var page registerPage
	if err := xml.Unmarshal(data, &page); err != nil {
		return registerPage{}, fmt.Errorf("unmarshalling register page: %w", err)
	}
	return page, nil
}

// collectMRSEncodings adds all MRS readable encodings of a register page to
// the table.
func (g *Generator) collectMRSEncodings(table map[uint64]string, page registerPage) {
	register := page.Register
	if register.ExecutionState != "AArch64" {
		return
	}

	if isRegister, err := titlecaseBool(register.IsRegister); err != nil || !isRegister {
		g.logger.Debug("Skipping non register page",
			log.String("name", register.ShortName))
		return
	}
	if isStub, err := titlecaseBool(register.IsStubEntry); err == nil && isStub {
		g.logger.Debug("Skipping stub entry page",
			log.String("name", register.ShortName))
		return
	}

	for _, mechanism := range register.Mechanisms {
		name, ok := strings.CutPrefix(mechanism.Encoding.Instruction, mrsPrefix)
		if !ok {
			continue
		}

		key, ok := packedEncoding(mechanism.Encoding)
		if !ok {
			g.logger.Debug("Skipping register without a fixed encoding",
				log.String("name", name))
			continue
		}
		table[key] = name
	}
}

// packedEncoding packs the five operands of a system register encoding into
// the Op0<<14 | Op1<<11 | CRn<<7 | CRm<<3 | Op2 lookup key.
func packedEncoding(encoding xmlEncoding) (uint64, bool) {
	op0, ok0 := operandValue(encoding, "op0")
	op1, ok1 := operandValue(encoding, "op1")
	crn, ok2 := operandValue(encoding, "CRn")
	crm, ok3 := operandValue(encoding, "CRm")
	op2, ok4 := operandValue(encoding, "op2")

	if !ok0 || !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, false
	}
	return op0<<14 | op1<<11 | crn<<7 | crm<<3 | op2, true
}

// operandValue returns the value of the named encoding operand.
func operandValue(encoding xmlEncoding, name string) (uint64, bool) {
	for _, op := range encoding.Operands {
		if op.Name != name {
			continue
		}
		value, err := parseBinary(op.Value)
		if err != nil {
			return 0, false
		}
		return value, true
	}
	return 0, false
}

// parseBinary parses a 0b prefixed binary literal of the specification.
func parseBinary(s string) (uint64, error) {
	value, ok := strings.CutPrefix(s, "0b")
	if !ok {
		return 0, fmt.Errorf("invalid binary literal %q", s)
	}

	n, err := strconv.ParseUint(value, 2, 8)
	if err != nil {
		return 0, fmt.Errorf("parsing binary literal %q: %w", s, err)
	}
	return n, nil
}

// titlecaseBool parses the True and False boolean literals of the schema.
func titlecaseBool(s string) (bool, error) {
	switch s {
	case "True":
		return true, nil
	case "False":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean literal %q", s)
	}
}

// WriteMRSTable writes the lookup table mapping packed system register
// encodings to register names as a Go source file, grouped by the Op0 and
// Op1 operands.
func WriteMRSTable(writer io.Writer, pkg string, table map[uint64]string) error {
	keys := make([]uint64, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	buf.WriteString("// Code generated by sysreggen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("// systemRegisterNames maps packed system register encodings to the register\n")
	buf.WriteString("// names of the Arm A-profile architecture system register listing, keyed by\n")
	buf.WriteString("// Op0<<14 | Op1<<11 | CRn<<7 | CRm<<3 | Op2.\n")
	buf.WriteString("var systemRegisterNames = map[uint64]string{\n")

	for i, key := range keys {
		if i > 0 && key>>11 != keys[i-1]>>11 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "\t%#x: %q,\n", key, table[key])
	}
	buf.WriteString("}\n")

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	if _, err := writer.Write(source); err != nil {
		return fmt.Errorf("writing generated source: %w", err)
	}
	return nil
}
