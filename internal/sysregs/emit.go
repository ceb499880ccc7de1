package sysregs

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// writeHeader writes the preamble of the generated accessor file.
func writeHeader(buf *bytes.Buffer, pkg string) {
	buf.WriteString("// Code generated by sysreggen; DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "// Package %s provides typed access to Arm system register values.\n", pkg)
	fmt.Fprintf(buf, "package %s\n", pkg)
}

// writeRegister writes the register type, its bit constants and its field
// accessors. Registers without any flattened field get no type of their own.
func writeRegister(buf *bytes.Buffer, info RegisterInfo) {
	if len(info.Fields) == 0 {
		return
	}

	typeName := camelCase(info.Name)
	access := "read-only"
	if info.Writable {
		access = "read/write"
	}

	buf.WriteString("\n")
	if info.Title != "" {
		fmt.Fprintf(buf, "// %s is a %s (%s) value. The register is %s.\n",
			typeName, info.Name, info.Title, access)
	} else {
		fmt.Fprintf(buf, "// %s is a %s register value. The register is %s.\n",
			typeName, info.Name, access)
	}
	fmt.Fprintf(buf, "type %s uint64\n", typeName)

	if info.Res1 != 0 {
		buf.WriteString("\n")
		fmt.Fprintf(buf, "// %sRes1 covers the RES1 bits of the %s register.\n",
			typeName, info.Name)
		fmt.Fprintf(buf, "const %sRes1 %s = %#b\n", typeName, typeName, info.Res1)
	}

	writeBitConstants(buf, typeName, info)

	for _, field := range info.Fields {
		if field.Width > 1 {
			writeGetter(buf, typeName, info.Name, field)
		}
	}
}

// writeBitConstants writes one constant per single bit field, expanding
// array fields over their index range.
func writeBitConstants(buf *bytes.Buffer, typeName string, info RegisterInfo) {
	var bits []FieldInfo
	for _, field := range info.Fields {
		if field.Width == 1 {
			bits = append(bits, field)
		}
	}
	if len(bits) == 0 {
		return
	}

	buf.WriteString("\nconst (\n")
	for i, field := range bits {
		if i > 0 {
			buf.WriteString("\n")
		}
		if field.Array != nil {
			writeArrayBitConstants(buf, typeName, info.Name, field)
			continue
		}

		name := typeName + camelCase(cleanName(field.Name))
		fmt.Fprintf(buf, "\t// %s is the %s bit of the %s register.\n",
			name, field.Name, info.Name)
		if field.Description != "" {
			fmt.Fprintf(buf, "\t//\n\t// %s\n", field.Description)
		}
		fmt.Fprintf(buf, "\t%s %s = 1 << %d\n", name, typeName, field.Index)
	}
	buf.WriteString(")\n")
}

// writeArrayBitConstants expands a single bit array field into one constant
// per index.
func writeArrayBitConstants(buf *bytes.Buffer, typeName, register string, field FieldInfo) {
	placeholder := field.Array.placeholder()

	for i := field.Array.Start; i < field.Array.End; i++ {
		expanded := strings.ReplaceAll(field.Name, placeholder, strconv.Itoa(int(i)))
		name := typeName + camelCase(cleanName(expanded))
		index := field.Index + (i-field.Array.Start)*field.Width

		if i > field.Array.Start {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "\t// %s is %s bit %d of the %s register.\n",
			name, field.Name, i, register)
		if field.Description != "" {
			fmt.Fprintf(buf, "\t//\n\t// %s\n", field.Description)
		}
		fmt.Fprintf(buf, "\t%s %s = 1 << %d\n", name, typeName, index)
	}
}

// writeGetter writes the accessor method of a multi bit field.
func writeGetter(buf *bytes.Buffer, typeName, register string, field FieldInfo) {
	returnType := typeForWidth(field.Width)
	mask := ones(field.Width)

	buf.WriteString("\n")
	if field.Array != nil {
		name := camelCase(cleanName(strings.ReplaceAll(field.Name, field.Array.placeholder(), "")))
		variable := indexVariable(field.Array.IndexVariable)

		fmt.Fprintf(buf, "// %s returns the value of the given %s field of the %s register.\n",
			name, field.Name, register)
		if field.Description != "" {
			fmt.Fprintf(buf, "//\n// %s\n", field.Description)
		}
		fmt.Fprintf(buf, "func (v %s) %s(%s uint) %s {\n", typeName, name, variable, returnType)
		if field.Array.Start > 0 {
			fmt.Fprintf(buf, "\tif %s < %d || %s >= %d {\n",
				variable, field.Array.Start, variable, field.Array.End)
		} else {
			fmt.Fprintf(buf, "\tif %s >= %d {\n", variable, field.Array.End)
		}
		fmt.Fprintf(buf, "\t\tpanic(%q)\n", field.Name+" index out of range")
		buf.WriteString("\t}\n")

		if field.Array.Start > 0 {
			fmt.Fprintf(buf, "\tshift := %d + (%s-%d)*%d\n",
				field.Index, variable, field.Array.Start, field.Width)
		} else {
			fmt.Fprintf(buf, "\tshift := %d + %s*%d\n",
				field.Index, variable, field.Width)
		}
		fmt.Fprintf(buf, "\treturn %s(v>>shift) & %#b\n", returnType, mask)
		buf.WriteString("}\n")
		return
	}

	name := camelCase(cleanName(field.Name))
	fmt.Fprintf(buf, "// %s returns the value of the %s field of the %s register.\n",
		name, field.Name, register)
	if field.Description != "" {
		fmt.Fprintf(buf, "//\n// %s\n", field.Description)
	}
	fmt.Fprintf(buf, "func (v %s) %s() %s {\n", typeName, name, returnType)
	fmt.Fprintf(buf, "\treturn %s(v>>%d) & %#b\n", returnType, field.Index, mask)
	buf.WriteString("}\n")
}

// writeSnapshot writes a struct that holds one value per generated register,
// usable to carry a register dump around as a unit.
func writeSnapshot(buf *bytes.Buffer, infos []RegisterInfo) {
	if len(infos) == 0 {
		return
	}

	buf.WriteString("\n// Snapshot holds one value for each generated system register.\n")
	buf.WriteString("type Snapshot struct {\n")
	for i, info := range infos {
		registerType := "uint64"
		if len(info.Fields) > 0 {
			registerType = camelCase(info.Name)
		}

		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "\t// %s is the %s system register value.\n",
			camelCase(info.Name), info.Name)
		fmt.Fprintf(buf, "\t%s %s\n", camelCase(info.Name), registerType)
	}
	buf.WriteString("}\n")
}

// camelCase converts a register or field name like SCR_EL3 to ScrEl3.
func camelCase(name string) string {
	var sb strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(strings.ToLower(part[1:]))
	}
	return sb.String()
}

// cleanName strips the characters of field names that have no place in Go
// identifiers.
func cleanName(name string) string {
	name = strings.ReplaceAll(name, ":", "_")
	name = strings.ReplaceAll(name, "[", "_")
	return strings.ReplaceAll(name, "]", "")
}

// indexVariable returns a parameter name for an array index variable that
// does not collide with the receiver.
func indexVariable(name string) string {
	if name == "" || name == "v" {
		return "n"
	}
	return strings.ToLower(name)
}

// typeForWidth returns the smallest unsigned type that holds width bits.
func typeForWidth(width uint) string {
	switch {
	case width > 32:
		return "uint64"
	case width > 16:
		return "uint32"
	case width > 8:
		return "uint16"
	default:
		return "uint8"
	}
}
