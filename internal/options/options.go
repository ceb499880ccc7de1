// Package options contains the program options.
package options

// Program options of the decoder.
type Program struct {
	Values []string // register values to decode

	Register string // register kind to decode
	Output   string // name of the output file, printed on console if no name given

	HTML  bool
	Debug bool
	Quiet bool
}
