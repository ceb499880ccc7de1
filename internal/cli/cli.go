// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/aarch64dec/internal/options"
)

// registers lists the supported register kinds.
var registers = []string{"esr", "midr", "smccc"}

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Values = args
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: aarch64dec [options] <value> [<value>...]\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential option %s found after a register value, please pass all options before the values", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Register = strings.ToLower(opts.Register)

	for _, valid := range registers {
		if opts.Register == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported register: %s. Valid options: %s",
		opts.Register, strings.Join(registers, ", "))
}

// ParseValue parses a register value, hexadecimal if prefixed with 0x,
// decimal otherwise.
func ParseValue(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		value, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing hexadecimal value %q: %w", s, err)
		}
		return value, nil
	}

	value, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing decimal value %q: %w", s, err)
	}
	return value, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Register, "r", "esr", "register to decode (esr/midr/smccc)")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.BoolVar(&opts.HTML, "html", false, "output the decoded fields as an HTML table")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
