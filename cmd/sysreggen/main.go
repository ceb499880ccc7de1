// Package main implements a generator for Arm system register accessor code
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/aarch64dec/internal/config"
	"github.com/retroenv/aarch64dec/internal/sysregs"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	input      string
	output     string
	configFile string
	pkg        string

	mrs   bool
	debug bool
	quiet bool
}

func main() {
	options := readArguments()
	logger := config.CreateLogger(options.debug, options.quiet)

	if !options.quiet {
		printBanner(options)
	}

	if err := generate(logger, options); err != nil {
		logger.Error("Generating failed", log.Err(err))
		os.Exit(1)
	}
}

func readArguments() optionFlags {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.StringVar(&options.configFile, "c", "", "name of the .toml configuration file listing the registers to generate")
	flags.BoolVar(&options.debug, "debug", false, "enable debug logging and dump the parsed register listing")
	flags.BoolVar(&options.mrs, "mrs", false, "generate the MRS name lookup table from a directory of register .xml files")
	flags.StringVar(&options.output, "o", "", "name of the output .go file, printed on console if no name given")
	flags.StringVar(&options.pkg, "pkg", "sysreg", "package name of the generated file")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || len(args) == 0 || (!options.mrs && options.configFile == "") {
		printBanner(options)
		fmt.Printf("usage: sysreggen -c <config.toml> [options] <registers.json>\n")
		fmt.Printf("       sysreggen -mrs [options] <xml directory>\n\n")
		flags.PrintDefaults()
		os.Exit(1)
	}
	options.input = args[0]

	return options
}

func printBanner(options optionFlags) {
	if !options.quiet {
		fmt.Println("[------------------------------------------------]")
		fmt.Println("[ sysreggen - Arm system register code generator ]")
		fmt.Printf("[------------------------------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}

func generate(logger *log.Logger, options optionFlags) error {
	writer, err := createWriter(options)
	if err != nil {
		return err
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	gen := sysregs.New(logger)
	if options.mrs {
		return generateMRSTable(logger, gen, options, writer)
	}
	return generateAccessors(logger, gen, options, writer)
}

func generateAccessors(logger *log.Logger, gen *sysregs.Generator, options optionFlags, writer io.Writer) error {
	cfg, err := sysregs.LoadConfig(options.configFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	data, err := os.ReadFile(options.input)
	if err != nil {
		return fmt.Errorf("reading registers file %s: %w", options.input, err)
	}
	entries, err := sysregs.ParseRegisters(data)
	if err != nil {
		return fmt.Errorf("parsing registers file: %w", err)
	}
	logger.Info("Read system registers",
		log.Int("count", len(entries)),
		log.String("file", options.input))

	if options.debug {
		spew.Fdump(os.Stderr, entries)
	}

	if err := gen.Generate(cfg, entries, options.pkg, writer); err != nil {
		return fmt.Errorf("generating accessors: %w", err)
	}
	return nil
}

func generateMRSTable(logger *log.Logger, gen *sysregs.Generator, options optionFlags, writer io.Writer) error {
	table, err := gen.MRSTable(options.input)
	if err != nil {
		return fmt.Errorf("collecting register encodings: %w", err)
	}
	logger.Info("Collected system register encodings", log.Int("count", len(table)))

	if err := sysregs.WriteMRSTable(writer, options.pkg, table); err != nil {
		return fmt.Errorf("writing lookup table: %w", err)
	}
	return nil
}

func createWriter(options optionFlags) (io.Writer, error) {
	if options.output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(options.output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", options.output, err)
	}
	return file, nil
}
