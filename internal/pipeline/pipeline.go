// Package pipeline orchestrates the register decoding workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/aarch64dec/internal/cli"
	"github.com/retroenv/aarch64dec/internal/config"
	"github.com/retroenv/aarch64dec/internal/options"
	"github.com/retroenv/aarch64dec/internal/render"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger *log.Logger
}

// New creates a new decoding pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
	}
}

// Execute decodes all values of the program options and writes the rendered
// fields to the given writer. An error for a single value is logged and
// processing continues with the next value, cancellation of the context
// stops before the next value is decoded.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) error {
	decoder, err := config.CreateDecoder(opts.Register)
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	register := strings.ToUpper(opts.Register)

	for _, input := range opts.Values {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("decoding aborted: %w", err)
		}

		if err := p.decodeValue(decoder, register, opts.HTML, writer, input); err != nil {
			p.logger.Error("Decoding failed", log.String("value", input), log.Err(err))
		}
	}
	return nil
}

// decodeValue runs the decoding stages for a single input value.
func (p *Pipeline) decodeValue(decoder config.Decoder, register string, html bool,
	writer io.Writer, input string) error {

	value, err := cli.ParseValue(input)
	if err != nil {
		return fmt.Errorf("parsing value: %w", err)
	}

	fields, err := decoder(value)
	if err != nil {
		return fmt.Errorf("decoding value: %w", err)
	}

	if html {
		if err := render.HTML(writer, register, value, fields); err != nil {
			return fmt.Errorf("rendering HTML: %w", err)
		}
		return nil
	}

	if err := render.Text(writer, register, value, fields); err != nil {
		return fmt.Errorf("rendering text: %w", err)
	}
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("aarch64dec", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
