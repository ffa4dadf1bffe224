// Package cli provides the command-line interface for the FBX to glTF converter.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/adapters/converters"
	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/config"
	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/domain"
	"github.com/GabrielNunesIT/go-libs/logger"
)

// ErrUsage is returned by Execute when the arguments were rejected and usage
// text has already been written.
var ErrUsage = errors.New("invalid command-line arguments")

// Reader turns process arguments into CliArgs.
type Reader struct {
	log    logger.ILogger
	source ArgsSource
	out    io.Writer
}

// NewReader creates a Reader. Usage text goes to out.
func NewReader(log logger.ILogger, source ArgsSource, out io.Writer) *Reader {
	return &Reader{
		log:    log,
		source: source,
		out:    out,
	}
}

// Read returns the parsed arguments, or false when they could not be read or
// did not match the option schema. In the latter case usage text is written.
func (r *Reader) Read() (domain.CliArgs, bool) {
	argv, err := r.source.Args()
	if err != nil {
		r.log.Errorf("Failed to read command-line arguments: %v", err)
		return domain.CliArgs{}, false
	}

	args, err := Parse(argv)
	if err != nil {
		program := ""
		if len(argv) > 0 {
			program = argv[0]
		}

		_, _ = fmt.Fprint(r.out, Usage(program))

		return domain.CliArgs{}, false
	}

	return args, true
}

// ReadCliArgs reads raw process arguments, printing usage to standard output
// on failure.
func ReadCliArgs(log logger.ILogger, raw []string) (domain.CliArgs, bool) {
	return NewReader(log, ProcessArgs(raw), os.Stdout).Read()
}

// CLI holds the command-line interface configuration.
type CLI struct {
	log       logger.ILogger
	cfg       *config.Config
	reader    *Reader
	out       io.Writer
	getwd     func() (string, error)
	converter domain.Converter
}

// New creates a new CLI instance. The job manifest and any usage text are
// written to out.
func New(log logger.ILogger, cfg *config.Config, source ArgsSource, out io.Writer) *CLI {
	return &CLI{
		log:       log,
		cfg:       cfg,
		reader:    NewReader(log, source, out),
		out:       out,
		getwd:     os.Getwd,
		converter: converters.NewManifestConverter(),
	}
}

// Execute reads the arguments and hands the resolved job to the converter.
func (c *CLI) Execute() error {
	args, ok := c.reader.Read()
	if !ok {
		return ErrUsage
	}

	workDir, err := c.getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	job := domain.ResolveJob(args, workDir, c.cfg.OutputExtension)

	c.log.Infof("Converting %s to %s (%s)", job.Input, job.Output, c.converter.Format())

	if err := c.converter.Convert(job, c.out); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	return nil
}
