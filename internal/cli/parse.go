package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// ErrNoArguments is returned for an empty argument vector.
	ErrNoArguments = errors.New("no command-line arguments")

	// ErrHelpRequested is returned when -h or --help was given.
	ErrHelpRequested = errors.New("help requested")
)

// ParseError reports arguments that do not match the option schema.
type ParseError struct {
	Args []string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid arguments %q: %v", e.Args, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse matches argv against the option schema. argv[0] is the program name
// and is never matched. The result is all-or-nothing.
func Parse(argv []string) (domain.CliArgs, error) {
	if len(argv) == 0 {
		return domain.CliArgs{}, ErrNoArguments
	}

	var (
		result domain.CliArgs
		parsed bool
	)

	cmd := newCommand(argv[0])
	cmd.RunE = func(cmd *cobra.Command, positional []string) error {
		args, err := bind(cmd.Flags(), positional[0])
		if err != nil {
			return err
		}

		result, parsed = args, true

		return nil
	}

	// cobra falls back to os.Args[1:] only when SetArgs was never called, so
	// the program name has to be dropped here.
	cmd.SetArgs(argv[1:])
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err != nil {
		return domain.CliArgs{}, &ParseError{Args: argv[1:], Err: err}
	}

	if !parsed {
		return domain.CliArgs{}, ErrHelpRequested
	}

	return result, nil
}

// Usage renders the usage text for the option schema. program may be empty.
func Usage(program string) string {
	cmd := newCommand(program)
	cmd.InitDefaultHelpFlag()

	return cmd.UsageString()
}

// defaultProgram names the command in usage output when argv[0] is unavailable.
const defaultProgram = "fbx-gltf-converter"

func newCommand(program string) *cobra.Command {
	name := defaultProgram
	if program != "" {
		name = filepath.Base(program)
	}

	cmd := &cobra.Command{
		Use:   name + " " + inputPlaceholder,
		Short: "Convert an FBX model to glTF",
		Args:  requireInput,
		// Replaced by Parse. cobra only prints the usage line for runnable commands.
		RunE:          func(*cobra.Command, []string) error { return nil },
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	for _, o := range schema {
		o.register(cmd.Flags())
	}

	return cmd
}

// requireInput accepts exactly one non-empty positional argument.
func requireInput(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}

	if args[0] == "" {
		return errors.New("input file must not be empty")
	}

	return nil
}

func bind(flags *pflag.FlagSet, input string) (domain.CliArgs, error) {
	args := domain.CliArgs{InputFile: input}

	for _, o := range schema {
		if err := o.apply(&args, flags); err != nil {
			return domain.CliArgs{}, err
		}
	}

	return args, nil
}
