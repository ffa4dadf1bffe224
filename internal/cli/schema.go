package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/domain"
	"github.com/spf13/pflag"
)

type optionKind int

const (
	kindValue optionKind = iota
	kindFlag
	kindNumber
)

// option describes one named command-line option and the CliArgs field it fills.
type option struct {
	name  string
	kind  optionKind
	usage string
	bind  func(args *domain.CliArgs, flag *pflag.Flag) error
}

// inputPlaceholder names the single positional argument in usage output.
const inputPlaceholder = "<input file>"

var schema = []option{
	{
		name:  "out",
		kind:  kindValue,
		usage: "The output `path` to the .gltf or .glb file. Defaults to <working-directory>/<FBX-filename-basename>.gltf",
		bind:  bindString(func(a *domain.CliArgs) *string { return &a.OutFile }),
	},
	{
		name:  "fbm-dir",
		kind:  kindValue,
		usage: "The `directory` to store the embedded media.",
		bind:  bindString(func(a *domain.CliArgs) *string { return &a.FbmDir }),
	},
	{
		name:  "no-flip-v",
		kind:  kindFlag,
		usage: "Do not flip V texture coordinates.",
		bind:  bindPresent(func(a *domain.CliArgs) *bool { return &a.ConvertOptions.NoFlipV }),
	},
	{
		name:  "animation-bake-rate",
		kind:  kindNumber,
		usage: "Animation bake rate (in `FPS`).",
		bind:  bindNumber(func(a *domain.CliArgs) **float64 { return &a.ConvertOptions.AnimationBakeRate }),
	},
	{
		name:  "suspected-animation-duration-limit",
		kind:  kindNumber,
		usage: "The suspected animation duration `limit`.",
		bind:  bindNumber(func(a *domain.CliArgs) **float64 { return &a.ConvertOptions.SuspectedAnimationDurationLimit }),
	},
}

func (o option) register(flags *pflag.FlagSet) {
	switch o.kind {
	case kindFlag:
		flags.Bool(o.name, false, o.usage)
	case kindNumber:
		flags.Float64(o.name, 0, o.usage)
	default:
		flags.String(o.name, "", o.usage)
	}
}

// apply copies the flag into args when it was given on the command line.
func (o option) apply(args *domain.CliArgs, flags *pflag.FlagSet) error {
	flag := flags.Lookup(o.name)
	if flag == nil || !flag.Changed {
		return nil
	}

	if err := o.bind(args, flag); err != nil {
		return fmt.Errorf("--%s: %w", o.name, err)
	}

	return nil
}

func bindString(field func(*domain.CliArgs) *string) func(*domain.CliArgs, *pflag.Flag) error {
	return func(args *domain.CliArgs, flag *pflag.Flag) error {
		*field(args) = flag.Value.String()

		return nil
	}
}

// bindPresent sets the field whenever the flag appears, whatever its value.
func bindPresent(field func(*domain.CliArgs) *bool) func(*domain.CliArgs, *pflag.Flag) error {
	return func(args *domain.CliArgs, _ *pflag.Flag) error {
		*field(args) = true

		return nil
	}
}

func bindNumber(field func(*domain.CliArgs) **float64) func(*domain.CliArgs, *pflag.Flag) error {
	return func(args *domain.CliArgs, flag *pflag.Flag) error {
		v, err := strconv.ParseFloat(flag.Value.String(), 64)
		if err != nil {
			return err
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%q is not a finite number", flag.Value.String())
		}

		*field(args) = &v

		return nil
	}
}
