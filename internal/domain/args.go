// Package domain provides core models and interfaces for the FBX to glTF converter.
package domain

// ConvertOptions holds the settings forwarded to the conversion engine.
// Nil numeric fields are unset and leave the engine default in place.
type ConvertOptions struct {
	NoFlipV                         bool
	AnimationBakeRate               *float64
	SuspectedAnimationDurationLimit *float64
}

// CliArgs is the parsed command line.
type CliArgs struct {
	InputFile      string
	OutFile        string // empty when --out was not given
	FbmDir         string // empty when --fbm-dir was not given
	ConvertOptions ConvertOptions
}
