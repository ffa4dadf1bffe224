// Package converters provides implementations of the conversion hand-off.
package converters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/domain"
)

const manifestFormat = "manifest"

// ManifestConverter writes a job as the JSON manifest read by the conversion engine.
type ManifestConverter struct{}

// NewManifestConverter creates a new manifest converter.
func NewManifestConverter() *ManifestConverter {
	return &ManifestConverter{}
}

// Format returns the output format name.
func (c *ManifestConverter) Format() string {
	return manifestFormat
}

type manifest struct {
	Input   string          `json:"input"`
	Output  string          `json:"output"`
	FbmDir  string          `json:"fbmDir,omitempty"`
	Options manifestOptions `json:"options"`
}

type manifestOptions struct {
	NoFlipV                         bool     `json:"noFlipV"`
	AnimationBakeRate               *float64 `json:"animationBakeRate,omitempty"`
	SuspectedAnimationDurationLimit *float64 `json:"suspectedAnimationDurationLimit,omitempty"`
}

// Convert encodes the job to output.
func (c *ManifestConverter) Convert(job domain.Job, output io.Writer) error {
	m := manifest{
		Input:  job.Input,
		Output: job.Output,
		FbmDir: job.FbmDir,
		Options: manifestOptions{
			NoFlipV:                         job.Options.NoFlipV,
			AnimationBakeRate:               job.Options.AnimationBakeRate,
			SuspectedAnimationDurationLimit: job.Options.SuspectedAnimationDurationLimit,
		},
	}

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	return nil
}
