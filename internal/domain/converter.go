package domain

import "io"

// Converter defines the interface for the conversion hand-off.
type Converter interface {
	// Convert hands a resolved job to the conversion engine.
	Convert(job Job, output io.Writer) error

	// Format returns the name of what the converter emits (e.g., "manifest").
	Format() string
}
