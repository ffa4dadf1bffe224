package domain

import (
	"path/filepath"
	"strings"
)

// DefaultOutputExtension is used for the derived output path when none is configured.
const DefaultOutputExtension = ".gltf"

// Job is a conversion request with defaults applied.
type Job struct {
	Input   string
	Output  string
	FbmDir  string
	Options ConvertOptions
}

// ResolveJob applies the output path default and anchors relative paths at workDir.
// Without --out the output lands at <workDir>/<input basename><ext>.
func ResolveJob(args CliArgs, workDir, ext string) Job {
	if ext == "" {
		ext = DefaultOutputExtension
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	output := args.OutFile
	if output == "" {
		base := filepath.Base(args.InputFile)
		output = strings.TrimSuffix(base, filepath.Ext(base)) + ext
	}

	job := Job{
		Input:   anchor(workDir, args.InputFile),
		Output:  anchor(workDir, output),
		Options: args.ConvertOptions,
	}

	if args.FbmDir != "" {
		job.FbmDir = anchor(workDir, args.FbmDir)
	}

	return job
}

func anchor(workDir, path string) string {
	if filepath.IsAbs(path) || workDir == "" {
		return filepath.Clean(path)
	}

	return filepath.Join(workDir, path)
}
