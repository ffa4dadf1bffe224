package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/config"
	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/domain"
	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticArgs []string

func (s staticArgs) Args() ([]string, error) {
	return s, nil
}

type failingArgs struct{}

func (failingArgs) Args() ([]string, error) {
	return nil, errors.New("CommandLineToArgvW failed")
}

func newTestReader(source ArgsSource, out io.Writer) *Reader {
	return NewReader(logger.NewConsoleLogger(io.Discard), source, out)
}

func TestReader_Read(t *testing.T) {
	var out bytes.Buffer

	args, ok := newTestReader(staticArgs{"prog", "model.fbx", "--no-flip-v"}, &out).Read()
	require.True(t, ok)
	assert.Equal(t, domain.CliArgs{
		InputFile:      "model.fbx",
		ConvertOptions: domain.ConvertOptions{NoFlipV: true},
	}, args)
	assert.Empty(t, out.String())
}

func TestReader_ParseFailureWritesUsage(t *testing.T) {
	tests := []struct {
		name    string
		argv    staticArgs
		program string
	}{
		{name: "no input", argv: staticArgs{"prog"}, program: "prog"},
		{name: "unknown flag", argv: staticArgs{"prog", "model.fbx", "--bogus"}, program: "prog"},
		{name: "help", argv: staticArgs{"prog", "--help"}, program: "prog"},
		{name: "empty", argv: staticArgs{}, program: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			args, ok := newTestReader(tt.argv, &out).Read()
			assert.False(t, ok)
			assert.Equal(t, domain.CliArgs{}, args)
			assert.Equal(t, Usage(tt.program), out.String())
		})
	}
}

func TestReader_SourceFailure(t *testing.T) {
	var out bytes.Buffer

	_, ok := newTestReader(failingArgs{}, &out).Read()
	assert.False(t, ok)
	assert.Empty(t, out.String())
}

func newTestCLI(source ArgsSource, out io.Writer, workDir string) *CLI {
	cfg := config.Defaults()

	c := New(logger.NewConsoleLogger(io.Discard), &cfg, source, out)
	c.getwd = func() (string, error) { return workDir, nil }

	return c
}

func TestCLI_Execute(t *testing.T) {
	workDir := filepath.Join(string(filepath.Separator), "work")

	var out bytes.Buffer

	c := newTestCLI(staticArgs{"prog", "scenes/hero.fbx", "--animation-bake-rate", "60"}, &out, workDir)
	require.NoError(t, c.Execute())

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, filepath.Join(workDir, "scenes", "hero.fbx"), got["input"])
	assert.Equal(t, filepath.Join(workDir, "hero.gltf"), got["output"])
	assert.NotContains(t, got, "fbmDir")

	options, ok := got["options"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, options["noFlipV"])
	assert.Equal(t, 60.0, options["animationBakeRate"])
	assert.NotContains(t, options, "suspectedAnimationDurationLimit")
}

func TestCLI_ExecuteUsage(t *testing.T) {
	var out bytes.Buffer

	c := newTestCLI(staticArgs{"prog"}, &out, "/work")
	require.ErrorIs(t, c.Execute(), ErrUsage)
	assert.Equal(t, Usage("prog"), out.String())
}

func TestCLI_ExecuteWorkDirFailure(t *testing.T) {
	var out bytes.Buffer

	c := newTestCLI(staticArgs{"prog", "model.fbx"}, &out, "")
	c.getwd = func() (string, error) { return "", errors.New("gone") }

	err := c.Execute()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsage)
	assert.Empty(t, out.String())
}

func TestCLI_ExecuteLogsFormat(t *testing.T) {
	var out, logs bytes.Buffer

	cfg := config.Defaults()

	c := New(logger.NewConsoleLogger(&logs), &cfg, staticArgs{"prog", "model.fbx"}, &out)
	c.getwd = func() (string, error) { return "/work", nil }

	require.NoError(t, c.Execute())
	assert.Contains(t, logs.String(), "(manifest)")
}
