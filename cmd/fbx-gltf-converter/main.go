// Package main provides the entry point for the FBX to glTF converter CLI.
package main

import (
	"errors"
	"os"

	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/cli"
	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/config"
	"github.com/GabrielNunesIT/go-libs/logger"
)

func main() {
	// Standard output carries usage text and the job manifest.
	log := logger.NewConsoleLogger(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("Error: %v", err)
		os.Exit(1)
	}

	app := cli.New(log, cfg, cli.ProcessArgs(os.Args), os.Stdout)
	if err := app.Execute(); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			log.Errorf("Error: %v", err)
		}
		os.Exit(1)
	}
}
