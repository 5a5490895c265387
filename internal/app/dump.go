package app

import (
	"fmt"
	"log/slog"

	"github.com/vhostd/vhostd/internal/config"
	"github.com/vhostd/vhostd/internal/format"
	"github.com/vhostd/vhostd/internal/loader"
)

// DumpOptions are the options passed to the dump subcommand.
type DumpOptions struct {
	// Path is the configuration file to parse and dump.
	Path string

	// Format names the export format: json, yaml or toml.
	Format string
}

// Dump parses a single configuration file and writes the resulting
// *model.Config to stdout in the requested format.
func (a App) Dump(options DumpOptions) error {
	logger := a.logger.Prefixed("dump").With(slog.String("path", options.Path), slog.String("format", options.Format))
	logger.Debug("Dumping config")

	src, err := loader.Load(options.Path)
	if err != nil {
		return err
	}

	cfg, err := config.Parse(src)
	if err != nil {
		return err
	}

	exporter, err := format.New(format.Name(options.Format))
	if err != nil {
		return err
	}

	if err := exporter.Export(a.stdout, cfg); err != nil {
		return fmt.Errorf("could not export config: %w", err)
	}

	return nil
}
