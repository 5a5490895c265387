// Package format exports a parsed configuration to a serialization format,
// for the vhostd dump command. There is no corresponding Import: the
// front-end only ever produces a *model.Config from configuration source,
// never from JSON/YAML/TOML.
package format

import (
	"fmt"
	"io"

	"github.com/vhostd/vhostd/internal/config/model"
)

// Exporter writes a *model.Config to w in some serialization format.
type Exporter interface {
	Export(w io.Writer, cfg *model.Config) error
}

// Name is a supported export format's identifier, as accepted by the
// dump command's --format flag.
type Name string

const (
	JSON Name = "json"
	YAML Name = "yaml"
	TOML Name = "toml"
)

// New returns the Exporter for name.
func New(name Name) (Exporter, error) {
	switch name {
	case JSON:
		return JSONExporter{}, nil
	case YAML:
		return YAMLExporter{}, nil
	case TOML:
		return TOMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q, must be one of json, yaml, toml", name)
	}
}
