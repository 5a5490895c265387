package format

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/vhostd/vhostd/internal/config/model"
)

// TOMLExporter exports a configuration as a TOML document.
type TOMLExporter struct{}

// Export implements Exporter.
func (TOMLExporter) Export(w io.Writer, cfg *model.Config) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(cfg)
}
