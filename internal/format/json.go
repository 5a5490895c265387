package format

import (
	"encoding/json"
	"io"

	"github.com/vhostd/vhostd/internal/config/model"
)

// JSONExporter exports a configuration as indented JSON.
type JSONExporter struct{}

// Export implements Exporter.
func (JSONExporter) Export(w io.Writer, cfg *model.Config) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}
