package format

import (
	"io"

	"github.com/vhostd/vhostd/internal/config/model"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter exports a configuration as a YAML document.
type YAMLExporter struct{}

// Export implements Exporter.
func (YAMLExporter) Export(w io.Writer, cfg *model.Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	return encoder.Encode(cfg)
}
