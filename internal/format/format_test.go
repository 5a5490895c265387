package format_test

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/vhostd/vhostd/internal/config/model"
	"github.com/vhostd/vhostd/internal/format"
	"go.followtheprocess.codes/snapshot"
	"go.followtheprocess.codes/test"
)

var (
	update = flag.Bool("update", false, "Update snapshots")
	clean  = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

func sampleConfig() *model.Config {
	server := model.NewServer()
	server.Port = 8080
	server.Host = "0.0.0.0"
	server.ServerNames = []string{"example.com", "www.example.com"}
	server.ErrorPages = map[string]string{"404": "/404.html"}

	loc := model.NewLocation("/")
	loc.Root = "/var/www/html"
	loc.IndexFiles = []string{"index.html"}
	loc.Methods = []string{"GET", "HEAD"}

	server.Locations = []model.Location{loc}

	return &model.Config{Servers: []model.Server{server}}
}

func TestExporters(t *testing.T) {
	tests := []struct {
		name     string
		exporter format.Exporter
	}{
		{name: "json", exporter: format.JSONExporter{}},
		{name: "yaml", exporter: format.YAMLExporter{}},
		{name: "toml", exporter: format.TOMLExporter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshot.New(
				t,
				snapshot.Update(*update),
				snapshot.Clean(*clean),
				snapshot.Color(os.Getenv("CI") == ""),
			)

			buf := &bytes.Buffer{}
			test.Ok(t, tt.exporter.Export(buf, sampleConfig()))

			snap.Snap(buf.String())
		})
	}
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := format.New(format.Name("xml"))
	test.True(t, err != nil, test.Context("expected an error for an unknown format"))
}

func TestNewKnownFormats(t *testing.T) {
	for _, name := range []format.Name{format.JSON, format.YAML, format.TOML} {
		t.Run(string(name), func(t *testing.T) {
			exporter, err := format.New(name)
			test.Ok(t, err)
			test.True(t, exporter != nil, test.Context("expected a non-nil exporter for %q", name))
		})
	}
}
