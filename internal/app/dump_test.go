package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vhostd/vhostd/internal/app"
	"go.followtheprocess.codes/test"
)

func TestDumpJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vhosts.conf")
	test.Ok(t, os.WriteFile(path, []byte(`server { listen 8080; host 127.0.0.1; }`), 0o644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	a := app.New(false, stdout, stderr)

	err := a.Dump(app.DumpOptions{Path: path, Format: "json"})
	test.Ok(t, err)
	test.True(t, strings.Contains(stdout.String(), `"port": 8080`), test.Context("got %s", stdout.String()))
}

func TestDumpUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vhosts.conf")
	test.Ok(t, os.WriteFile(path, []byte(`server { listen 80; }`), 0o644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	a := app.New(false, stdout, stderr)

	err := a.Dump(app.DumpOptions{Path: path, Format: "xml"})
	test.True(t, err != nil, test.Context("expected an error for an unknown format"))
}

func TestDumpInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.conf")
	test.Ok(t, os.WriteFile(path, []byte(`not a config`), 0o644))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	a := app.New(false, stdout, stderr)

	err := a.Dump(app.DumpOptions{Path: path, Format: "json"})
	test.True(t, err != nil, test.Context("expected an error for an invalid config"))
}
