package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vhostd/vhostd/internal/loader"
	"go.followtheprocess.codes/test"
)

func TestLoadReader(t *testing.T) {
	got, err := loader.LoadReader(strings.NewReader("server {}"))
	test.Ok(t, err)
	test.Equal(t, got, "server {}")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vhosts.conf")

	test.Ok(t, os.WriteFile(path, []byte("server { listen 80; }"), 0o644))

	got, err := loader.Load(path)
	test.Ok(t, err)
	test.Equal(t, got, "server { listen 80; }")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.conf"))
	test.True(t, err != nil, test.Context("expected an error for a missing file"))
}
