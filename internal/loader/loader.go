// Package loader reads configuration source text from disk. It is kept
// separate from the configuration front-end: it only produces the string
// handed to internal/config.Parse.
package loader

import (
	"fmt"
	"io"
	"os"
)

// Load reads the entire contents of path into memory as the configuration
// source string. Any UTF-8 BOM present is left in place; the tokenizer,
// not the loader, is responsible for tolerating it.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader reads r to completion and returns its contents as a string.
func LoadReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("could not read configuration: %w", err)
	}
	return string(data), nil
}
