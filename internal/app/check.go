package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vhostd/vhostd/internal/config"
	"github.com/vhostd/vhostd/internal/loader"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"
)

var failureStyle = hue.Red | hue.Bold

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check parses every *.conf file under options.Path (a single file, or,
// recursively, a directory) concurrently and reports the result of each.
// It returns an error if any file fails to parse.
func (a App) Check(options CheckOptions) error {
	logger := a.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	info, err := os.Stat(options.Path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		logger.Debug("Path is a directory")

		err = filepath.WalkDir(options.Path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if filepath.Ext(path) == ".conf" {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", options.Path, err)
		}
	} else {
		logger.Debug("Path is a file")
		paths = []string{options.Path}
	}

	logger.Debug("Checking config files given by path", slog.Int("number", len(paths)))

	results := make([]error, len(paths))
	group := errgroup.Group{}

	for i, path := range paths {
		group.Go(func() error {
			results[i] = a.checkFile(path)
			return nil
		})
	}

	// group.Wait's own error is unused: each result is recorded
	// independently so every file gets its own success or failure line.
	_ = group.Wait()

	var failed bool
	for i, path := range paths {
		if err := results[i]; err != nil {
			failed = true
			fmt.Fprintln(a.stderr, failureStyle.Text(fmt.Sprintf("%s: %s", path, err)))
			continue
		}
		msg.Fsuccess(a.stdout, "%s is valid", path)
	}

	if failed {
		return fmt.Errorf("one or more configuration files failed to parse")
	}
	return nil
}

// checkFile runs a parse check on a single file. It does not care about
// the resulting *model.Config, only whether parsing succeeded.
func (a App) checkFile(path string) error {
	src, err := loader.Load(path)
	if err != nil {
		return err
	}

	_, err = config.Parse(src)
	return err
}
