// Package cmd implements vhostd's CLI: it wires flags and arguments to
// internal/app, which holds the actual behavior.
package cmd

import (
	"fmt"

	"github.com/vhostd/vhostd/internal/app"
	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the vhostd CLI.
func Build() (*cli.Command, error) {
	var debug bool

	return cli.New(
		"vhostd",
		cli.Short("A virtual host configuration checker and inspector"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Check a configuration file for syntax errors", "vhostd check ./vhosts.conf"),
		cli.Example("Check every config in a directory (recursively)", "vhostd check ./sites-enabled"),
		cli.Example("Dump a parsed config as JSON", "vhostd dump ./vhosts.conf --format json"),
		cli.Example("Interactively generate a minimal config", "vhostd init"),
		cli.Allow(cli.NoArgs()),
		cli.Flag(&debug, "debug", 'd', false, "Enable debug logs"),
		cli.SubCommands(check, dump, initCmd),
		cli.Run(func(cmd *cli.Command, args []string) error {
			fmt.Fprintln(cmd.Stdout(), "vhostd: run 'vhostd --help' to see available commands")
			return nil
		}),
	)
}

func newApp(debug bool, cmd *cli.Command) app.App {
	return app.New(debug, cmd.Stdout(), cmd.Stderr())
}
